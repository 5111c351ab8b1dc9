package app

import (
	"log/slog"
	"os"

	"github.com/christiantuyishime01/momoledger/internal/momo"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.momo.enabled") {
		uc, err := momo.New(momo.Dependency{
			Config:  a.config,
			Context: a.ctx,
			ID:      a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module momo", "error", err)
			os.Exit(1)
		}
		a.momo = uc
	}
}
