package app

import (
	"context"
	"log/slog"

	"github.com/christiantuyishime01/momoledger/internal/momo/usecase"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgconfig"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkglog"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid pkguid.StringID

	// modules
	momo *usecase.Usecase

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initModules()
	app.initClosers()

	return app
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}
