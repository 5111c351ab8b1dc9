package momo

import (
	"context"
	"log/slog"

	"github.com/christiantuyishime01/momoledger/internal/momo/extract"
	"github.com/christiantuyishime01/momoledger/internal/momo/ingest"
	"github.com/christiantuyishime01/momoledger/internal/momo/store"
	"github.com/christiantuyishime01/momoledger/internal/momo/usecase"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgconfig"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkguid"
)

type Dependency struct {
	Config  pkgconfig.Config
	Context context.Context
	ID      pkguid.StringID
}

// New wires the module: it fills the in-memory store from the configured data
// source and returns the usecase built on top of it.
func New(dep Dependency) (*usecase.Usecase, error) {
	ctx := dep.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	storage := store.NewMemory()
	if err := load(ctx, dep.Config, storage); err != nil {
		return nil, err
	}

	return usecase.New(usecase.Dependency{
		Store: storage,
		ID:    dep.ID,
	}), nil
}

// load prefers the JSON snapshot; when it is absent or unreadable the raw SMS
// export is parsed, extracted and a fresh snapshot is written best effort.
func load(ctx context.Context, cfg pkgconfig.Config, storage *store.Memory) error {
	snapshotPath := cfg.GetString("data.snapshot")
	if snapshotPath != "" {
		records, err := store.LoadSnapshot(snapshotPath)
		if err == nil {
			storage.Load(ctx, records)
			slog.InfoContext(ctx, "loaded transaction snapshot",
				"path", snapshotPath, "count", len(records))
			return nil
		}
		slog.WarnContext(ctx, "snapshot unavailable, rebuilding from raw export",
			"path", snapshotPath, "error", err)
	}

	xmlPath := cfg.GetString("data.xml")
	messages, err := ingest.ParseFile(xmlPath)
	if err != nil {
		return err
	}

	extractor := extract.New(cfg.GetString("momo.address"), cfg.GetString("momo.currency"))
	records := extractor.Run(messages)
	storage.Load(ctx, records)
	slog.InfoContext(ctx, "extracted transactions from raw export",
		"path", xmlPath, "messages", len(messages), "transactions", len(records))

	if snapshotPath != "" {
		if err := store.SaveSnapshot(snapshotPath, records); err != nil {
			slog.WarnContext(ctx, "failed to write snapshot",
				"path", snapshotPath, "error", err)
		}
	}

	return nil
}
