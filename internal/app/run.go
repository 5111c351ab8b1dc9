package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/christiantuyishime01/momoledger/internal/pkg/pkgerror"
	"github.com/christiantuyishime01/momoledger/internal/pkg/pkglog"
)

// Run executes one batch pass: report the ledger state and, when enabled,
// benchmark the lookup strategies and persist the report.
func (a *App) Run(ctx context.Context) error {
	ctx = pkglog.SetRunID(ctx, a.uuid.Generate())

	if a.momo == nil {
		slog.InfoContext(ctx, "momo module disabled, nothing to do")
		return nil
	}

	list, err := a.momo.ListTransactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list transactions", "error", err)
		return err
	}
	slog.InfoContext(ctx, "transaction ledger ready", "count", list.Total)

	if !a.config.GetBool("benchmark.enabled") {
		return nil
	}

	if err := a.runBenchmark(ctx); err != nil {
		slog.ErrorContext(ctx, "benchmark failed", "error", err)
		return err
	}

	return nil
}

func (a *App) runBenchmark(ctx context.Context) error {
	ids, err := parseTestIDs(a.config.GetArray("benchmark.test_ids"))
	if err != nil {
		return err
	}

	report, err := a.momo.Compare(ctx, nil, ids)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "benchmark finished",
		"report_id", report.ReportID,
		"fastest_strategy", report.Analysis.FastestStrategy,
		"test_count", report.Parameters.TestCount,
		"total_transactions", report.Parameters.TotalTransactions)

	path := a.config.GetString("benchmark.report")
	if path == "" {
		return nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return pkgerror.NewServer(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return pkgerror.NewServer(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pkgerror.NewServer(err)
	}

	slog.InfoContext(ctx, "benchmark report written", "path", path)
	return nil
}

func parseTestIDs(raw []string) ([]int, error) {
	ids := make([]int, 0, len(raw))
	for _, item := range raw {
		id, err := strconv.Atoi(item)
		if err != nil {
			return nil, pkgerror.NewInvalidInput(fmt.Errorf("benchmark.test_ids: %q is not an integer", item))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
