package cli

import (
	"fmt"
	"io"
	"log/slog"

	"tip-calculator/internal/format"
	"tip-calculator/internal/tip"
)

// RunnerConfig holds all CLI options for one calculation.
type RunnerConfig struct {
	Bill       string
	Split      int
	TipPercent int
	Verbose    bool
}

// Run parses the bill, checks inputs and writes the breakdown to w.
func Run(cfg RunnerConfig, f *format.Formatter, w io.Writer) (tip.Result, error) {
	bill, err := f.ParseBill(cfg.Bill)
	if err != nil {
		return tip.Result{}, fmt.Errorf("invalid bill: %w", err)
	}
	if err := tip.CheckInputs(cfg.Split, cfg.TipPercent); err != nil {
		return tip.Result{}, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Verbose {
		slog.Info("computing tip",
			"bill", bill.String(),
			"split", cfg.Split,
			"tip_percent", cfg.TipPercent,
		)
	}

	result := tip.Recompute(bill, cfg.Split, cfg.TipPercent)
	if _, err := fmt.Fprintln(w, f.Breakdown(bill, cfg.Split, cfg.TipPercent, result)); err != nil {
		return result, fmt.Errorf("write result: %w", err)
	}
	return result, nil
}
