package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"tip-calculator/internal/cli"
	"tip-calculator/internal/config"
	"tip-calculator/internal/format"
	"tip-calculator/internal/logging"
	"tip-calculator/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(os.Stderr, cfg.Level)

	f, err := format.New(cfg.Locale)
	if err != nil {
		logger.Warn("falling back to en-US formatting", "err", err)
		f = format.Default()
	}

	runCfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if runCfg == nil {
		a := app.NewWithID(cfg.AppID)
		win := ui.BuildMainWindow(a, f, logger)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if _, err := cli.Run(*runCfg, f, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
