package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"

	"tip-calculator/internal/format"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, f *format.Formatter, logger *slog.Logger) fyne.Window {
	win := app.NewWindow("Tip Calculator")
	win.Resize(NewWindowSize())

	calc := NewCalculator(f, logger)
	win.SetContent(calc.Container())

	win.SetOnClosed(func() {
		logger.Debug("window closed")
	})

	return win
}
