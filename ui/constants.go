package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Window dimensions
const (
	WindowWidth  = 380
	WindowHeight = 640
)

// Header card
const (
	HeaderHeight       = 150
	HeaderCornerRadius = 10
)

// Bill card
const (
	CardCornerRadius = 8
	CardBorderWidth  = 2
)

// RoundButtonSize is the diameter of the split +/- buttons.
const RoundButtonSize = 40

// Tip slider range; 6 positions from 0 to 100.
const (
	TipSliderMin  = 0
	TipSliderMax  = 100
	TipSliderStep = 20
)

var (
	headerColor     = color.NRGBA{R: 0xE9, G: 0xD7, B: 0xF7, A: 0xFF}
	headerTextColor = color.NRGBA{R: 0x1C, G: 0x1B, B: 0x1F, A: 0xFF}
	cardBorderColor = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
