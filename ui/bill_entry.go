package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// billEntry is a single-line Entry that requests the numeric soft keyboard
// and ignores characters that cannot appear in an amount.
type billEntry struct {
	widget.Entry
}

func newBillEntry() *billEntry {
	e := &billEntry{}
	e.PlaceHolder = "Enter Bill"
	e.ExtendBaseWidget(e)
	return e
}

// Keyboard selects the numeric keyboard on mobile drivers.
func (e *billEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// TypedRune accepts digits and amount punctuation only.
func (e *billEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9', r == '.', r == ',', r == '$':
		e.Entry.TypedRune(r)
	}
}
