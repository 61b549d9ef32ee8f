package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// Header shows the total owed per person on a rounded card.
type Header struct {
	total     *canvas.Text
	container *fyne.Container
}

// NewHeader creates the header card with the given initial total text.
func NewHeader(initial string) *Header {
	h := &Header{}

	bg := canvas.NewRectangle(headerColor)
	bg.CornerRadius = HeaderCornerRadius
	bg.SetMinSize(fyne.NewSize(0, HeaderHeight))

	title := canvas.NewText("Total Per Person", headerTextColor)
	title.Alignment = fyne.TextAlignCenter
	title.TextSize = theme.TextSubHeadingSize()

	h.total = canvas.NewText(initial, headerTextColor)
	h.total.Alignment = fyne.TextAlignCenter
	h.total.TextStyle = fyne.TextStyle{Bold: true}
	h.total.TextSize = theme.TextHeadingSize()

	h.container = container.NewStack(
		bg,
		container.NewCenter(container.NewVBox(title, h.total)),
	)
	return h
}

// Container returns the header's container.
func (h *Header) Container() *fyne.Container {
	return h.container
}

// SetTotal replaces the displayed total.
func (h *Header) SetTotal(text string) {
	h.total.Text = text
	h.total.Refresh()
}

// Total returns the displayed total.
func (h *Header) Total() string {
	return h.total.Text
}
