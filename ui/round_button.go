package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// RoundButton is a circular icon button with a thin outline.
type RoundButton struct {
	widget.Button
}

// NewRoundButton creates a circular button showing icon.
func NewRoundButton(icon fyne.Resource, tapped func()) *RoundButton {
	btn := &RoundButton{}
	btn.Icon = icon
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// CreateRenderer returns a custom renderer.
func (b *RoundButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewCircle(theme.Color(theme.ColorNameBackground))
	bg.StrokeWidth = 1
	bg.StrokeColor = cardBorderColor

	icon := canvas.NewImageFromResource(b.Icon)
	icon.FillMode = canvas.ImageFillContain

	r := &roundBtnRenderer{
		btn:     b,
		bg:      bg,
		icon:    icon,
		objects: []fyne.CanvasObject{bg, icon},
	}
	r.Refresh()
	return r
}

type roundBtnRenderer struct {
	btn     *RoundButton
	bg      *canvas.Circle
	icon    *canvas.Image
	objects []fyne.CanvasObject
}

func (r *roundBtnRenderer) Layout(size fyne.Size) {
	side := fyne.Min(size.Width, size.Height)
	r.bg.Resize(fyne.NewSquareSize(side))
	r.bg.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))

	iconSide := side / 2
	r.icon.Resize(fyne.NewSquareSize(iconSide))
	r.icon.Move(fyne.NewPos((size.Width-iconSide)/2, (size.Height-iconSide)/2))
}

func (r *roundBtnRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(RoundButtonSize)
}

func (r *roundBtnRenderer) Refresh() {
	r.icon.Resource = r.btn.Icon

	if r.btn.Disabled() {
		r.bg.FillColor = theme.Color(theme.ColorNameDisabledButton)
		r.icon.Resource = theme.NewDisabledResource(r.btn.Icon)
	} else {
		r.bg.FillColor = theme.Color(theme.ColorNameBackground)
	}

	r.bg.Refresh()
	r.icon.Refresh()
}

func (r *roundBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *roundBtnRenderer) Destroy()                     {}
