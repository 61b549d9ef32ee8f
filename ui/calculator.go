package ui

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tip-calculator/internal/format"
	"tip-calculator/internal/shell"
	"tip-calculator/internal/tip"
)

// Calculator is the tip calculator screen. It forwards widget events to a
// shell.Shell and displays what the shell publishes.
type Calculator struct {
	shell  *shell.Shell
	format *format.Formatter

	header       *Header
	billEntry    *billEntry
	splitLabel   *widget.Label
	minusBtn     *RoundButton
	plusBtn      *RoundButton
	tipValue     *widget.Label
	percentLabel *widget.Label
	slider       *widget.Slider
	details      *fyne.Container

	container *fyne.Container
}

// NewCalculator builds the screen with split 1 and tip 0%.
func NewCalculator(f *format.Formatter, logger *slog.Logger) *Calculator {
	c := &Calculator{format: f}
	c.shell = shell.New(c, f.ParseBill, logger)

	c.header = NewHeader(f.PerPerson(0))

	c.billEntry = newBillEntry()
	c.billEntry.OnChanged = c.onBillChanged
	c.billEntry.OnSubmitted = c.onBillSubmitted

	c.splitLabel = widget.NewLabel("1")
	c.minusBtn = NewRoundButton(theme.ContentRemoveIcon(), c.shell.DecrementSplit)
	c.minusBtn.Disable()
	c.plusBtn = NewRoundButton(theme.ContentAddIcon(), c.shell.IncrementSplit)

	c.tipValue = widget.NewLabelWithStyle(f.Tip(0), fyne.TextAlignTrailing, fyne.TextStyle{})
	c.percentLabel = widget.NewLabel(f.Percent(0))

	c.slider = widget.NewSlider(TipSliderMin, TipSliderMax)
	c.slider.Step = TipSliderStep
	c.slider.OnChanged = func(v float64) { c.shell.DragTip(int(v)) }
	c.slider.OnChangeEnded = func(v float64) { c.shell.ReleaseTip(int(v)) }

	splitRow := container.NewGridWithColumns(2,
		widget.NewLabel("Split"),
		container.NewHBox(c.minusBtn, c.splitLabel, c.plusBtn),
	)
	tipRow := container.NewBorder(nil, nil, widget.NewLabel("Tip"), c.tipValue)
	sliderRow := container.NewBorder(nil, nil, nil, c.percentLabel, c.slider)

	c.details = container.NewVBox(splitRow, tipRow, sliderRow)
	c.details.Hide()

	border := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	border.StrokeColor = cardBorderColor
	border.StrokeWidth = CardBorderWidth
	border.CornerRadius = CardCornerRadius

	card := container.NewStack(
		border,
		container.NewPadded(container.NewVBox(c.billEntry, c.details)),
	)

	c.container = container.NewPadded(container.NewVBox(
		c.header.Container(),
		card,
	))
	return c
}

// Container returns the screen's root container.
func (c *Calculator) Container() *fyne.Container {
	return c.container
}

// ShowResult implements shell.Sink.
func (c *Calculator) ShowResult(r tip.Result) {
	c.header.SetTotal(c.format.PerPerson(r.PerPerson))
	c.tipValue.SetText(c.format.Tip(r.Tip))
}

// ShowSplit implements shell.Sink.
func (c *Calculator) ShowSplit(n int) {
	c.splitLabel.SetText(strconv.Itoa(n))
	if n > 1 {
		c.minusBtn.Enable()
	} else {
		c.minusBtn.Disable()
	}
}

// ShowTipPercent implements shell.Sink.
func (c *Calculator) ShowTipPercent(p int) {
	c.percentLabel.SetText(c.format.Percent(p))
}

func (c *Calculator) onBillChanged(text string) {
	c.shell.EditBill(text)
	if c.shell.BillValid() {
		c.details.Show()
	} else {
		c.details.Hide()
	}
}

func (c *Calculator) onBillSubmitted(string) {
	if !c.shell.SubmitBill() {
		return
	}
	// Dismiss the soft keyboard.
	if cv := fyne.CurrentApp().Driver().CanvasForObject(c.billEntry); cv != nil {
		cv.Unfocus()
	}
}
