package shell

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"tip-calculator/internal/tip"
)

// Sink receives values for display. Calls happen on the caller's goroutine.
type Sink interface {
	ShowResult(r tip.Result)
	ShowSplit(n int)
	ShowTipPercent(p int)
}

// Parser turns bill text into an amount.
type Parser func(text string) (tip.Amount, error)

// State is a copy of the shell's current inputs and outputs.
type State struct {
	BillText   string
	Split      int
	TipPercent int
	Result     tip.Result
	Recomputes int
}

// Shell holds the calculator inputs and recomputes on user actions.
// It is not safe for concurrent use; drive it from a single event loop.
type Shell struct {
	sink   Sink
	parse  Parser
	logger *slog.Logger

	billText   string
	split      int
	tipPercent int
	result     tip.Result
	recomputes int
}

// New creates a shell with split count 1 and tip percent 0.
// A nil parse reads en-US bill text.
func New(sink Sink, parse Parser, logger *slog.Logger) *Shell {
	if parse == nil {
		parse = tip.ParseBill
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		sink:   sink,
		parse:  parse,
		logger: logger.With("session", uuid.NewString()),
		split:  1,
	}
}

// EditBill records the bill text without recomputing.
func (s *Shell) EditBill(text string) {
	s.billText = text
}

// BillValid reports whether the bill field holds any non-blank text.
func (s *Shell) BillValid() bool {
	return strings.TrimSpace(s.billText) != ""
}

// SubmitBill recomputes from the current bill text.
// Empty or unparseable text leaves the displayed values unchanged.
func (s *Shell) SubmitBill() bool {
	bill, err := s.parse(s.billText)
	if err != nil {
		s.logger.Debug("bill submit skipped", "err", err)
		return false
	}
	s.recompute(bill)
	return true
}

// IncrementSplit adds one person to the split.
func (s *Shell) IncrementSplit() {
	s.split++
	s.sink.ShowSplit(s.split)
	s.recomputeFromText()
}

// DecrementSplit removes one person from the split; at 1 it does nothing.
func (s *Shell) DecrementSplit() {
	if s.split <= 1 {
		return
	}
	s.split--
	s.sink.ShowSplit(s.split)
	s.recomputeFromText()
}

// DragTip updates the live percent label while the slider moves.
func (s *Shell) DragTip(percent int) {
	s.sink.ShowTipPercent(tip.ClampPercent(percent))
}

// ReleaseTip commits the slider value. It recomputes only when the bill
// parses and is greater than 1.
func (s *Shell) ReleaseTip(percent int) bool {
	s.tipPercent = tip.ClampPercent(percent)
	s.sink.ShowTipPercent(s.tipPercent)

	bill, err := s.parse(s.billText)
	if err != nil {
		s.logger.Debug("tip release skipped", "err", err)
		return false
	}
	if bill <= tip.Dollars(1) {
		s.logger.Debug("tip release skipped", "bill", bill.String())
		return false
	}
	s.recompute(bill)
	return true
}

// Snapshot returns the current state.
func (s *Shell) Snapshot() State {
	return State{
		BillText:   s.billText,
		Split:      s.split,
		TipPercent: s.tipPercent,
		Result:     s.result,
		Recomputes: s.recomputes,
	}
}

func (s *Shell) recomputeFromText() {
	bill, err := s.parse(s.billText)
	if err != nil {
		return
	}
	s.recompute(bill)
}

func (s *Shell) recompute(bill tip.Amount) {
	s.result = tip.Recompute(bill, s.split, s.tipPercent)
	s.recomputes++
	s.logger.Debug("recomputed",
		"bill", bill.String(),
		"split", s.split,
		"tip_percent", s.tipPercent,
		"tip", s.result.Tip,
		"per_person", s.result.PerPerson,
	)
	s.sink.ShowResult(s.result)
}
