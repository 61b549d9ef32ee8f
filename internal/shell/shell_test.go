package shell

import (
	"io"
	"log/slog"
	"testing"

	"tip-calculator/internal/tip"
)

type recordingSink struct {
	results  []tip.Result
	splits   []int
	percents []int
}

func (r *recordingSink) ShowResult(res tip.Result) { r.results = append(r.results, res) }
func (r *recordingSink) ShowSplit(n int)           { r.splits = append(r.splits, n) }
func (r *recordingSink) ShowTipPercent(p int)      { r.percents = append(r.percents, p) }

func (r *recordingSink) last() tip.Result {
	return r.results[len(r.results)-1]
}

func newTestShell() (*Shell, *recordingSink) {
	sink := &recordingSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(sink, nil, logger), sink
}

func TestNew_Defaults(t *testing.T) {
	s, _ := newTestShell()
	st := s.Snapshot()
	if st.Split != 1 {
		t.Errorf("Split = %d, want 1", st.Split)
	}
	if st.TipPercent != 0 {
		t.Errorf("TipPercent = %d, want 0", st.TipPercent)
	}
	if st.Recomputes != 0 {
		t.Errorf("Recomputes = %d, want 0", st.Recomputes)
	}
	if s.BillValid() {
		t.Error("BillValid() should be false before any input")
	}
}

func TestNew_NilLogger(t *testing.T) {
	s := New(&recordingSink{}, nil, nil)
	s.EditBill("10")
	if !s.SubmitBill() {
		t.Error("SubmitBill() = false, want true")
	}
}

func TestSubmitBill(t *testing.T) {
	s, sink := newTestShell()

	s.EditBill("100")
	if len(sink.results) != 0 {
		t.Fatal("editing the bill should not recompute")
	}
	if !s.SubmitBill() {
		t.Fatal("SubmitBill() = false, want true")
	}
	if got := sink.last(); got.Tip != 0 || got.PerPerson != 100 {
		t.Errorf("result = %+v, want tip 0 per person 100", got)
	}
}

func TestSubmitBill_EmptyOrInvalidKeepsDisplay(t *testing.T) {
	s, sink := newTestShell()
	s.EditBill("60")
	s.SubmitBill()
	before := s.Snapshot().Result

	for _, text := range []string{"", "   ", "twelve", "-4"} {
		s.EditBill(text)
		if s.SubmitBill() {
			t.Errorf("SubmitBill() with %q = true, want false", text)
		}
	}
	if len(sink.results) != 1 {
		t.Errorf("got %d results, want 1", len(sink.results))
	}
	if s.Snapshot().Result != before {
		t.Errorf("result changed to %+v, want %+v", s.Snapshot().Result, before)
	}
}

func TestSplitIncrementDecrement(t *testing.T) {
	s, sink := newTestShell()
	s.EditBill("100")
	s.SubmitBill()

	s.IncrementSplit()
	s.IncrementSplit()
	s.IncrementSplit()
	if got := s.Snapshot().Split; got != 4 {
		t.Fatalf("Split = %d, want 4", got)
	}
	if got := sink.last().PerPerson; got != 25 {
		t.Errorf("PerPerson = %f, want 25", got)
	}

	s.DecrementSplit()
	if got := sink.last().PerPerson; got != 100.0/3 {
		t.Errorf("PerPerson = %f, want %f", got, 100.0/3)
	}
	want := []int{2, 3, 4, 3}
	if len(sink.splits) != len(want) {
		t.Fatalf("splits = %v, want %v", sink.splits, want)
	}
	for i := range want {
		if sink.splits[i] != want[i] {
			t.Errorf("splits = %v, want %v", sink.splits, want)
			break
		}
	}
}

func TestDecrementSplit_AtOneIsNoop(t *testing.T) {
	s, sink := newTestShell()
	s.EditBill("100")
	s.SubmitBill()

	s.DecrementSplit()
	if got := s.Snapshot().Split; got != 1 {
		t.Errorf("Split = %d, want 1", got)
	}
	if len(sink.splits) != 0 {
		t.Errorf("ShowSplit called %d times, want 0", len(sink.splits))
	}
	if got := s.Snapshot().Recomputes; got != 1 {
		t.Errorf("Recomputes = %d, want 1", got)
	}
}

func TestSplitWithoutBill(t *testing.T) {
	s, sink := newTestShell()
	s.IncrementSplit()
	if got := s.Snapshot().Split; got != 2 {
		t.Errorf("Split = %d, want 2", got)
	}
	if len(sink.results) != 0 {
		t.Errorf("split change without a bill should not recompute")
	}
}

func TestTipDragDoesNotRecompute(t *testing.T) {
	s, sink := newTestShell()
	s.EditBill("100")
	s.SubmitBill()

	for _, p := range []int{20, 40, 60} {
		s.DragTip(p)
	}
	if got := s.Snapshot().Recomputes; got != 1 {
		t.Errorf("Recomputes = %d after drag, want 1", got)
	}
	if got := s.Snapshot().TipPercent; got != 0 {
		t.Errorf("TipPercent = %d after drag, want 0", got)
	}
	if len(sink.percents) != 3 || sink.percents[2] != 60 {
		t.Errorf("percents = %v, want live labels ending at 60", sink.percents)
	}

	if !s.ReleaseTip(20) {
		t.Fatal("ReleaseTip() = false, want true")
	}
	if got := s.Snapshot().Recomputes; got != 2 {
		t.Errorf("Recomputes = %d after release, want 2", got)
	}
	if got := sink.last(); got.Tip != 20 || got.PerPerson != 120 {
		t.Errorf("result = %+v, want tip 20 per person 120", got)
	}
}

func TestReleaseTip_Guards(t *testing.T) {
	tests := []struct {
		name string
		bill string
		want bool
	}{
		{"empty bill", "", false},
		{"unparseable bill", "abc", false},
		{"bill of one", "1", false},
		{"bill below one", "0.50", false},
		{"bill above one", "1.50", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sink := newTestShell()
			s.EditBill(tt.bill)
			if got := s.ReleaseTip(40); got != tt.want {
				t.Errorf("ReleaseTip() = %v, want %v", got, tt.want)
			}
			if got := s.Snapshot().TipPercent; got != 40 {
				t.Errorf("TipPercent = %d, want 40", got)
			}
			if (len(sink.results) > 0) != tt.want {
				t.Errorf("got %d results, want recompute = %v", len(sink.results), tt.want)
			}
		})
	}
}

func TestReleaseTip_Clamps(t *testing.T) {
	s, _ := newTestShell()
	s.EditBill("10")
	s.ReleaseTip(250)
	if got := s.Snapshot().TipPercent; got != 100 {
		t.Errorf("TipPercent = %d, want 100", got)
	}
}

func TestFullSession(t *testing.T) {
	s, sink := newTestShell()
	s.EditBill("100")
	s.SubmitBill()
	s.ReleaseTip(20)
	s.IncrementSplit()
	s.IncrementSplit()
	s.IncrementSplit()

	got := sink.last()
	if got.Tip != 20 || got.PerPerson != 30 {
		t.Errorf("result = %+v, want tip 20 per person 30", got)
	}

	// Tip follows the bill rather than a stored amount.
	s.EditBill("200")
	s.SubmitBill()
	got = sink.last()
	if got.Tip != 40 || got.PerPerson != 60 {
		t.Errorf("result = %+v, want tip 40 per person 60", got)
	}
}

func TestSubmitBill_CustomParser(t *testing.T) {
	german := func(text string) (tip.Amount, error) {
		return tip.ParseBillWith(text, tip.Separators{Group: ".", Decimal: ","})
	}
	sink := &recordingSink{}
	s := New(sink, german, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.EditBill("1.030,50")
	if !s.SubmitBill() {
		t.Fatal("SubmitBill() = false, want true")
	}
	if got := sink.last().PerPerson; got != 1030.5 {
		t.Errorf("PerPerson = %f, want 1030.5", got)
	}

	s.EditBill("12,50")
	s.ReleaseTip(20)
	if got := sink.last(); got.Tip != 2 || got.PerPerson != 14.5 {
		t.Errorf("result = %+v, want tip 2 per person 14.5", got)
	}
}
