package tip

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyBill         = errors.New("bill is empty")
	ErrInvalidBill       = errors.New("bill is not a valid amount")
	ErrSplitBelowOne     = errors.New("split count must be at least 1")
	ErrPercentOutOfRange = errors.New("tip percent must be between 0 and 100")
)

// Percent bounds for the tip slider.
const (
	MinPercent = 0
	MaxPercent = 100
)

// maxBill keeps cents*percent within int64.
const maxBill = 1e12

// Amount is a non-negative money value in cents.
type Amount int64

// Dollars returns an Amount for a whole number of currency units.
func Dollars(n int64) Amount {
	return Amount(n * 100)
}

// Float returns the amount in currency units.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

func (a Amount) String() string {
	return strconv.FormatFloat(a.Float(), 'f', 2, 64)
}

// Result holds the values derived from a bill, split count and tip percent.
type Result struct {
	Tip       int64   // whole currency units, truncated
	PerPerson float64 // (bill + tip) / split
}

// Recompute derives the tip and the per-person total.
// Callers must ensure split >= 1 and percent is within [0, 100].
func Recompute(bill Amount, split, percent int) Result {
	// cents * percent / 100 gives tip cents; a further /100 truncates to units.
	tip := int64(bill) * int64(percent) / 10000
	total := bill + Dollars(tip)
	return Result{
		Tip:       tip,
		PerPerson: total.Float() / float64(split),
	}
}

// CheckInputs reports whether split and percent satisfy Recompute's preconditions.
func CheckInputs(split, percent int) error {
	if split < 1 {
		return fmt.Errorf("%w, got %d", ErrSplitBelowOne, split)
	}
	if percent < MinPercent || percent > MaxPercent {
		return fmt.Errorf("%w, got %d", ErrPercentOutOfRange, percent)
	}
	return nil
}

// ClampPercent limits p to [MinPercent, MaxPercent].
func ClampPercent(p int) int {
	return min(max(p, MinPercent), MaxPercent)
}

// Separators are the digit grouping and decimal marks used in bill text.
// Group may be empty for locales that do not group digits.
type Separators struct {
	Group   string
	Decimal string
}

// DefaultSeparators are the en-US marks: "1,234.56".
var DefaultSeparators = Separators{Group: ",", Decimal: "."}

// ParseBill converts en-US user text into an Amount.
func ParseBill(text string) (Amount, error) {
	return ParseBillWith(text, DefaultSeparators)
}

// ParseBillWith converts user text into an Amount using the given marks.
// The text is an optional leading "$", digits with group marks only between
// complete 3-digit groups, and an optional decimal part. Values are rounded
// to cents.
func ParseBillWith(text string, sep Separators) (Amount, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "$"))
	if s == "" {
		return 0, ErrEmptyBill
	}
	if sep.Decimal == "" {
		sep.Decimal = DefaultSeparators.Decimal
	}

	whole, frac, hasFrac := strings.Cut(s, sep.Decimal)
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}
	if hasFrac && !allDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}
	whole, ok := ungroup(whole, sep.Group)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}

	canonical := whole
	if canonical == "" {
		canonical = "0"
	}
	if frac != "" {
		canonical += "." + frac
	}
	v, err := strconv.ParseFloat(canonical, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBill, text)
	}
	if v > maxBill {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidBill, text)
	}
	return Amount(math.Round(v * 100)), nil
}

// ungroup strips group marks from the integer part, requiring every group
// after the first to hold exactly 3 digits.
func ungroup(whole, group string) (string, bool) {
	if group == "" || !strings.Contains(whole, group) {
		return whole, allDigits(whole)
	}
	parts := strings.Split(whole, group)
	for i, p := range parts {
		if !allDigits(p) || p == "" {
			return "", false
		}
		if i == 0 && len(p) > 3 {
			return "", false
		}
		if i > 0 && len(p) != 3 {
			return "", false
		}
	}
	return strings.Join(parts, ""), true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
