package pixel

import (
	"strings"
)

// Selector maps a pixel ID to an offset into a flat value table.
//
// The set of selectors is closed: BySlow, ByFast, ByZero and ByCombined.
// Selectors hold no per-table state and may be shared between records.
// IndexOf performs no bounds checking; that is the record's job.
type Selector interface {
	IndexOf(id ID) int
	Kind() string
	selector()
}

// Selector tags, as accepted by NewSelector and returned by Kind.
const (
	KindSlow     = "slow"
	KindFast     = "fast"
	KindZero     = "zero"
	KindCombined = "combined"
)

// BySlow selects the slow index (I).
type BySlow struct{}

// ByFast selects the fast index (J).
type ByFast struct{}

// ByZero always selects offset 0, for per-bank constants.
type ByZero struct{}

// ByCombined flattens (I, J) row-major: I*RowStride + J.
type ByCombined struct {
	RowStride int
}

func (BySlow) IndexOf(id ID) int { return id.I }
func (ByFast) IndexOf(id ID) int { return id.J }
func (ByZero) IndexOf(ID) int { return 0 }
func (s ByCombined) IndexOf(id ID) int { return id.I*s.RowStride + id.J }

func (BySlow) Kind() string { return KindSlow }
func (ByFast) Kind() string { return KindFast }
func (ByZero) Kind() string { return KindZero }
func (ByCombined) Kind() string { return KindCombined }

func (BySlow) selector() {}
func (ByFast) selector() {}
func (ByZero) selector() {}
func (ByCombined) selector() {}

// SelectorConfig carries the parameters some selectors need.
type SelectorConfig struct {
	// RowStride is the number of fast-index positions per slow index,
	// used by the combined selector.
	RowStride int
}

// NewSelector returns the selector for tag. Tags are case-insensitive;
// "i" and "j" are accepted as aliases of "slow" and "fast", "ij" of
// "combined". Any other tag yields an *UnknownSelectorError.
func NewSelector(tag string, cfg SelectorConfig) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case KindSlow, "i":
		return BySlow{}, nil
	case KindFast, "j":
		return ByFast{}, nil
	case KindZero:
		return ByZero{}, nil
	case KindCombined, "ij":
		return ByCombined{RowStride: cfg.RowStride}, nil
	default:
		return nil, &UnknownSelectorError{Tag: tag}
	}
}

// IndexOf is the package-level spelling of s.IndexOf(id).
func IndexOf(s Selector, id ID) int {
	return s.IndexOf(id)
}
