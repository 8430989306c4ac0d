package pixel

import "fmt"

// Value is a resolved scalar with its variance.
type Value struct {
	Value    float64
	Variance float64
}

// Record is a per-bank table of scalar values (for example detector
// efficiencies) indexed through a Selector.
//
// A Record is immutable after NewRecord returns and safe for concurrent
// Resolve calls.
type Record struct {
	values    []float64
	variances []float64
	units     string
	selector  Selector
}

// RecordOption configures record construction.
type RecordOption func(*Record)

// WithVariances attaches a variance table. It must have the same length
// as the value table.
func WithVariances(variances []float64) RecordOption {
	return func(r *Record) {
		r.variances = variances
	}
}

// WithUnits sets the units string reported by Units.
func WithUnits(units string) RecordOption {
	return func(r *Record) {
		r.units = units
	}
}

// WithSelector binds the selector used to turn an ID into an offset.
func WithSelector(s Selector) RecordOption {
	return func(r *Record) {
		r.selector = s
	}
}

// NewRecord creates a record over values. A record without a selector can
// be built but every Resolve on it fails with ErrMissingSelector.
func NewRecord(values []float64, opts ...RecordOption) (*Record, error) {
	r := &Record{values: values}
	for _, opt := range opts {
		opt(r)
	}
	if r.variances != nil && len(r.variances) != len(r.values) {
		return nil, fmt.Errorf("%w: %d variances for %d values",
			ErrLengthMismatch, len(r.variances), len(r.values))
	}
	return r, nil
}

// Resolve returns the value and variance stored for id. Records without
// a variance table report a variance of 0.
func (r *Record) Resolve(id ID) (Value, error) {
	if r.selector == nil {
		return Value{}, fmt.Errorf("resolve %s: %w", id, ErrMissingSelector)
	}
	offset := r.selector.IndexOf(id)
	if r.values == nil || offset < 0 || offset >= len(r.values) {
		return Value{}, fmt.Errorf("resolve %s: %w: offset %d outside table of %d",
			id, ErrMissingValue, offset, len(r.values))
	}

	v := Value{Value: r.values[offset]}
	if r.variances != nil {
		v.Variance = r.variances[offset]
	}
	return v, nil
}

// Len returns the number of values in the table.
func (r *Record) Len() int { return len(r.values) }

// Units returns the units string the record was built with.
func (r *Record) Units() string { return r.units }

// Selector returns the bound selector, or nil.
func (r *Record) Selector() Selector { return r.selector }

// HasVariances reports whether a variance table was supplied.
func (r *Record) HasVariances() bool { return r.variances != nil }
