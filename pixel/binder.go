package pixel

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Binding errors
var (
	ErrNoBanks          = errors.New("no banks found")
	ErrDuplicateBank    = errors.New("duplicate bank key")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownVariant   = errors.New("unknown geometry variant")
)

// DefaultBankPattern matches group names such as "bank1" or "bank42".
const DefaultBankPattern = `^bank\d+$`

// Geometry variants understood by the binder.
const (
	VariantBase   = "base"
	VariantDirect = "direct"
	VariantSum    = "sum"
)

// Source says where a geometry scalar comes from: a constant, or the first
// element of a dataset relative to the bank group. Dataset wins when both
// are set.
type Source struct {
	Value       *float64
	Uncertainty float64
	Dataset     string
	Unit        string
}

// Defined reports whether the source names a constant or a dataset.
func (s Source) Defined() bool {
	return s.Value != nil || s.Dataset != ""
}

// GeometrySpec describes how to build each bank's Geometry.
type GeometrySpec struct {
	Variant   string
	Primary   Source
	Secondary Source
	Polar     Source
	Azimuthal Source
	// LegA and LegB feed the sum variant's secondary flight path.
	LegA Source
	LegB Source
}

// AttributeSpec describes one scalar attribute table per bank.
type AttributeSpec struct {
	Name            string
	Dataset         string
	VarianceDataset string
	Selector        string
	RowStride       int
	Units           string
}

// Layout describes where banks live and what to read for each.
type Layout struct {
	BankPattern string
	Geometry    GeometrySpec
	Attributes  []AttributeSpec
}

// Instrument is the bound result: one geometry composite and one record
// composite per attribute, all keyed by bank.
//
// An Instrument is read-only once Bind returns.
type Instrument struct {
	Geometry   *GeometryComposite
	Attributes map[string]*Composite[Value]
	// BankPaths maps each bank key to its group path.
	BankPaths map[string]string
}

// Banks returns the bound bank keys in sorted order.
func (in *Instrument) Banks() []string {
	return sortedKeys(in.BankPaths)
}

// AttributeNames returns the bound attribute names in sorted order.
func (in *Instrument) AttributeNames() []string {
	return sortedKeys(in.Attributes)
}

// ResolveGeometry returns quantity q for id in unit.
func (in *Instrument) ResolveGeometry(q Quantity, id ID, unit string) (Measurement, error) {
	return Query(in.Geometry, q, id, unit)
}

// ResolveAttribute returns the named attribute for id.
func (in *Instrument) ResolveAttribute(name string, id ID) (Value, error) {
	c, ok := in.Attributes[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return c.Resolve(id)
}

// Binder builds an Instrument from a discovered PathMap.
type Binder struct {
	reader  DatasetReader
	layout  Layout
	pattern *regexp.Regexp
	logger  *slog.Logger
}

// BinderOption configures a Binder.
type BinderOption func(*Binder)

// WithBinderLogger sets the logger used to report bound banks.
func WithBinderLogger(l *slog.Logger) BinderOption {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBinder validates layout and returns a binder reading datasets
// through reader.
func NewBinder(reader DatasetReader, layout Layout, opts ...BinderOption) (*Binder, error) {
	pattern := layout.BankPattern
	if pattern == "" {
		pattern = DefaultBankPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bank pattern: %w", err)
	}
	switch layout.Geometry.Variant {
	case VariantBase, VariantDirect, VariantSum:
	case "":
		layout.Geometry.Variant = VariantBase
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, layout.Geometry.Variant)
	}
	seen := make(map[string]bool, len(layout.Attributes))
	for _, a := range layout.Attributes {
		if a.Name == "" || a.Dataset == "" {
			return nil, fmt.Errorf("attribute %q: name and dataset are required", a.Name)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("attribute %q declared twice", a.Name)
		}
		seen[a.Name] = true
		if _, err := NewSelector(a.Selector, SelectorConfig{RowStride: a.RowStride}); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}

	b := &Binder{
		reader:  reader,
		layout:  layout,
		pattern: re,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Bind finds the bank groups in paths and builds their providers.
func (b *Binder) Bind(paths PathMap) (*Instrument, error) {
	in := &Instrument{
		Geometry:   NewGeometryComposite(nil),
		Attributes: make(map[string]*Composite[Value], len(b.layout.Attributes)),
		BankPaths:  make(map[string]string),
	}
	for _, a := range b.layout.Attributes {
		in.Attributes[a.Name] = NewComposite[Value](nil)
	}

	for _, p := range paths.Groups() {
		key := BaseName(p)
		if !b.pattern.MatchString(key) {
			continue
		}
		if prev, dup := in.BankPaths[key]; dup {
			return nil, fmt.Errorf("%w: %q at %s and %s", ErrDuplicateBank, key, prev, p)
		}
		in.BankPaths[key] = p
	}
	if len(in.BankPaths) == 0 {
		return nil, fmt.Errorf("%w matching %s", ErrNoBanks, b.pattern)
	}

	for _, key := range in.Banks() {
		bankPath := in.BankPaths[key]
		g, err := b.buildGeometry(bankPath)
		if err != nil {
			return nil, fmt.Errorf("bank %s: %w", key, err)
		}
		in.Geometry.Set(key, g)

		for _, a := range b.layout.Attributes {
			r, err := b.buildRecord(bankPath, a)
			if err != nil {
				return nil, fmt.Errorf("bank %s: attribute %s: %w", key, a.Name, err)
			}
			in.Attributes[a.Name].Set(key, r)
		}
		b.logger.Debug("bound bank",
			"bank", key,
			"path", bankPath,
			"geometry", Describe(g),
			"attributes", len(b.layout.Attributes),
		)
	}

	b.logger.Info("instrument bound",
		"banks", len(in.BankPaths),
		"attributes", len(b.layout.Attributes),
	)
	return in, nil
}

func (b *Binder) buildGeometry(bankPath string) (Geometry, error) {
	spec := b.layout.Geometry
	switch spec.Variant {
	case VariantDirect:
		var m [4]Measurement
		srcs := [4]Source{spec.Primary, spec.Secondary, spec.Polar, spec.Azimuthal}
		for i, q := range Quantities() {
			v, ok, err := b.readSource(bankPath, q.String(), srcs[i], UnitOf(q))
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, undefined(q)
			}
			m[i] = v
		}
		g, err := NewDirectGeometry(DirectConfig{Primary: m[0], Secondary: m[1], Polar: m[2], Azimuthal: m[3]})
		if err != nil {
			return nil, err
		}
		return g, nil

	case VariantSum:
		g := NewSumGeometry()
		if err := b.setPrimary(&g.BaseGeometry, bankPath); err != nil {
			return nil, err
		}
		legs := []struct {
			name string
			src  Source
			set  func(value, uncertainty float64, unit string) error
		}{
			{"secondary flight path leg A", spec.LegA, g.SetSecondaryA},
			{"secondary flight path leg B", spec.LegB, g.SetSecondaryB},
		}
		for _, leg := range legs {
			v, ok, err := b.readSource(bankPath, leg.name, leg.src, UnitMeter)
			if err != nil {
				return nil, err
			}
			if ok {
				if err := leg.set(v.Value, v.Uncertainty, UnitMeter); err != nil {
					return nil, err
				}
			}
		}
		return g, nil

	default:
		g := NewBaseGeometry()
		if err := b.setPrimary(g, bankPath); err != nil {
			return nil, err
		}
		return g, nil
	}
}

func (b *Binder) setPrimary(g *BaseGeometry, bankPath string) error {
	v, ok, err := b.readSource(bankPath, PrimaryFlightPath.String(), b.layout.Geometry.Primary, UnitMeter)
	if err != nil || !ok {
		return err
	}
	return g.SetPrimaryFlightPath(v.Value, v.Uncertainty, UnitMeter)
}

// readSource resolves src for the bank at bankPath and checks its unit
// against the accepted spellings of want. ok is false when src is not
// defined.
func (b *Binder) readSource(bankPath, quantity string, src Source, want string) (Measurement, bool, error) {
	if !src.Defined() {
		return Measurement{}, false, nil
	}

	value, unit := 0.0, src.Unit
	if src.Dataset != "" {
		path := JoinPath(bankPath, src.Dataset)
		vals, err := b.reader.ReadFloat64s(path)
		if err != nil {
			return Measurement{}, false, fmt.Errorf("%s: %w: %w", path, ErrMissingValue, err)
		}
		if len(vals) == 0 {
			return Measurement{}, false, fmt.Errorf("%s: %w: empty dataset", path, ErrMissingValue)
		}
		value = vals[0]
		if u, err := b.reader.Units(path); err == nil && u != "" {
			unit = u
		}
	} else {
		value = *src.Value
	}

	if unit == "" {
		unit = want
	}
	var err error
	if want == UnitRadian {
		err = normalizeAngleUnit(quantity, unit)
	} else {
		err = normalizeDistanceUnit(quantity, unit)
	}
	if err != nil {
		return Measurement{}, false, err
	}
	return Measurement{Value: value, Uncertainty: src.Uncertainty}, true, nil
}

func (b *Binder) buildRecord(bankPath string, a AttributeSpec) (*Record, error) {
	sel, err := NewSelector(a.Selector, SelectorConfig{RowStride: a.RowStride})
	if err != nil {
		return nil, err
	}

	path := JoinPath(bankPath, a.Dataset)
	values, err := b.reader.ReadFloat64s(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrMissingValue, err)
	}

	units := a.Units
	if units == "" {
		if u, err := b.reader.Units(path); err == nil {
			units = strings.TrimSpace(u)
		}
	}

	opts := []RecordOption{WithSelector(sel), WithUnits(units)}
	if a.VarianceDataset != "" {
		vpath := JoinPath(bankPath, a.VarianceDataset)
		variances, err := b.reader.ReadFloat64s(vpath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", vpath, ErrMissingValue, err)
		}
		opts = append(opts, WithVariances(variances))
	}
	return NewRecord(values, opts...)
}
