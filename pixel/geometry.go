package pixel

import (
	"fmt"
	"math"
)

// Measurement is a geometry quantity with its uncertainty.
type Measurement struct {
	Value       float64
	Uncertainty float64
}

// Quantity names one of the geometry capabilities.
type Quantity int

const (
	PrimaryFlightPath Quantity = iota
	SecondaryFlightPath
	PolarAngle
	AzimuthalAngle
)

var quantityNames = [...]string{
	PrimaryFlightPath:   "primary flight path",
	SecondaryFlightPath: "secondary flight path",
	PolarAngle:          "polar angle",
	AzimuthalAngle:      "azimuthal angle",
}

func (q Quantity) String() string {
	if q < 0 || int(q) >= len(quantityNames) {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantityNames[q]
}

// Quantities lists every geometry quantity in declaration order.
func Quantities() []Quantity {
	return []Quantity{PrimaryFlightPath, SecondaryFlightPath, PolarAngle, AzimuthalAngle}
}

// Geometry provides the flight paths and scattering angles of a pixel.
//
// Distances are served in UnitMeter and angles in UnitRadian; any other
// requested unit fails with ErrUnsupportedUnit. The set of implementations
// is closed: *BaseGeometry, *DirectGeometry, *SumGeometry and
// *GeometryComposite.
type Geometry interface {
	PrimaryFlightPath(id ID, unit string) (Measurement, error)
	SecondaryFlightPath(id ID, unit string) (Measurement, error)
	PolarAngle(id ID, unit string) (Measurement, error)
	AzimuthalAngle(id ID, unit string) (Measurement, error)
	geometry()
}

// Query calls the accessor of g named by q.
func Query(g Geometry, q Quantity, id ID, unit string) (Measurement, error) {
	switch q {
	case PrimaryFlightPath:
		return g.PrimaryFlightPath(id, unit)
	case SecondaryFlightPath:
		return g.SecondaryFlightPath(id, unit)
	case PolarAngle:
		return g.PolarAngle(id, unit)
	case AzimuthalAngle:
		return g.AzimuthalAngle(id, unit)
	default:
		return Measurement{}, fmt.Errorf("%w: %v", ErrUndefinedQuantity, q)
	}
}

// UnitOf returns the unit q must be requested in.
func UnitOf(q Quantity) string {
	if q == PolarAngle || q == AzimuthalAngle {
		return UnitRadian
	}
	return UnitMeter
}

func undefined(q Quantity) error {
	return fmt.Errorf("%v: %w", q, ErrUndefinedQuantity)
}

// BaseGeometry answers only the primary flight path, and only once it has
// been set. Every other quantity is undefined.
type BaseGeometry struct {
	primary *Measurement
}

// NewBaseGeometry returns a geometry with nothing defined.
func NewBaseGeometry() *BaseGeometry {
	return &BaseGeometry{}
}

// SetPrimaryFlightPath sets the source-to-sample distance. unit may be any
// accepted spelling of meter.
func (g *BaseGeometry) SetPrimaryFlightPath(value, uncertainty float64, unit string) error {
	if err := normalizeDistanceUnit(PrimaryFlightPath.String(), unit); err != nil {
		return err
	}
	g.primary = &Measurement{Value: value, Uncertainty: uncertainty}
	return nil
}

func (g *BaseGeometry) PrimaryFlightPath(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(PrimaryFlightPath.String(), unit, UnitMeter); err != nil {
		return Measurement{}, err
	}
	if g.primary == nil {
		return Measurement{}, undefined(PrimaryFlightPath)
	}
	return *g.primary, nil
}

func (g *BaseGeometry) SecondaryFlightPath(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(SecondaryFlightPath.String(), unit, UnitMeter); err != nil {
		return Measurement{}, err
	}
	return Measurement{}, undefined(SecondaryFlightPath)
}

func (g *BaseGeometry) PolarAngle(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(PolarAngle.String(), unit, UnitRadian); err != nil {
		return Measurement{}, err
	}
	return Measurement{}, undefined(PolarAngle)
}

func (g *BaseGeometry) AzimuthalAngle(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(AzimuthalAngle.String(), unit, UnitRadian); err != nil {
		return Measurement{}, err
	}
	return Measurement{}, undefined(AzimuthalAngle)
}

func (*BaseGeometry) geometry() {}

// DirectGeometry has fixed flight paths and angles shared by every pixel
// in the bank.
type DirectGeometry struct {
	primary   Measurement
	secondary Measurement
	polar     Measurement
	azimuthal Measurement
}

// DirectConfig holds the constants of a DirectGeometry. DistanceUnit and
// AngleUnit accept any spelling of meter and radian respectively; empty
// means canonical.
type DirectConfig struct {
	Primary      Measurement
	Secondary    Measurement
	Polar        Measurement
	Azimuthal    Measurement
	DistanceUnit string
	AngleUnit    string
}

// NewDirectGeometry validates the units of cfg and returns the geometry.
func NewDirectGeometry(cfg DirectConfig) (*DirectGeometry, error) {
	du, au := cfg.DistanceUnit, cfg.AngleUnit
	if du == "" {
		du = UnitMeter
	}
	if au == "" {
		au = UnitRadian
	}
	if err := normalizeDistanceUnit("flight path", du); err != nil {
		return nil, err
	}
	if err := normalizeAngleUnit("angle", au); err != nil {
		return nil, err
	}
	return &DirectGeometry{
		primary:   cfg.Primary,
		secondary: cfg.Secondary,
		polar:     cfg.Polar,
		azimuthal: cfg.Azimuthal,
	}, nil
}

func (g *DirectGeometry) PrimaryFlightPath(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(PrimaryFlightPath.String(), unit, UnitMeter); err != nil {
		return Measurement{}, err
	}
	return g.primary, nil
}

func (g *DirectGeometry) SecondaryFlightPath(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(SecondaryFlightPath.String(), unit, UnitMeter); err != nil {
		return Measurement{}, err
	}
	return g.secondary, nil
}

func (g *DirectGeometry) PolarAngle(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(PolarAngle.String(), unit, UnitRadian); err != nil {
		return Measurement{}, err
	}
	return g.polar, nil
}

func (g *DirectGeometry) AzimuthalAngle(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(AzimuthalAngle.String(), unit, UnitRadian); err != nil {
		return Measurement{}, err
	}
	return g.azimuthal, nil
}

func (*DirectGeometry) geometry() {}

// SumGeometry exposes a secondary flight path made of two legs, for
// instruments where the scattered neutron travels sample -> analyser ->
// detector. Each leg is set independently. Angles are undefined.
type SumGeometry struct {
	BaseGeometry
	legA *Measurement
	legB *Measurement
}

// NewSumGeometry returns a geometry with both legs unset.
func NewSumGeometry() *SumGeometry {
	return &SumGeometry{}
}

// SetSecondaryA sets the first leg of the secondary flight path.
func (g *SumGeometry) SetSecondaryA(value, uncertainty float64, unit string) error {
	if err := normalizeDistanceUnit("secondary flight path leg A", unit); err != nil {
		return err
	}
	g.legA = &Measurement{Value: value, Uncertainty: uncertainty}
	return nil
}

// SetSecondaryB sets the second leg of the secondary flight path.
func (g *SumGeometry) SetSecondaryB(value, uncertainty float64, unit string) error {
	if err := normalizeDistanceUnit("secondary flight path leg B", unit); err != nil {
		return err
	}
	g.legB = &Measurement{Value: value, Uncertainty: uncertainty}
	return nil
}

// SecondaryFlightPath returns legA + legB, with the uncertainties added in
// quadrature. It fails if either leg is unset.
func (g *SumGeometry) SecondaryFlightPath(_ ID, unit string) (Measurement, error) {
	if err := checkUnit(SecondaryFlightPath.String(), unit, UnitMeter); err != nil {
		return Measurement{}, err
	}
	if g.legA == nil || g.legB == nil {
		return Measurement{}, undefined(SecondaryFlightPath)
	}
	return Measurement{
		Value:       g.legA.Value + g.legB.Value,
		Uncertainty: math.Hypot(g.legA.Uncertainty, g.legB.Uncertainty),
	}, nil
}

// Describe returns a short name for the variant of g.
func Describe(g Geometry) string {
	switch g := g.(type) {
	case *DirectGeometry:
		return "direct"
	case *SumGeometry:
		return "sum"
	case *BaseGeometry:
		return "base"
	case *GeometryComposite:
		return fmt.Sprintf("composite(%d banks)", g.Len())
	default:
		return fmt.Sprintf("%T", g)
	}
}
