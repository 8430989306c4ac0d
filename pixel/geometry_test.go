package pixel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirect(t *testing.T) *DirectGeometry {
	t.Helper()
	g, err := NewDirectGeometry(DirectConfig{
		Primary:   Measurement{Value: 15.0},
		Secondary: Measurement{Value: 1.0, Uncertainty: 0.01},
		Polar:     Measurement{Value: 0.785},
		Azimuthal: Measurement{Value: 0},
	})
	require.NoError(t, err)
	return g
}

func TestDirectGeometry(t *testing.T) {
	g := newDirect(t)
	id := ID{Bank: "bank1", I: 2, J: 3}

	m, err := g.SecondaryFlightPath(id, "meter")
	require.NoError(t, err)
	assert.Equal(t, Measurement{Value: 1.0, Uncertainty: 0.01}, m)

	m, err = g.PrimaryFlightPath(ID{}, UnitMeter)
	require.NoError(t, err)
	assert.Equal(t, 15.0, m.Value)

	m, err = g.PolarAngle(id, UnitRadian)
	require.NoError(t, err)
	assert.Equal(t, 0.785, m.Value)

	m, err = g.AzimuthalAngle(id, UnitRadian)
	require.NoError(t, err)
	assert.Zero(t, m.Value)

	_, err = g.SecondaryFlightPath(id, "foot")
	require.ErrorIs(t, err, ErrUnsupportedUnit)
	var uue *UnsupportedUnitError
	require.True(t, errors.As(err, &uue))
	assert.Equal(t, "foot", uue.Unit)
	assert.Equal(t, UnitMeter, uue.Want)
}

func TestDirectGeometryUnits(t *testing.T) {
	_, err := NewDirectGeometry(DirectConfig{DistanceUnit: "metres", AngleUnit: "rad"})
	assert.NoError(t, err)

	_, err = NewDirectGeometry(DirectConfig{DistanceUnit: "inch"})
	assert.ErrorIs(t, err, ErrUnsupportedUnit)

	_, err = NewDirectGeometry(DirectConfig{AngleUnit: "degree"})
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestRetrievalUnitIsExact(t *testing.T) {
	g := newDirect(t)
	for _, unit := range []string{"m", "metre", "meters", "Meter"} {
		_, err := g.PrimaryFlightPath(ID{}, unit)
		assert.ErrorIs(t, err, ErrUnsupportedUnit, unit)
	}
	_, err := g.PolarAngle(ID{}, "rad")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
	_, err = g.PolarAngle(ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestBaseGeometry(t *testing.T) {
	g := NewBaseGeometry()

	_, err := g.PrimaryFlightPath(ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)

	require.NoError(t, g.SetPrimaryFlightPath(20.5, 0.1, "metres"))
	m, err := g.PrimaryFlightPath(ID{}, UnitMeter)
	require.NoError(t, err)
	assert.Equal(t, Measurement{Value: 20.5, Uncertainty: 0.1}, m)

	assert.ErrorIs(t, g.SetPrimaryFlightPath(1, 0, "furlong"), ErrUnsupportedUnit)

	_, err = g.SecondaryFlightPath(ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)
	_, err = g.PolarAngle(ID{}, UnitRadian)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)
	_, err = g.AzimuthalAngle(ID{}, UnitRadian)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)

	// unit is checked before definedness
	_, err = g.PolarAngle(ID{}, "degree")
	assert.ErrorIs(t, err, ErrUnsupportedUnit)
}

func TestSumGeometry(t *testing.T) {
	g := NewSumGeometry()

	_, err := g.SecondaryFlightPath(ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)

	require.NoError(t, g.SetSecondaryA(0.6, 0.03, "m"))
	_, err = g.SecondaryFlightPath(ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUndefinedQuantity, "leg B still unset")

	require.NoError(t, g.SetSecondaryB(0.4, 0.04, "meters"))
	m, err := g.SecondaryFlightPath(ID{}, UnitMeter)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Value, 1e-12)
	assert.InDelta(t, 0.05, m.Uncertainty, 1e-12)

	assert.ErrorIs(t, g.SetSecondaryB(1, 0, "ft"), ErrUnsupportedUnit)

	_, err = g.PolarAngle(ID{}, UnitRadian)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)
	_, err = g.AzimuthalAngle(ID{}, UnitRadian)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)

	require.NoError(t, g.SetPrimaryFlightPath(12, 0, UnitMeter))
	m, err = g.PrimaryFlightPath(ID{}, UnitMeter)
	require.NoError(t, err)
	assert.Equal(t, 12.0, m.Value)
}

func TestQuery(t *testing.T) {
	g := newDirect(t)
	for _, q := range Quantities() {
		_, err := Query(g, q, ID{}, UnitOf(q))
		assert.NoError(t, err, q.String())
	}
	_, err := Query(g, Quantity(99), ID{}, UnitMeter)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)
	assert.Equal(t, "Quantity(99)", Quantity(99).String())
}

func TestGeometryComposite(t *testing.T) {
	sum := NewSumGeometry()
	require.NoError(t, sum.SetSecondaryA(1, 0, UnitMeter))
	require.NoError(t, sum.SetSecondaryB(2, 0, UnitMeter))

	c, err := GeometryCompositeFromPairs("bank1", newDirect(t), "bank2", sum)
	require.NoError(t, err)
	assert.Equal(t, []string{"bank1", "bank2"}, c.Banks())

	m, err := c.SecondaryFlightPath(ID{Bank: "bank2"}, UnitMeter)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.Value)

	m, err = c.PolarAngle(ID{Bank: "bank1"}, UnitRadian)
	require.NoError(t, err)
	assert.Equal(t, 0.785, m.Value)

	_, err = c.PolarAngle(ID{Bank: "bank2"}, UnitRadian)
	assert.ErrorIs(t, err, ErrUndefinedQuantity)

	_, err = c.PrimaryFlightPath(ID{Bank: "bank9"}, UnitMeter)
	assert.ErrorIs(t, err, ErrUnknownBank)

	outer := NewGeometryComposite(map[string]Geometry{"bank1": c})
	m, err = outer.AzimuthalAngle(ID{Bank: "bank1"}, UnitRadian)
	require.NoError(t, err)
	assert.Zero(t, m.Value)

	_, err = GeometryCompositeFromPairs("bank1", newDirect(t), "bank2")
	assert.ErrorIs(t, err, ErrMalformedPairList)
	_, err = GeometryCompositeFromPairs("bank1", 42)
	assert.ErrorIs(t, err, ErrMalformedPairList)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "base", Describe(NewBaseGeometry()))
	assert.Equal(t, "sum", Describe(NewSumGeometry()))
	assert.Equal(t, "direct", Describe(newDirect(t)))
	assert.Equal(t, "composite(1 banks)", Describe(NewGeometryComposite(map[string]Geometry{"b": NewBaseGeometry()})))
}
