package pixel

import "fmt"

// GeometryComposite routes geometry queries to the Geometry registered for
// the pixel's bank. It is itself a Geometry, so composites may be nested.
type GeometryComposite struct {
	children map[string]Geometry
}

// NewGeometryComposite creates a composite over children. The map is copied.
func NewGeometryComposite(children map[string]Geometry) *GeometryComposite {
	c := &GeometryComposite{children: make(map[string]Geometry, len(children))}
	for k, v := range children {
		c.children[k] = v
	}
	return c
}

// GeometryCompositeFromPairs builds a composite from alternating bank keys
// and Geometry values. See CompositeFromPairs for the error contract.
func GeometryCompositeFromPairs(pairs ...any) (*GeometryComposite, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedPairList, len(pairs))
	}
	c := &GeometryComposite{children: make(map[string]Geometry, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: key at %d is %T, not string", ErrMalformedPairList, i, pairs[i])
		}
		g, ok := pairs[i+1].(Geometry)
		if !ok {
			return nil, fmt.Errorf("%w: provider for %q is %T", ErrMalformedPairList, key, pairs[i+1])
		}
		c.children[key] = g
	}
	return c, nil
}

// Set inserts or replaces the geometry for key. Call only during
// construction.
func (c *GeometryComposite) Set(key string, g Geometry) {
	if c.children == nil {
		c.children = make(map[string]Geometry)
	}
	c.children[key] = g
}

// Provider returns the geometry registered for bank.
func (c *GeometryComposite) Provider(bank string) (Geometry, bool) {
	g, ok := c.children[bank]
	return g, ok
}

// Banks returns the registered bank keys in sorted order.
func (c *GeometryComposite) Banks() []string {
	return sortedKeys(c.children)
}

// Len returns the number of registered banks.
func (c *GeometryComposite) Len() int { return len(c.children) }

func (c *GeometryComposite) lookup(id ID) (Geometry, error) {
	g, ok := c.children[id.Bank]
	if !ok {
		return nil, &UnknownBankError{Bank: id.Bank}
	}
	return g, nil
}

func (c *GeometryComposite) PrimaryFlightPath(id ID, unit string) (Measurement, error) {
	g, err := c.lookup(id)
	if err != nil {
		return Measurement{}, err
	}
	return g.PrimaryFlightPath(id, unit)
}

func (c *GeometryComposite) SecondaryFlightPath(id ID, unit string) (Measurement, error) {
	g, err := c.lookup(id)
	if err != nil {
		return Measurement{}, err
	}
	return g.SecondaryFlightPath(id, unit)
}

func (c *GeometryComposite) PolarAngle(id ID, unit string) (Measurement, error) {
	g, err := c.lookup(id)
	if err != nil {
		return Measurement{}, err
	}
	return g.PolarAngle(id, unit)
}

func (c *GeometryComposite) AzimuthalAngle(id ID, unit string) (Measurement, error) {
	g, err := c.lookup(id)
	if err != nil {
		return Measurement{}, err
	}
	return g.AzimuthalAngle(id, unit)
}

func (*GeometryComposite) geometry() {}
