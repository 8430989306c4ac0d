package pixel

import "strings"

// Units in which geometry quantities are stored and must be requested.
const (
	UnitMeter  = "meter"
	UnitRadian = "radian"
)

// Spellings accepted when setting a quantity. Retrieval only accepts the
// canonical UnitMeter and UnitRadian.
var (
	distanceSpellings = map[string]bool{
		"meter": true, "m": true, "metre": true, "meters": true, "metres": true,
	}
	angleSpellings = map[string]bool{
		"radian": true, "rad": true, "radians": true,
	}
)

// normalizeDistanceUnit maps any accepted distance spelling to UnitMeter.
func normalizeDistanceUnit(quantity, unit string) error {
	if distanceSpellings[strings.ToLower(strings.TrimSpace(unit))] {
		return nil
	}
	return &UnsupportedUnitError{Quantity: quantity, Unit: unit, Want: UnitMeter}
}

// normalizeAngleUnit maps any accepted angle spelling to UnitRadian.
func normalizeAngleUnit(quantity, unit string) error {
	if angleSpellings[strings.ToLower(strings.TrimSpace(unit))] {
		return nil
	}
	return &UnsupportedUnitError{Quantity: quantity, Unit: unit, Want: UnitRadian}
}

// checkUnit is the retrieval-side check: exact match only.
func checkUnit(quantity, unit, want string) error {
	if unit != want {
		return &UnsupportedUnitError{Quantity: quantity, Unit: unit, Want: want}
	}
	return nil
}
