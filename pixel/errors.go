// Package pixel resolves per-pixel geometry and calibration values for
// detectors organised as banks of 2-D pixel grids.
package pixel

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrFormat            = errors.New("malformed pixel identifier")
	ErrUnknownSelector   = errors.New("unknown index selector")
	ErrMissingSelector   = errors.New("no index selector bound")
	ErrMissingValue      = errors.New("value not available")
	ErrUnknownBank       = errors.New("unknown bank")
	ErrUnsupportedUnit   = errors.New("unsupported unit")
	ErrUndefinedQuantity = errors.New("quantity not defined")
	ErrNamespaceAccess   = errors.New("namespace access failed")
	ErrMalformedPairList = errors.New("malformed key/provider pair list")
	ErrLengthMismatch    = errors.New("variance table length does not match values")
)

// Errors reported by namespace implementations.
var (
	ErrNotFound   = errors.New("object not found")
	ErrNotGroup   = errors.New("object is not a group")
	ErrNotDataset = errors.New("object is not a dataset")
)

// UnknownBankError is returned when a composite has no provider for a bank key.
type UnknownBankError struct {
	Bank string
}

func (e *UnknownBankError) Error() string {
	return fmt.Sprintf("unknown bank %q", e.Bank)
}

func (e *UnknownBankError) Unwrap() error { return ErrUnknownBank }

// UnknownSelectorError is returned by NewSelector for a tag outside the
// supported set.
type UnknownSelectorError struct {
	Tag string
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("unknown index selector %q", e.Tag)
}

func (e *UnknownSelectorError) Unwrap() error { return ErrUnknownSelector }

// UnsupportedUnitError reports a unit tag that does not match the unit a
// quantity is stored in.
type UnsupportedUnitError struct {
	Quantity string
	Unit     string
	Want     string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("%s: unsupported unit %q (want %q)", e.Quantity, e.Unit, e.Want)
}

func (e *UnsupportedUnitError) Unwrap() error { return ErrUnsupportedUnit }

// NamespaceAccessError wraps a navigation failure reported by a Namespace.
//
// Both ErrNamespaceAccess and the underlying error match via errors.Is.
type NamespaceAccessError struct {
	Path string
	Err  error
}

func (e *NamespaceAccessError) Error() string {
	return fmt.Sprintf("namespace access %q: %v", e.Path, e.Err)
}

func (e *NamespaceAccessError) Unwrap() []error { return []error{ErrNamespaceAccess, e.Err} }
