package pixel

import (
	"fmt"
	"sort"
)

// Resolver resolves a pixel ID to a value of type R.
//
// *Record implements Resolver[Value]; *Composite[R] implements Resolver[R],
// so composites may be nested.
type Resolver[R any] interface {
	Resolve(id ID) (R, error)
}

// Composite dispatches a pixel ID to the provider registered for its bank.
//
// A composite is built by one owner (NewComposite, CompositeFromPairs, Set)
// and then published; concurrent Resolve calls are safe, concurrent Set
// calls are not.
type Composite[R any] struct {
	children map[string]Resolver[R]
}

// NewComposite creates a composite over children. The map is copied.
func NewComposite[R any](children map[string]Resolver[R]) *Composite[R] {
	c := &Composite[R]{children: make(map[string]Resolver[R], len(children))}
	for k, v := range children {
		c.children[k] = v
	}
	return c
}

// CompositeFromPairs builds a composite from alternating bank keys and
// providers:
//
//	CompositeFromPairs[pixel.Value]("bank1", recA, "bank2", recB)
//
// An odd number of arguments, a non-string key or a provider that is not a
// Resolver[R] yields ErrMalformedPairList.
func CompositeFromPairs[R any](pairs ...any) (*Composite[R], error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedPairList, len(pairs))
	}
	c := &Composite[R]{children: make(map[string]Resolver[R], len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: key at %d is %T, not string", ErrMalformedPairList, i, pairs[i])
		}
		provider, ok := pairs[i+1].(Resolver[R])
		if !ok {
			return nil, fmt.Errorf("%w: provider for %q is %T", ErrMalformedPairList, key, pairs[i+1])
		}
		c.children[key] = provider
	}
	return c, nil
}

// Set inserts or replaces the provider for key. Call only during
// construction.
func (c *Composite[R]) Set(key string, provider Resolver[R]) {
	if c.children == nil {
		c.children = make(map[string]Resolver[R])
	}
	c.children[key] = provider
}

// Resolve delegates to the provider registered for id.Bank.
func (c *Composite[R]) Resolve(id ID) (R, error) {
	child, ok := c.children[id.Bank]
	if !ok {
		var zero R
		return zero, &UnknownBankError{Bank: id.Bank}
	}
	return child.Resolve(id)
}

// Provider returns the provider registered for bank.
func (c *Composite[R]) Provider(bank string) (Resolver[R], bool) {
	p, ok := c.children[bank]
	return p, ok
}

// Banks returns the registered bank keys in sorted order.
func (c *Composite[R]) Banks() []string {
	return sortedKeys(c.children)
}

// Len returns the number of registered banks.
func (c *Composite[R]) Len() int { return len(c.children) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
