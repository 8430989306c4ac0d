package pixel

import (
	"sort"
	"strings"
)

// NodeType tags a namespace entry.
type NodeType string

const (
	NodeGroup   NodeType = "group"
	NodeDataset NodeType = "dataset"
)

// Terminal reports whether entries of this type have no children.
func (t NodeType) Terminal() bool { return t == NodeDataset }

// PathMap maps every discovered absolute path to its node type.
// The root "/" itself is not an entry.
type PathMap map[string]NodeType

// Paths returns all paths in sorted order.
func (m PathMap) Paths() []string {
	return sortedKeys(m)
}

// Children returns the sorted paths whose immediate parent is parent.
func (m PathMap) Children(parent string) []string {
	parent = CleanPath(parent)
	var out []string
	for p := range m {
		if ParentPath(p) == parent {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Groups returns the sorted paths tagged NodeGroup.
func (m PathMap) Groups() []string {
	return m.ofType(NodeGroup)
}

// Datasets returns the sorted paths tagged NodeDataset.
func (m PathMap) Datasets() []string {
	return m.ofType(NodeDataset)
}

func (m PathMap) ofType(t NodeType) []string {
	var out []string
	for p, typ := range m {
		if typ == t {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// Has reports whether path was discovered with type t.
func (m PathMap) Has(path string, t NodeType) bool {
	typ, ok := m[CleanPath(path)]
	return ok && typ == t
}

// WalkFunc is called for each path during PathMap.Walk.
// depth is the number of components in path ("/entry" has depth 1).
// Return nil to continue walking, ErrStopWalk to stop without an error,
// or any other error to stop and return it.
type WalkFunc func(path string, typ NodeType, depth int) error

// Walk visits every path in sorted order, so that each group is visited
// before its children.
//
// Example:
//
//	m.Walk(func(path string, typ pixel.NodeType, depth int) error {
//	    fmt.Printf("%s%s (%s)\n", strings.Repeat("  ", depth-1), pixel.BaseName(path), typ)
//	    return nil
//	})
func (m PathMap) Walk(fn WalkFunc) error {
	for _, p := range m.Paths() {
		depth := strings.Count(p, "/")
		if err := fn(p, m[p], depth); err != nil {
			if IsStopWalk(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

// ErrStopWalk can be returned from a WalkFunc to stop walking without an error.
var ErrStopWalk = &walkStopError{}

type walkStopError struct{}

func (e *walkStopError) Error() string { return "walk stopped" }

// IsStopWalk returns true if the error is ErrStopWalk.
func IsStopWalk(err error) bool {
	_, ok := err.(*walkStopError)
	return ok
}
