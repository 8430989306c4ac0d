package pixel

import (
	"fmt"
	"sort"
)

// Entry is one immediate child reported by a Namespace listing.
// An Entry with an empty Name marks the end of the listing and is not a
// real child.
type Entry struct {
	Name string
	Type NodeType
}

// Namespace is a hierarchical tree of named groups and datasets with a
// single open-path cursor.
//
// Open moves the cursor to an absolute group path; Children lists the
// immediate children of the group under the cursor. Implementations need
// not be safe for concurrent use.
type Namespace interface {
	Open(path string) error
	Children() ([]Entry, error)
}

// DatasetReader reads numeric datasets addressed by absolute path.
type DatasetReader interface {
	// ReadFloat64s returns the dataset's values flattened in row-major order.
	ReadFloat64s(path string) ([]float64, error)
	// Units returns the dataset's "units" attribute, or "" if it has none.
	Units(path string) (string, error)
}

// MapNamespace is an in-memory Namespace and DatasetReader.
type MapNamespace struct {
	nodes    map[string]*memNode
	cursor   string
	failures map[string]error
}

type memNode struct {
	typ    NodeType
	values []float64
	units  string
}

// NewMapNamespace returns an empty namespace containing only the root group.
func NewMapNamespace() *MapNamespace {
	return &MapNamespace{
		nodes:    map[string]*memNode{"/": {typ: NodeGroup}},
		cursor:   "/",
		failures: make(map[string]error),
	}
}

// AddGroup adds a group at path, creating missing parent groups.
func (n *MapNamespace) AddGroup(path string) *MapNamespace {
	path = CleanPath(path)
	n.ensureParents(path)
	if _, ok := n.nodes[path]; !ok {
		n.nodes[path] = &memNode{typ: NodeGroup}
	}
	return n
}

// AddDataset adds a dataset at path, creating missing parent groups.
func (n *MapNamespace) AddDataset(path string, values []float64, units string) *MapNamespace {
	path = CleanPath(path)
	n.ensureParents(path)
	n.nodes[path] = &memNode{typ: NodeDataset, values: values, units: units}
	return n
}

// FailOpen makes every later Open of path fail with err.
func (n *MapNamespace) FailOpen(path string, err error) *MapNamespace {
	n.failures[CleanPath(path)] = err
	return n
}

func (n *MapNamespace) ensureParents(path string) {
	for p := ParentPath(path); p != "/"; p = ParentPath(p) {
		if _, ok := n.nodes[p]; !ok {
			n.nodes[p] = &memNode{typ: NodeGroup}
		}
	}
}

// Open moves the cursor to the group at path.
func (n *MapNamespace) Open(path string) error {
	path = CleanPath(path)
	if err, ok := n.failures[path]; ok {
		return err
	}
	node, ok := n.nodes[path]
	if !ok {
		return fmt.Errorf("%q: %w", path, ErrNotFound)
	}
	if node.typ != NodeGroup {
		return fmt.Errorf("%q: %w", path, ErrNotGroup)
	}
	n.cursor = path
	return nil
}

// Children lists the children of the open group in name order, followed by
// the end-of-listing marker.
func (n *MapNamespace) Children() ([]Entry, error) {
	var entries []Entry
	for p, node := range n.nodes {
		if p != "/" && ParentPath(p) == n.cursor {
			entries = append(entries, Entry{Name: BaseName(p), Type: node.typ})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return append(entries, Entry{}), nil
}

// ReadFloat64s returns the values stored at path.
func (n *MapNamespace) ReadFloat64s(path string) ([]float64, error) {
	node, err := n.dataset(path)
	if err != nil {
		return nil, err
	}
	return node.values, nil
}

// Units returns the units stored with the dataset at path.
func (n *MapNamespace) Units(path string) (string, error) {
	node, err := n.dataset(path)
	if err != nil {
		return "", err
	}
	return node.units, nil
}

func (n *MapNamespace) dataset(path string) (*memNode, error) {
	path = CleanPath(path)
	node, ok := n.nodes[path]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	}
	if node.typ != NodeDataset {
		return nil, fmt.Errorf("%q: %w", path, ErrNotDataset)
	}
	return node, nil
}
