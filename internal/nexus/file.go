package nexus

import (
	"errors"
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/hdf5"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

// ErrClosed is returned by every method once Close has been called.
var ErrClosed = errors.New("file is closed")

var (
	_ pixel.Namespace     = (*File)(nil)
	_ pixel.DatasetReader = (*File)(nil)
)

// File is an open HDF5 file with a single open-group cursor.
type File struct {
	path    string
	root    api.Group
	cur     api.Group
	curPath string
	closed  bool
}

// Open opens the HDF5 file at path with the cursor on the root group.
func Open(path string) (*File, error) {
	root, err := hdf5.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return New(root, path), nil
}

// New wraps an already opened group tree. The File takes ownership of root.
func New(root api.Group, path string) *File {
	return &File{path: path, root: root, cur: root, curPath: "/"}
}

// Path returns the file name the File was opened from.
func (f *File) Path() string { return f.path }

// Close releases the file and any open group.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.releaseCursor()
	f.root.Close()
	f.closed = true
	return nil
}

func (f *File) releaseCursor() {
	if f.cur != nil && f.cur != f.root {
		f.cur.Close()
	}
	f.cur = f.root
	f.curPath = "/"
}

// Open moves the cursor to the group at the absolute path.
func (f *File) Open(path string) error {
	if f.closed {
		return ErrClosed
	}
	path = pixel.CleanPath(path)
	if path == f.curPath {
		return nil
	}
	if path == "/" {
		f.releaseCursor()
		return nil
	}

	g, err := f.root.GetGroup(path)
	if err != nil {
		return fmt.Errorf("%q: %w: %w", path, pixel.ErrNotFound, err)
	}
	f.releaseCursor()
	f.cur = g
	f.curPath = path
	return nil
}

// Children lists the subgroups and then the variables of the open group,
// terminated by the empty end-of-listing entry.
func (f *File) Children() ([]pixel.Entry, error) {
	if f.closed {
		return nil, ErrClosed
	}
	groups := f.cur.ListSubgroups()
	vars := f.cur.ListVariables()
	entries := make([]pixel.Entry, 0, len(groups)+len(vars)+1)
	for _, name := range groups {
		entries = append(entries, pixel.Entry{Name: name, Type: pixel.NodeGroup})
	}
	for _, name := range vars {
		entries = append(entries, pixel.Entry{Name: name, Type: pixel.NodeDataset})
	}
	return append(entries, pixel.Entry{}), nil
}

// ReadFloat64s reads the dataset at the absolute path and flattens it.
// The cursor is left unchanged.
func (f *File) ReadFloat64s(path string) ([]float64, error) {
	v, err := f.variable(path)
	if err != nil {
		return nil, err
	}
	vals, err := Flatten(v.Values)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return vals, nil
}

// Units returns the "units" attribute of the dataset at path, or "".
func (f *File) Units(path string) (string, error) {
	v, err := f.variable(path)
	if err != nil {
		return "", err
	}
	if v.Attributes == nil {
		return "", nil
	}
	raw, ok := v.Attributes.Get("units")
	if !ok {
		return "", nil
	}
	switch u := raw.(type) {
	case string:
		return u, nil
	case []byte:
		return string(u), nil
	default:
		return fmt.Sprint(u), nil
	}
}

func (f *File) variable(path string) (*api.Variable, error) {
	if f.closed {
		return nil, ErrClosed
	}
	path = pixel.CleanPath(path)
	if path == "/" {
		return nil, fmt.Errorf("%q: %w", path, pixel.ErrNotDataset)
	}

	parent := pixel.ParentPath(path)
	g := f.root
	if parent != "/" {
		pg, err := f.root.GetGroup(parent)
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", parent, pixel.ErrNotFound, err)
		}
		defer pg.Close()
		g = pg
	}

	v, err := g.GetVariable(pixel.BaseName(path))
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", path, pixel.ErrNotDataset, err)
	}
	return v, nil
}
