package pixel

import (
	"log/slog"
)

// DiscoverOption configures Discover.
type DiscoverOption func(*discoverOptions)

type discoverOptions struct {
	root   string
	logger *slog.Logger
}

func defaultDiscoverOptions() *discoverOptions {
	return &discoverOptions{
		root:   "/",
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithRoot starts discovery at path instead of "/". Paths in the result
// stay absolute; the starting group itself is not included.
func WithRoot(path string) DiscoverOption {
	return func(o *discoverOptions) {
		o.root = CleanPath(path)
	}
}

// WithDiscoverLogger sets the logger used to report discovery passes.
func WithDiscoverLogger(l *slog.Logger) DiscoverOption {
	return func(o *discoverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Discover enumerates every group and dataset reachable from the root of
// ns and returns them tagged with their type.
//
// Discovery proceeds in passes. The first pass lists the root; each later
// pass opens every group found by the previous pass and lists its
// children. Datasets are never opened. Discovery stops at the first pass
// that finds no new path.
//
// The namespace must be acyclic. A navigation failure aborts discovery
// with a *NamespaceAccessError; nothing is retried. Each call builds a new
// map.
func Discover(ns Namespace, opts ...DiscoverOption) (PathMap, error) {
	o := defaultDiscoverOptions()
	for _, opt := range opts {
		opt(o)
	}

	found := make(PathMap)
	frontier := []string{o.root}

	for pass := 1; len(frontier) > 0; pass++ {
		var next []string
		for _, parent := range frontier {
			entries, err := list(ns, parent)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.Name == "" {
					continue
				}
				p := JoinPath(parent, e.Name)
				if _, seen := found[p]; seen {
					continue
				}
				found[p] = e.Type
				if !e.Type.Terminal() {
					next = append(next, p)
				}
			}
		}
		o.logger.Debug("discovery pass",
			"pass", pass,
			"expanded", len(frontier),
			"new_groups", len(next),
			"total", len(found),
		)
		frontier = next
	}

	return found, nil
}

func list(ns Namespace, path string) ([]Entry, error) {
	if err := ns.Open(path); err != nil {
		return nil, &NamespaceAccessError{Path: path, Err: err}
	}
	entries, err := ns.Children()
	if err != nil {
		return nil, &NamespaceAccessError{Path: path, Err: err}
	}
	return entries, nil
}
