package pixel

import (
	"strings"
)

// SplitPath splits a namespace path into its components.
// Leading and trailing slashes are handled, empty components are removed.
//
// Examples:
//   - "/" -> []string{}
//   - "/entry" -> []string{"entry"}
//   - "/entry/bank1" -> []string{"entry", "bank1"}
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CleanPath normalizes a path, ensuring it starts with "/" and has no
// trailing slash or repeated separators.
func CleanPath(path string) string {
	parts := SplitPath(path)
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

// JoinPath appends a child name to a parent path.
//
// Examples:
//   - ("/", "entry") -> "/entry"
//   - ("/entry", "bank1") -> "/entry/bank1"
func JoinPath(parent, name string) string {
	parent = CleanPath(parent)
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}

// ParentPath returns the path of the group containing path.
// The parent of "/" and of top-level entries is "/".
func ParentPath(path string) string {
	path = CleanPath(path)
	idx := strings.LastIndex(path, "/")
	if idx <= 0 {
		return "/"
	}
	return path[:idx]
}

// BaseName returns the last component of path, or "/" for the root.
func BaseName(path string) string {
	parts := SplitPath(path)
	if len(parts) == 0 {
		return "/"
	}
	return parts[len(parts)-1]
}
