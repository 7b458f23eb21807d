// Package dotted provides helpers for dot-delimited key paths
// ("a.b.c"), the addressing scheme used throughout the catalog.
package dotted

import "strings"

// Split returns the path's segments.
func Split(path string) []string {
	return strings.Split(path, ".")
}

// Join appends a segment to a prefix. An empty prefix yields the
// segment itself, so root segments carry no leading dot.
func Join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

// Parent returns the path with its last segment removed, or "" for a
// root segment.
func Parent(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[:i]
}

// Last returns the final segment of the path.
func Last(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path
	}
	return path[i+1:]
}
