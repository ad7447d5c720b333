package hoststore

import (
	"strings"
	"unicode/utf8"
)

// pathSeparator joins segments when a path is rendered for messages.
const pathSeparator = " => "

// Path is an immutable ordered sequence of segment names. The zero value is
// the root path.
type Path struct {
	segs []string
}

// NewPath returns a path over a copy of segs.
func NewPath(segs ...string) Path {
	if len(segs) == 0 {
		return Path{}
	}
	return Path{segs: append([]string(nil), segs...)}
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segs) }

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool { return len(p.segs) == 0 }

// Segments returns a copy of the segments.
func (p Path) Segments() []string {
	return append([]string(nil), p.segs...)
}

// Segment returns the segment at index i.
func (p Path) Segment(i int) string { return p.segs[i] }

// Split returns the path without its final segment, and that segment.
// ok is false for the root path.
func (p Path) Split() (prefix Path, last string, ok bool) {
	if len(p.segs) == 0 {
		return Path{}, "", false
	}
	n := len(p.segs) - 1
	return NewPath(p.segs[:n]...), p.segs[n], true
}

// Append returns a new path with seg added at the end.
func (p Path) Append(seg string) Path {
	segs := make([]string, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return Path{segs: append(segs, seg)}
}

// Prefix returns the first n segments of p.
func (p Path) Prefix(n int) Path {
	return NewPath(p.segs[:n]...)
}

// String renders the path as "a => b => c".
func (p Path) String() string {
	return strings.Join(p.segs, pathSeparator)
}

func (p Path) validate() error {
	for i, s := range p.segs {
		if s == "" {
			return newError(InvalidPath, "empty segment at position %d in path %q", i+1, p.String())
		}
		if !utf8.ValidString(s) {
			return newError(InvalidPath, "segment at position %d in path %q is not valid UTF-8", i+1, p.String())
		}
	}
	return nil
}
