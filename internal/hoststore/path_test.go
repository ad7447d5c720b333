package hoststore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathSplit(t *testing.T) {
	p := NewPath("client", "dc1", "web")

	prefix, last, ok := p.Split()
	if !ok {
		t.Fatal("Split on non-root path returned ok=false")
	}
	if last != "web" {
		t.Errorf("last = %q, want %q", last, "web")
	}
	if diff := cmp.Diff([]string{"client", "dc1"}, prefix.Segments()); diff != "" {
		t.Errorf("prefix mismatch (-want +got):\n%s", diff)
	}
	if p.Len() != 3 {
		t.Errorf("receiver was modified: %s", p)
	}

	if _, _, ok := (Path{}).Split(); ok {
		t.Error("Split on root path returned ok=true")
	}
}

func TestPathIsImmutable(t *testing.T) {
	segs := []string{"a", "b"}
	p := NewPath(segs...)
	segs[0] = "changed"
	if p.Segment(0) != "a" {
		t.Errorf("NewPath aliased its argument: %s", p)
	}

	out := p.Segments()
	out[1] = "changed"
	if p.Segment(1) != "b" {
		t.Errorf("Segments aliased internal storage: %s", p)
	}

	// Appending to two paths sharing a prefix must not clobber each other.
	base := NewPath("x", "y")
	left := base.Append("l")
	right := base.Append("r")
	if left.String() != "x => y => l" || right.String() != "x => y => r" {
		t.Errorf("Append aliasing: left=%s right=%s", left, right)
	}
	if base.Len() != 2 {
		t.Errorf("Append modified receiver: %s", base)
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Path{}, ""},
		{NewPath("client"), "client"},
		{NewPath("client", "dc1", "web"), "client => dc1 => web"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPathPrefix(t *testing.T) {
	p := NewPath("a", "b", "c")
	if got := p.Prefix(2).String(); got != "a => b" {
		t.Errorf("Prefix(2) = %q, want %q", got, "a => b")
	}
	if !p.Prefix(0).IsRoot() {
		t.Error("Prefix(0) should be the root path")
	}
}

func TestErrorKindString(t *testing.T) {
	if got := NonEmptyGroup.String(); got != "NonEmptyGroup" {
		t.Errorf("NonEmptyGroup.String() = %q", got)
	}
	if got := ErrorKind(0).String(); got != "Unknown" {
		t.Errorf("ErrorKind(0).String() = %q", got)
	}
	if got := KindHost.String(); got != "host" {
		t.Errorf("KindHost.String() = %q", got)
	}
}
