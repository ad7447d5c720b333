package hoststore

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/runssh/runssh/internal/logging"
)

const subsystem = "Store"

// Store owns the host tree and the file it is persisted to.
type Store struct {
	file string
	root *Group
}

// Open loads the store at file. A missing file is not an error: an empty
// tree is created and saved immediately, creating the file.
func Open(file string) (*Store, error) {
	if file == "" {
		return nil, fmt.Errorf("store file path is empty")
	}

	s := &Store{file: file}

	root, err := loadTree(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.Debug(subsystem, "store %s not found, creating an empty one", file)
		s.root = NewGroup()
		if err := s.save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		s.root = root
	}
	return s, nil
}

// File returns the path of the primary store file.
func (s *Store) File() string { return s.file }

// BackupFile returns the path of the backup written before each save.
func (s *Store) BackupFile() string { return s.file + backupSuffix }

// Root returns a deep copy of the tree.
func (s *Store) Root() *Group { return s.root.Clone() }

// AddHostDef binds name to rec inside the group at path, creating any
// missing groups along the way. It refuses to route through an existing
// host definition or to overwrite an existing key.
func (s *Store) AddHostDef(path Path, name string, rec *HostDef) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	if err := path.validate(); err != nil {
		return err
	}
	if name == "" {
		return newError(InvalidPath, "host definition name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return newError(InvalidPath, "host definition name %q is not valid UTF-8", name)
	}

	// Walk the existing part of the path first so that a conflict is
	// reported before any group is created.
	g := s.root
	depth := 0
	for _, seg := range path.segs {
		child, ok := g.Get(seg)
		if !ok {
			break
		}
		switch c := child.(type) {
		case *HostDef:
			return newError(PathConflict, "cannot override host definition %q with path", path.Prefix(depth+1).String())
		case *Group:
			g = c
		}
		depth++
	}
	if depth == path.Len() {
		if _, exists := g.Get(name); exists {
			return newError(DuplicateEntry, "path %q already exists", path.Append(name).String())
		}
	}

	for _, seg := range path.segs[depth:] {
		ng := NewGroup()
		g.set(seg, ng)
		g = ng
	}
	g.set(name, rec.cloneNode())

	logging.Debug(subsystem, "added host definition %s", path.Append(name))
	return s.save()
}

// UpdateHostDef replaces the host definition at path. The last segment is the
// entry name; every group before it must already exist.
func (s *Store) UpdateHostDef(path Path, rec *HostDef) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	prefix, entry, ok := path.Split()
	if !ok {
		return newError(InvalidPath, "invalid path: cannot update the root group")
	}

	g, err := s.resolveGroup(prefix)
	if err != nil {
		return err
	}

	child, ok := g.Get(entry)
	if !ok {
		return newError(NotFound, "host definition (%s) doesn't exist", path)
	}
	if child.Kind() == KindGroup {
		return newError(TypeConflict, "cannot overwrite group %q with host definition", path.String())
	}
	g.set(entry, rec.cloneNode())

	logging.Debug(subsystem, "updated host definition %s", path)
	return s.save()
}

// GetHostDef returns the host definition at path.
func (s *Store) GetHostDef(path Path) (HostDef, error) {
	n, _ := s.lookup(path)
	if n == nil {
		return HostDef{}, newError(NotFound, "host definition (%s) doesn't exist", path)
	}
	switch v := n.(type) {
	case *Group:
		return HostDef{}, newError(NotAHost, "%q is a group, not a host definition", path.String())
	case *HostDef:
		return *v, nil
	}
	return HostDef{}, newError(NotFound, "host definition (%s) doesn't exist", path)
}

// ListChildren returns the sorted child keys of the group at path. A path
// naming a host definition, or a final segment that does not exist, yields
// an empty list; only a missing intermediate segment is an error.
func (s *Store) ListChildren(path Path) ([]string, error) {
	n, brokenAt := s.lookup(path)
	if n == nil {
		if brokenAt < path.Len()-1 {
			return nil, newError(InvalidPath, "invalid path: %s", path)
		}
		return []string{}, nil
	}
	switch v := n.(type) {
	case *Group:
		return v.Keys(), nil
	case *HostDef:
		return []string{}, nil
	}
	return []string{}, nil
}

// DeletePath removes the host definition or empty group at path. Deleting a
// group that still has children is refused.
func (s *Store) DeletePath(path Path) error {
	prefix, key, ok := path.Split()
	if !ok {
		return newError(InvalidPath, "invalid path: cannot delete the root group")
	}

	g, err := s.resolveGroup(prefix)
	if err != nil {
		return err
	}

	child, ok := g.Get(key)
	if !ok {
		return newError(InvalidPath, "invalid path: %s", path)
	}
	switch c := child.(type) {
	case *HostDef:
	case *Group:
		if c.Len() > 0 {
			return newError(NonEmptyGroup, "supplied path %q is a non-empty group", path.String())
		}
	}
	delete(g.Children, key)

	logging.Debug(subsystem, "deleted %s", path)
	return s.save()
}

// Walk calls fn for every host definition at or below path, depth first in
// key order. A path naming a host definition visits just that entry.
func (s *Store) Walk(path Path, fn func(Path, HostDef) error) error {
	n, _ := s.lookup(path)
	if n == nil {
		return newError(NotFound, "path (%s) doesn't exist", path)
	}
	return walkNode(path, n, fn)
}

func walkNode(path Path, n Node, fn func(Path, HostDef) error) error {
	switch v := n.(type) {
	case *HostDef:
		return fn(path, *v)
	case *Group:
		for _, k := range v.Keys() {
			if err := walkNode(path.Append(k), v.Children[k], fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookup follows path from the root. It returns the node found, or nil and
// the index of the first segment that could not be followed. Host
// definitions have no children, so any segment after one is unresolvable.
func (s *Store) lookup(path Path) (Node, int) {
	var n Node = s.root
	for i, seg := range path.segs {
		g, ok := n.(*Group)
		if !ok {
			return nil, i
		}
		child, ok := g.Get(seg)
		if !ok {
			return nil, i
		}
		n = child
	}
	return n, path.Len()
}

// resolveGroup strictly resolves path to an existing group.
func (s *Store) resolveGroup(path Path) (*Group, error) {
	n, _ := s.lookup(path)
	g, ok := n.(*Group)
	if !ok {
		return nil, newError(InvalidPath, "invalid path: %s", path)
	}
	return g, nil
}

func validateRecord(rec *HostDef) error {
	if rec == nil {
		return newError(InvalidRecord, "invalid host definition: record is missing")
	}
	if rec.Name == "" {
		return newError(InvalidRecord, "invalid host definition: host name is empty")
	}
	if !utf8.ValidString(rec.Name) || !utf8.ValidString(rec.Login) {
		return newError(InvalidRecord, "invalid host definition: host name and login must be valid UTF-8")
	}
	return nil
}
