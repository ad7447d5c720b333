package hoststore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/runssh/runssh/internal/logging"
	"github.com/runssh/runssh/internal/platform"
)

const backupSuffix = ".bak"

// Node kinds as written to disk.
const (
	wireGroup uint8 = 1
	wireHost  uint8 = 2
)

// wireNode is the CBOR shape of one tree node. Groups carry Children; host
// definitions carry Name and Login.
type wireNode struct {
	Kind     uint8               `cbor:"k"`
	Children map[string]wireNode `cbor:"c,omitempty"`
	Name     string              `cbor:"n,omitempty"`
	Login    string              `cbor:"l,omitempty"`
}

// Core deterministic encoding sorts map keys, so an unchanged tree always
// produces identical bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("hoststore: building CBOR encoder: %v", err))
	}
	return em
}()

func encodeTree(root *Group) ([]byte, error) {
	return encMode.Marshal(toWire(root))
}

func decodeTree(data []byte) (*Group, error) {
	var w wireNode
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	n, err := fromWire(w)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*Group)
	if !ok {
		return nil, fmt.Errorf("root node is a %s, expected a group", n.Kind())
	}
	return root, nil
}

func toWire(n Node) wireNode {
	switch v := n.(type) {
	case *HostDef:
		return wireNode{Kind: wireHost, Name: v.Name, Login: v.Login}
	case *Group:
		w := wireNode{Kind: wireGroup}
		if len(v.Children) > 0 {
			w.Children = make(map[string]wireNode, len(v.Children))
			for k, c := range v.Children {
				w.Children[k] = toWire(c)
			}
		}
		return w
	}
	panic(fmt.Sprintf("hoststore: unexpected node type %T", n))
}

func fromWire(w wireNode) (Node, error) {
	switch w.Kind {
	case wireHost:
		if len(w.Children) > 0 {
			return nil, fmt.Errorf("host definition %q has children", w.Name)
		}
		return &HostDef{Name: w.Name, Login: w.Login}, nil
	case wireGroup:
		g := NewGroup()
		for k, c := range w.Children {
			n, err := fromWire(c)
			if err != nil {
				return nil, err
			}
			g.Children[k] = n
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", w.Kind)
	}
}

// loadTree reads and decodes the store file. A missing file is reported as
// an error wrapping fs.ErrNotExist.
func loadTree(file string) (*Group, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", file, err)
	}
	root, err := decodeTree(data)
	if err != nil {
		return nil, fmt.Errorf("decoding store %s: %w", file, err)
	}
	logging.Debug(subsystem, "loaded store %s (%d bytes)", file, len(data))
	return root, nil
}

// save copies the current file to the backup location, then writes the full
// tree. A failure here leaves the in-memory tree mutated.
func (s *Store) save() error {
	data, err := encodeTree(s.root)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	if _, err := os.Stat(s.file); err == nil {
		if err := platform.CopyFile(s.file, s.BackupFile(), platform.FilePermSecure); err != nil {
			return fmt.Errorf("backing up store to %s: %w", s.BackupFile(), err)
		}
		logging.Debug(subsystem, "backed up %s to %s", s.file, s.BackupFile())
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking store %s: %w", s.file, err)
	}

	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, platform.DirPermSecure); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}
	if err := platform.WriteFileAtomic(s.file, data, platform.FilePermSecure); err != nil {
		logging.Error(subsystem, err, "store %s not saved, changes are held in memory only", s.file)
		return fmt.Errorf("writing store: %w", err)
	}

	logging.Debug(subsystem, "saved store %s (%d bytes)", s.file, len(data))
	return nil
}
