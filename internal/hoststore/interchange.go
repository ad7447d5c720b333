package hoststore

import (
	"bytes"
	"fmt"
	"os"

	"github.com/runssh/runssh/internal/logging"
	"github.com/runssh/runssh/internal/platform"
	"github.com/runssh/runssh/internal/schema"
	"go.yaml.in/yaml/v3"
)

// ExportTo writes the whole tree to dest as YAML. The store and its file are
// not modified.
func (s *Store) ExportTo(dest string) error {
	data, err := MarshalYAML(s.root)
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := os.WriteFile(dest, data, platform.FilePermSecure); err != nil {
		return fmt.Errorf("writing export %s: %w", dest, err)
	}
	logging.Debug(subsystem, "exported store to %s", dest)
	return nil
}

// ImportFrom replaces the whole tree with the YAML document at src and
// persists the result. Nothing is merged. An invalid document leaves the
// store untouched.
func (s *Store) ImportFrom(src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading import %s: %w", src, err)
	}
	root, err := UnmarshalYAML(data)
	if err != nil {
		return err
	}

	s.root = root
	logging.Info(subsystem, "replaced store contents with %s", src)
	return s.save()
}

// MarshalYAML renders a tree as an interchange document. Groups become
// mappings and host definitions become {name, login} mappings.
func MarshalYAML(root *Group) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(groupNode(root)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML parses and validates an interchange document. An empty
// document yields an empty tree. Schema violations are reported as an
// InvalidRecord ConfigError.
func UnmarshalYAML(data []byte) (*Group, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewGroup(), nil
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing interchange YAML: %w", err)
	}
	if raw == nil {
		return NewGroup(), nil
	}
	doc := schema.Normalize(raw)

	result, err := schema.ValidateDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("validating interchange document: %w", err)
	}
	if !result.Valid {
		return nil, newError(InvalidRecord, "invalid host tree: %s", result.Summary())
	}

	m, ok := doc.(map[string]interface{})
	if !ok {
		return nil, newError(InvalidRecord, "invalid host tree: top level must be a mapping")
	}
	return groupFromDocument(m), nil
}

func groupNode(g *Group) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range g.Keys() {
		child, _ := g.Get(k)
		switch v := child.(type) {
		case *HostDef:
			n.Content = append(n.Content, keyNode(k), hostNode(v))
		case *Group:
			n.Content = append(n.Content, keyNode(k), groupNode(v))
		}
	}
	return n
}

func hostNode(h *HostDef) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{
		keyNode("name"), strNode(h.Name),
		keyNode("login"), strNode(h.Login),
	}}
}

// keyNode quotes the merge key "<<" so it reads back as a plain segment
// name instead of merging its value into the parent mapping.
func keyNode(k string) *yaml.Node {
	n := strNode(k)
	if k == "<<" {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// groupFromDocument converts a validated document. Validation guarantees
// every value is a mapping.
func groupFromDocument(m map[string]interface{}) *Group {
	g := NewGroup()
	for k, v := range m {
		child, _ := v.(map[string]interface{})
		if h, ok := hostFromDocument(child); ok {
			g.Children[k] = h
			continue
		}
		g.Children[k] = groupFromDocument(child)
	}
	return g
}

// hostFromDocument recognizes a mapping with exactly the string keys name
// and login.
func hostFromDocument(m map[string]interface{}) (*HostDef, bool) {
	if len(m) != 2 {
		return nil, false
	}
	name, ok := m["name"].(string)
	if !ok {
		return nil, false
	}
	login, ok := m["login"].(string)
	if !ok {
		return nil, false
	}
	return &HostDef{Name: name, Login: login}, true
}
