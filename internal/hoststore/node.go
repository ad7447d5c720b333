package hoststore

import "sort"

// Kind discriminates the two cases a Node can take.
type Kind int

const (
	KindGroup Kind = iota
	KindHost
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// Node is a value bound to a segment key: either a *Group or a *HostDef.
// The interface is sealed; no other implementations exist.
type Node interface {
	Kind() Kind
	cloneNode() Node
}

// HostDef is a leaf record describing how to reach one host.
type HostDef struct {
	Name  string `yaml:"name" json:"name"`
	Login string `yaml:"login" json:"login"`
}

// Kind reports KindHost.
func (h *HostDef) Kind() Kind { return KindHost }

func (h *HostDef) cloneNode() Node {
	c := *h
	return &c
}

// Group is an interior node. Children order is not significant.
type Group struct {
	Children map[string]Node
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{Children: make(map[string]Node)}
}

// Kind reports KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) cloneNode() Node { return g.Clone() }

// Clone returns a deep copy of g.
func (g *Group) Clone() *Group {
	c := &Group{Children: make(map[string]Node, len(g.Children))}
	for k, v := range g.Children {
		c.Children[k] = v.cloneNode()
	}
	return c
}

// Get returns the child bound to key.
func (g *Group) Get(key string) (Node, bool) {
	n, ok := g.Children[key]
	return n, ok
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.Children) }

// Keys returns the child keys in sorted order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.Children))
	for k := range g.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (g *Group) set(key string, n Node) {
	if g.Children == nil {
		g.Children = make(map[string]Node)
	}
	g.Children[key] = n
}
