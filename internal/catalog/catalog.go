package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNodeNotFound is returned when a lookup names an id the catalog does not hold.
var ErrNodeNotFound = errors.New("topic node not found")

// Catalog is the immutable roadmap: nodes in authoring order plus edges.
// It is safe for concurrent reads.
type Catalog struct {
	nodes      []TopicNode
	edges      []Edge
	byID       map[string]int
	byCategory map[Category][]int
	outgoing   map[string][]string
}

// New validates the nodes and edges and builds the lookup indices.
func New(nodes []TopicNode, edges []Edge) (*Catalog, error) {
	if err := validate(nodes, edges); err != nil {
		return nil, err
	}
	return build(nodes, edges), nil
}

func build(nodes []TopicNode, edges []Edge) *Catalog {
	c := &Catalog{
		nodes:      slices.Clone(nodes),
		edges:      slices.Clone(edges),
		byID:       make(map[string]int, len(nodes)),
		byCategory: make(map[Category][]int),
		outgoing:   make(map[string][]string),
	}
	for i, n := range c.nodes {
		c.byID[n.ID] = i
		c.byCategory[n.Category] = append(c.byCategory[n.Category], i)
	}
	for _, e := range c.edges {
		c.outgoing[e.From] = append(c.outgoing[e.From], e.To)
	}
	return c
}

// Len returns the number of nodes.
func (c *Catalog) Len() int {
	return len(c.nodes)
}

// Nodes returns all nodes in authoring order.
func (c *Catalog) Nodes() []TopicNode {
	return slices.Clone(c.nodes)
}

// Edges returns all edges.
func (c *Catalog) Edges() []Edge {
	return slices.Clone(c.edges)
}

// Node returns the node with the given id.
func (c *Catalog) Node(id string) (TopicNode, error) {
	i, ok := c.byID[id]
	if !ok {
		return TopicNode{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return c.nodes[i], nil
}

// Has reports whether id names a node in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByCategory returns the nodes in a category, in authoring order.
func (c *Catalog) ByCategory(cat Category) []TopicNode {
	idx := c.byCategory[cat]
	out := make([]TopicNode, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.nodes[i])
	}
	return out
}

// Next returns the ids the roadmap points to from id.
func (c *Catalog) Next(id string) []string {
	return slices.Clone(c.outgoing[id])
}

// Each calls fn for every node in authoring order without copying the slice.
func (c *Catalog) Each(fn func(TopicNode)) {
	for i := range c.nodes {
		fn(c.nodes[i])
	}
}
