package ontology

import (
	"fmt"
	"sort"
)

// Node is a single intent in the taxonomy. An empty ParentID marks a root.
type Node struct {
	ID            string  `yaml:"id" json:"id"`
	ParentID      string  `yaml:"parent_id,omitempty" json:"parent_id,omitempty"`
	DefaultWeight float64 `yaml:"default_weight" json:"default_weight"`
}

// Tree is an immutable intent forest. Construct one with New, Default, or
// LoadFile; it is safe for concurrent readers afterwards.
type Tree struct {
	nodes map[string]Node
	order []string // construction order, for stable Nodes() output
}

// New builds a Tree from a node list and validates the taxonomy invariants:
// unique non-empty IDs, weights in [0, 1], resolvable parent references,
// and no cycles in any parent chain.
func New(nodes []Node) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOntology, ErrEmptyOntology)
	}

	byID := make(map[string]Node, len(nodes))
	order := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOntology, ErrEmptyNodeID)
		}
		if _, exists := byID[n.ID]; exists {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidOntology, ErrDuplicateNode, n.ID)
		}
		if n.DefaultWeight < 0 || n.DefaultWeight > 1 {
			return nil, fmt.Errorf("%w: %w: node %q has weight %v", ErrInvalidOntology, ErrBadWeight, n.ID, n.DefaultWeight)
		}
		byID[n.ID] = n
		order = append(order, n.ID)
	}

	for _, n := range nodes {
		if n.ParentID == "" {
			continue
		}
		if _, ok := byID[n.ParentID]; !ok {
			return nil, fmt.Errorf("%w: %w: node %q -> %q", ErrInvalidOntology, ErrDanglingParent, n.ID, n.ParentID)
		}
	}

	// Parent references all resolve; now make sure every chain terminates.
	// A chain longer than the node count must revisit a node.
	for _, n := range nodes {
		steps := 0
		for cur := n; cur.ParentID != ""; cur = byID[cur.ParentID] {
			steps++
			if steps > len(byID) {
				return nil, fmt.Errorf("%w: %w: starting at %q", ErrInvalidOntology, ErrCycle, n.ID)
			}
		}
	}

	return &Tree{nodes: byID, order: order}, nil
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Weight returns the default weight of the given intent.
func (t *Tree) Weight(id string) (float64, bool) {
	n, ok := t.nodes[id]
	return n.DefaultWeight, ok
}

// Parent returns the parent ID of the given intent. Roots and unknown IDs
// report false.
func (t *Tree) Parent(id string) (string, bool) {
	n, ok := t.nodes[id]
	if !ok || n.ParentID == "" {
		return "", false
	}
	return n.ParentID, true
}

// Branch returns the ID of the root (top-level intent family) the given
// intent belongs to. Unknown IDs return "".
func (t *Tree) Branch(id string) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	for n.ParentID != "" {
		n = t.nodes[n.ParentID]
	}
	return n.ID
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns a copy of all nodes in construction order.
func (t *Tree) Nodes() []Node {
	out := make([]Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.nodes[id])
	}
	return out
}

// Roots returns the IDs of all root nodes in ascending order.
func (t *Tree) Roots() []string {
	var roots []string
	for _, id := range t.order {
		if t.nodes[id].ParentID == "" {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}
