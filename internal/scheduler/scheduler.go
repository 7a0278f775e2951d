// Package scheduler orders composition nodes for rendering. The order is a
// deterministic depth-first traversal rooted at the output nodes: every
// node's upstream sources appear before the node itself, shared sources
// appear exactly once, and branches unreachable from any output stay out of
// the schedule.
package scheduler

import (
	"fmt"

	"github.com/blackmamba/compgraph/internal/model"
)

// CycleError reports a dependency cycle reachable from the traversal roots.
// NodeID names one node on the cycle.
type CycleError struct {
	NodeID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected involving node '%s'", e.NodeID)
}

// Traversal state per node. A node seen in state visiting is a back edge,
// which means a cycle.
const (
	unvisited = iota
	visiting
	visited
)

// Order returns the nodes in dependency order. Traversal starts from the
// output-category nodes in insertion order; when the composition has no
// output nodes, every node serves as a root so the schedule covers the
// whole graph.
func Order(comp *model.Composition) ([]*model.Node, error) {
	roots := comp.NodesByCategory(model.CategoryOutput)
	if len(roots) == 0 {
		roots = comp.Nodes
	}

	state := make(map[string]int, len(comp.Nodes))
	order := make([]*model.Node, 0, len(comp.Nodes))

	var visit func(n *model.Node) error
	visit = func(n *model.Node) error {
		switch state[n.ID] {
		case visited:
			return nil
		case visiting:
			return &CycleError{NodeID: n.ID}
		}
		state[n.ID] = visiting
		for _, p := range n.Inputs {
			if p.Upstream == nil {
				continue
			}
			src := comp.NodeByID(p.Upstream.NodeID)
			if src == nil {
				continue
			}
			if err := visit(src); err != nil {
				return err
			}
		}
		state[n.ID] = visited
		order = append(order, n)
		return nil
	}

	for _, r := range roots {
		if err := visit(r); err != nil {
			return nil, err
		}
	}
	return order, nil
}
