package builder

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/model"
)

// duplicateOffset is how far a duplicated node lands from its original.
const duplicateOffset = 40

// AddNode instantiates a node of the given type tag, applies the parameter
// overrides on top of the catalog defaults, and appends it to the graph.
// Unknown types and invalid parameters fail before the graph is touched.
func (b *Builder) AddNode(ctx context.Context, compID, typeTag string, params map[string]model.Value) (*model.Node, error) {
	def, err := b.catalog.Lookup(typeTag)
	if err != nil {
		return nil, err
	}
	if err := validateParams(def, params); err != nil {
		return nil, err
	}

	_, subtype, _ := strings.Cut(typeTag, ".")
	n := def.NewNode(subtype)
	maps.Copy(n.Params, params)

	var snap *model.Node
	err = b.store.Update(compID, func(c *model.Composition) error {
		c.Nodes = append(c.Nodes, n)
		snap = n.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("node added", "composition", compID, "node", snap.ID, "type", typeTag)
	return snap, nil
}

// RemoveNode deletes the node, every connection referencing it, and its
// group memberships.
func (b *Builder) RemoveNode(ctx context.Context, compID, nodeID string) error {
	err := b.store.Update(compID, func(c *model.Composition) error {
		idx := slices.IndexFunc(c.Nodes, func(n *model.Node) bool { return n.ID == nodeID })
		if idx < 0 {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}

		var kept []*model.Connection
		for _, conn := range c.Connections {
			if conn.Source.NodeID == nodeID || conn.Target.NodeID == nodeID {
				unlink(c, conn)
				continue
			}
			kept = append(kept, conn)
		}
		c.Connections = kept
		c.Nodes = slices.Delete(c.Nodes, idx, idx+1)

		for _, g := range c.Groups {
			g.NodeIDs = slices.DeleteFunc(g.NodeIDs, func(id string) bool { return id == nodeID })
		}
		return nil
	})
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("node removed", "composition", compID, "node", nodeID)
	return nil
}

// UpdateNodeParams merges the given parameters into the node after
// validating all of them; parameters not named keep their values. A single
// bad entry rejects the whole update.
func (b *Builder) UpdateNodeParams(ctx context.Context, compID, nodeID string, params map[string]model.Value) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		n := c.NodeByID(nodeID)
		if n == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}
		def := b.catalog.Definition(n.Kind)
		if def == nil {
			return fmt.Errorf("%w: %s", model.ErrInvalidNodeType, n.Kind)
		}
		if err := validateParams(def, params); err != nil {
			return err
		}
		maps.Copy(n.Params, params)
		return nil
	})
}

// DuplicateNode copies a node with a fresh identifier, a " copy" name
// suffix and an offset position. Connections are not carried over.
func (b *Builder) DuplicateNode(ctx context.Context, compID, nodeID string) (*model.Node, error) {
	var snap *model.Node
	err := b.store.Update(compID, func(c *model.Composition) error {
		n := c.NodeByID(nodeID)
		if n == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}
		dup := n.Clone()
		dup.ID = model.NewID()
		dup.Name = n.Name + " copy"
		dup.Position = model.Point{X: n.Position.X + duplicateOffset, Y: n.Position.Y + duplicateOffset}
		for _, p := range dup.Inputs {
			p.Upstream = nil
		}
		for _, p := range dup.Outputs {
			p.Downstream = nil
		}
		c.Nodes = append(c.Nodes, dup)
		snap = dup.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("node duplicated", "composition", compID, "node", nodeID, "copy", snap.ID)
	return snap, nil
}

// MoveNode places the node at the given canvas position.
func (b *Builder) MoveNode(ctx context.Context, compID, nodeID string, x, y float64) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		n := c.NodeByID(nodeID)
		if n == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}
		n.Position = model.Point{X: x, Y: y}
		return nil
	})
}

// SetNodeEnabled toggles a node's bypass state. Disabled nodes stay in the
// graph but pass their input through at render time.
func (b *Builder) SetNodeEnabled(ctx context.Context, compID, nodeID string, enabled bool) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		n := c.NodeByID(nodeID)
		if n == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}
		n.Enabled = enabled
		return nil
	})
}

// RenameNode sets the node's display name.
func (b *Builder) RenameNode(ctx context.Context, compID, nodeID, name string) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		n := c.NodeByID(nodeID)
		if n == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, nodeID)
		}
		n.Name = name
		return nil
	})
}
