package builder

import (
	"context"
	"fmt"
	"slices"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/model"
)

// GroupNodes creates a named group over the given nodes. Ids that do not
// resolve to a node are skipped. The group's position is the centroid of
// its members' positions.
func (b *Builder) GroupNodes(ctx context.Context, compID, name string, nodeIDs []string) (*model.Group, error) {
	var created model.Group
	err := b.store.Update(compID, func(c *model.Composition) error {
		var members []string
		var cx, cy float64
		for _, id := range nodeIDs {
			n := c.NodeByID(id)
			if n == nil || slices.Contains(members, id) {
				continue
			}
			members = append(members, id)
			cx += n.Position.X
			cy += n.Position.Y
		}
		if len(members) == 0 {
			return fmt.Errorf("%w: no group members resolve to a node", model.ErrNodeNotFound)
		}
		g := &model.Group{
			ID:       model.NewID(),
			Name:     name,
			NodeIDs:  members,
			Position: model.Point{X: cx / float64(len(members)), Y: cy / float64(len(members))},
		}
		c.Groups = append(c.Groups, g)
		created = *g
		created.NodeIDs = slices.Clone(g.NodeIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("nodes grouped",
		"composition", compID,
		"group", created.ID,
		"members", len(created.NodeIDs),
	)
	return &created, nil
}

// UngroupNodes dissolves a group. Member nodes are untouched.
func (b *Builder) UngroupNodes(ctx context.Context, compID, groupID string) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		idx := slices.IndexFunc(c.Groups, func(g *model.Group) bool { return g.ID == groupID })
		if idx < 0 {
			return fmt.Errorf("%w: %s", model.ErrGroupNotFound, groupID)
		}
		c.Groups = slices.Delete(c.Groups, idx, idx+1)
		return nil
	})
}
