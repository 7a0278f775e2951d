package builder

import (
	"context"
	"fmt"
	"slices"

	"github.com/blackmamba/compgraph/internal/ctxlog"
	"github.com/blackmamba/compgraph/internal/model"
)

// ConnectNodes wires a source node's output port to a target node's input
// port. An input port holds at most one connection, so connecting over an
// occupied port replaces the previous connection.
func (b *Builder) ConnectNodes(ctx context.Context, compID, sourceID, output, targetID, input string) (*model.Connection, error) {
	var created model.Connection
	err := b.store.Update(compID, func(c *model.Composition) error {
		src := c.NodeByID(sourceID)
		if src == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, sourceID)
		}
		dst := c.NodeByID(targetID)
		if dst == nil {
			return fmt.Errorf("%w: %s", model.ErrNodeNotFound, targetID)
		}
		out := src.Output(output)
		if out == nil {
			return fmt.Errorf("%w: output '%s' on node %s", model.ErrPortNotFound, output, sourceID)
		}
		in := dst.Input(input)
		if in == nil {
			return fmt.Errorf("%w: input '%s' on node %s", model.ErrPortNotFound, input, targetID)
		}

		if in.Upstream != nil {
			target := model.TargetRef{NodeID: targetID, Input: input}
			if old := connectionTo(c, target); old != nil {
				unlink(c, old)
				c.Connections = slices.DeleteFunc(c.Connections, func(x *model.Connection) bool {
					return x.ID == old.ID
				})
			}
		}

		conn := &model.Connection{
			ID:     model.NewID(),
			Source: model.SourceRef{NodeID: sourceID, Output: output},
			Target: model.TargetRef{NodeID: targetID, Input: input},
		}
		c.Connections = append(c.Connections, conn)
		up := conn.Source
		in.Upstream = &up
		out.Downstream = append(out.Downstream, conn.Target)
		created = *conn
		return nil
	})
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("nodes connected",
		"composition", compID,
		"connection", created.ID,
		"source", sourceID,
		"target", targetID,
	)
	return &created, nil
}

// DisconnectNodes removes a connection by id and clears both endpoints.
func (b *Builder) DisconnectNodes(ctx context.Context, compID, connectionID string) error {
	return b.store.Update(compID, func(c *model.Composition) error {
		conn := c.ConnectionByID(connectionID)
		if conn == nil {
			return fmt.Errorf("%w: %s", model.ErrConnectionNotFound, connectionID)
		}
		unlink(c, conn)
		c.Connections = slices.DeleteFunc(c.Connections, func(x *model.Connection) bool {
			return x.ID == connectionID
		})
		return nil
	})
}

// connectionTo finds the connection feeding the given input port, or nil.
func connectionTo(c *model.Composition, target model.TargetRef) *model.Connection {
	for _, conn := range c.Connections {
		if conn.Target == target {
			return conn
		}
	}
	return nil
}

// unlink clears the port references of both endpoints of a connection. The
// connection record itself is left for the caller to drop.
func unlink(c *model.Composition, conn *model.Connection) {
	if src := c.NodeByID(conn.Source.NodeID); src != nil {
		if port := src.Output(conn.Source.Output); port != nil {
			port.Downstream = slices.DeleteFunc(port.Downstream, func(t model.TargetRef) bool {
				return t == conn.Target
			})
		}
	}
	if dst := c.NodeByID(conn.Target.NodeID); dst != nil {
		if port := dst.Input(conn.Target.Input); port != nil {
			if port.Upstream != nil && *port.Upstream == conn.Source {
				port.Upstream = nil
			}
		}
	}
}
