package model

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the composition sharing no mutable state with
// the original. Snapshots handed out by the store rely on this so callers
// can never reach back into live graph data.
func (c *Composition) Clone() *Composition {
	out := *c
	if c.Nodes != nil {
		out.Nodes = make([]*Node, len(c.Nodes))
		for i, n := range c.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	if c.Connections != nil {
		out.Connections = make([]*Connection, len(c.Connections))
		for i, conn := range c.Connections {
			cc := *conn
			out.Connections[i] = &cc
		}
	}
	if c.Groups != nil {
		out.Groups = make([]*Group, len(c.Groups))
		for i, g := range c.Groups {
			gc := *g
			gc.NodeIDs = slices.Clone(g.NodeIDs)
			out.Groups[i] = &gc
		}
	}
	return &out
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	out := *n
	if n.Inputs != nil {
		out.Inputs = make([]*InputPort, len(n.Inputs))
		for i, p := range n.Inputs {
			pc := *p
			if p.Upstream != nil {
				up := *p.Upstream
				pc.Upstream = &up
			}
			out.Inputs[i] = &pc
		}
	}
	if n.Outputs != nil {
		out.Outputs = make([]*OutputPort, len(n.Outputs))
		for i, p := range n.Outputs {
			pc := *p
			pc.Downstream = slices.Clone(p.Downstream)
			out.Outputs[i] = &pc
		}
	}
	out.Params = maps.Clone(n.Params)
	return &out
}
