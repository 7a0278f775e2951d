package model

// SourceRef addresses a node's output port.
type SourceRef struct {
	NodeID string `json:"nodeId"`
	Output string `json:"output"`
}

// TargetRef addresses a node's input port.
type TargetRef struct {
	NodeID string `json:"nodeId"`
	Input  string `json:"input"`
}

// InputPort is a named input on a node. At most one upstream connection can
// feed a port at a time; connecting over an occupied port replaces the old
// connection.
type InputPort struct {
	Name     string     `json:"name"`
	Upstream *SourceRef `json:"connection,omitempty"`
}

// OutputPort is a named output on a node. An output fans out to any number
// of downstream inputs.
type OutputPort struct {
	Name       string      `json:"name"`
	Downstream []TargetRef `json:"connections,omitempty"`
}

// Node is a single processing step in a composition graph.
type Node struct {
	ID       string           `json:"id"`
	Kind     Kind             `json:"type"`
	Name     string           `json:"name"`
	Category Category         `json:"category"`
	Inputs   []*InputPort     `json:"inputs"`
	Outputs  []*OutputPort    `json:"outputs"`
	Params   map[string]Value `json:"params"`
	Enabled  bool             `json:"enabled"`
	Position Point            `json:"position"`
}

// Input returns the named input port, or nil when the node has no such port.
func (n *Node) Input(name string) *InputPort {
	for _, p := range n.Inputs {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Output returns the named output port, or nil when the node has no such port.
func (n *Node) Output(name string) *OutputPort {
	for _, p := range n.Outputs {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ConnectedInputs returns the input ports that carry an upstream reference,
// in declaration order.
func (n *Node) ConnectedInputs() []*InputPort {
	var out []*InputPort
	for _, p := range n.Inputs {
		if p.Upstream != nil {
			out = append(out, p)
		}
	}
	return out
}
