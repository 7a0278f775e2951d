package model

// Connection is a directed edge from one node's output port to another
// node's input port.
type Connection struct {
	ID     string    `json:"id"`
	Source SourceRef `json:"source"`
	Target TargetRef `json:"target"`
}
