package catalog

import (
	"slices"

	"github.com/blackmamba/compgraph/internal/model"
)

// ParamSpec declares one parameter of a node type: its value type, the
// default applied at node creation, and the allowed values for choice
// parameters.
type ParamSpec struct {
	Name    string
	Type    model.ValueType
	Default model.Value
	Choices []string
}

// Allows reports whether v satisfies the spec: the variant must match, and
// choice values must be members of the declared set.
func (p *ParamSpec) Allows(v model.Value) bool {
	if v.Type() != p.Type {
		return false
	}
	if p.Type == model.TypeChoice {
		return slices.Contains(p.Choices, v.Text())
	}
	return true
}

// Definition describes one node type: its ports and parameters.
type Definition struct {
	Kind    model.Kind
	Inputs  []string
	Outputs []string
	Params  []ParamSpec
}

// Category returns the category segment of the definition's kind.
func (d *Definition) Category() model.Category { return d.Kind.Category() }

// Param returns the spec for the named parameter, or nil when the type does
// not declare it.
func (d *Definition) Param(name string) *ParamSpec {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}

// DefaultParams returns a fresh parameter map seeded with every declared
// default.
func (d *Definition) DefaultParams() map[string]model.Value {
	out := make(map[string]model.Value, len(d.Params))
	for _, p := range d.Params {
		out[p.Name] = p.Default
	}
	return out
}

// NewNode instantiates a node of this type with default parameters, all
// declared ports unconnected, and a fresh identifier.
func (d *Definition) NewNode(name string) *model.Node {
	n := &model.Node{
		ID:       model.NewID(),
		Kind:     d.Kind,
		Name:     name,
		Category: d.Category(),
		Params:   d.DefaultParams(),
		Enabled:  true,
	}
	for _, in := range d.Inputs {
		n.Inputs = append(n.Inputs, &model.InputPort{Name: in})
	}
	for _, out := range d.Outputs {
		n.Outputs = append(n.Outputs, &model.OutputPort{Name: out})
	}
	return n
}
