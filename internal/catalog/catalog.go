package catalog

import (
	"fmt"
	"strings"

	"github.com/blackmamba/compgraph/internal/model"
)

// Catalog holds the definition of every built-in node type.
type Catalog struct {
	defs map[model.Kind]*Definition
}

// New builds the catalog from the built-in definition table.
func New() *Catalog {
	defs := make(map[model.Kind]*Definition, len(builtins))
	for i := range builtins {
		d := &builtins[i]
		defs[d.Kind] = d
	}
	return &Catalog{defs: defs}
}

// Lookup resolves a "category.subtype" tag to its definition. Unknown tags
// report model.ErrInvalidNodeType.
func (c *Catalog) Lookup(tag string) (*Definition, error) {
	kind, err := model.ParseKind(tag)
	if err != nil {
		return nil, err
	}
	def, ok := c.defs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no definition", model.ErrInvalidNodeType, tag)
	}
	return def, nil
}

// Definition returns the definition for a kind, or nil when missing.
func (c *Catalog) Definition(kind model.Kind) *Definition {
	return c.defs[kind]
}

// Definitions returns every definition in kind declaration order.
func (c *Catalog) Definitions() []*Definition {
	out := make([]*Definition, 0, len(c.defs))
	for _, k := range model.Kinds() {
		if d, ok := c.defs[k]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Validate checks the structural invariants of the definition table: every
// kind has a definition, defaults match their declared types, choice
// parameters carry a non-empty choice set containing the default, input
// types source ports only and output types sink ports only.
func (c *Catalog) Validate() error {
	var errs []string
	for _, kind := range model.Kinds() {
		def, ok := c.defs[kind]
		if !ok {
			errs = append(errs, fmt.Sprintf("kind '%s': no definition", kind))
			continue
		}
		switch kind.Category() {
		case model.CategoryInput:
			if len(def.Inputs) != 0 || len(def.Outputs) == 0 {
				errs = append(errs, fmt.Sprintf("kind '%s': input types must have outputs only", kind))
			}
		case model.CategoryOutput:
			if len(def.Inputs) == 0 || len(def.Outputs) != 0 {
				errs = append(errs, fmt.Sprintf("kind '%s': output types must have inputs only", kind))
			}
		default:
			if len(def.Inputs) == 0 || len(def.Outputs) == 0 {
				errs = append(errs, fmt.Sprintf("kind '%s': processing types need both ports", kind))
			}
		}
		for _, p := range def.Params {
			if p.Default.Type() != p.Type {
				errs = append(errs, fmt.Sprintf("kind '%s', param '%s': default is %s, declared %s",
					kind, p.Name, p.Default.Type(), p.Type))
			}
			if p.Type == model.TypeChoice && !p.Allows(p.Default) {
				errs = append(errs, fmt.Sprintf("kind '%s', param '%s': default %q not in choice set",
					kind, p.Name, p.Default.Text()))
			}
			if p.Type != model.TypeChoice && len(p.Choices) > 0 {
				errs = append(errs, fmt.Sprintf("kind '%s', param '%s': choices on non-choice param", kind, p.Name))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
