package builder

import (
	"fmt"

	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/model"
)

// validateParams checks every entry against the node type's declarations.
// Nothing is applied unless the whole map passes.
func validateParams(def *catalog.Definition, params map[string]model.Value) error {
	for name, v := range params {
		spec := def.Param(name)
		if spec == nil {
			return fmt.Errorf("%w: '%s' on %s", model.ErrParamNotDeclared, name, def.Kind)
		}
		if v.Type() != spec.Type {
			return fmt.Errorf("%w: '%s' on %s wants %s, got %s",
				model.ErrParamType, name, def.Kind, spec.Type, v.Type())
		}
		if !spec.Allows(v) {
			return fmt.Errorf("%w: '%s' on %s: %q is not an allowed choice",
				model.ErrParamType, name, def.Kind, v.Text())
		}
	}
	return nil
}
