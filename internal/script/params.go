package script

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/blackmamba/compgraph/internal/catalog"
	"github.com/blackmamba/compgraph/internal/model"
)

// pointType is the cty shape of point parameters: { x = 1, y = 2 }.
var pointType = cty.Object(map[string]cty.Type{
	"x": cty.Number,
	"y": cty.Number,
})

// decodeParams evaluates every assignment in a params block and converts it
// to the tagged value the catalog declares for that name. Script attribute
// names are snake_case and map onto the catalog's camelCase vocabulary.
func (l *Loader) decodeParams(def *catalog.Definition, block *ParamsBlock) (map[string]model.Value, error) {
	if block == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading params: %w", diags)
	}

	out := make(map[string]model.Value, len(attrs))
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		attr := attrs[key]
		name := camelize(attr.Name)
		spec := def.Param(name)
		if spec == nil {
			return nil, fmt.Errorf("%s: %w: '%s' on %s", attr.Range, model.ErrParamNotDeclared, attr.Name, def.Kind)
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating param '%s': %w", attr.Name, diags)
		}
		mv, err := paramValue(spec, v)
		if err != nil {
			return nil, fmt.Errorf("%s: param '%s': %w", attr.Range, attr.Name, err)
		}
		out[name] = mv
	}
	return out, nil
}

// paramValue converts an evaluated script value into the declared variant.
func paramValue(spec *catalog.ParamSpec, v cty.Value) (model.Value, error) {
	switch spec.Type {
	case model.TypeNumber:
		var f float64
		if err := fromCty(v, cty.Number, &f); err != nil {
			return model.Value{}, err
		}
		return model.NumberVal(f), nil
	case model.TypeString:
		var s string
		if err := fromCty(v, cty.String, &s); err != nil {
			return model.Value{}, err
		}
		return model.StringVal(s), nil
	case model.TypeBool:
		var b bool
		if err := fromCty(v, cty.Bool, &b); err != nil {
			return model.Value{}, err
		}
		return model.BoolVal(b), nil
	case model.TypeColor:
		var s string
		if err := fromCty(v, cty.String, &s); err != nil {
			return model.Value{}, err
		}
		c, err := model.ParseColor(s)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %v", model.ErrParamType, err)
		}
		return model.ColorVal(c), nil
	case model.TypePoint:
		var p struct {
			X float64 `cty:"x"`
			Y float64 `cty:"y"`
		}
		if err := fromCty(v, pointType, &p); err != nil {
			return model.Value{}, err
		}
		return model.PointVal(p.X, p.Y), nil
	case model.TypeChoice:
		var s string
		if err := fromCty(v, cty.String, &s); err != nil {
			return model.Value{}, err
		}
		return model.ChoiceVal(s), nil
	default:
		return model.Value{}, fmt.Errorf("%w: unhandled declared type %s", model.ErrParamType, spec.Type)
	}
}

// fromCty converts a cty value to the wanted type and decodes it into the
// Go target, reporting mismatches as parameter type errors.
func fromCty(v cty.Value, want cty.Type, target any) error {
	conv, err := convert.Convert(v, want)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrParamType, err)
	}
	if err := gocty.FromCtyValue(conv, target); err != nil {
		return fmt.Errorf("%w: %v", model.ErrParamType, err)
	}
	return nil
}

// camelize maps a snake_case script attribute onto the catalog's camelCase
// parameter vocabulary, e.g. "file_path" -> "filePath".
func camelize(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
