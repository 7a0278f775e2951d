package filtergen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackmamba/compgraph/internal/model"
)

// FragmentFunc renders one node into a filter graph fragment. The fragment
// must read from the context's input labels and write its result into
// fc.Out(). Returning false marks the node as pass-through for this render;
// no fragment is emitted and downstream nodes read the node's input label
// instead.
type FragmentFunc func(fc *FragContext) (string, bool)

// FragContext carries everything a fragment function may consult: the
// node's parameters, the resolved labels of its input ports, the render
// settings, and a label allocator for intermediate links.
type FragContext struct {
	node     *model.Node
	inputs   []string
	settings model.Settings
	state    *genState

	out string
}

// In returns the resolved label of the i-th input port. Unconnected ports
// resolve to the first engine input.
func (fc *FragContext) In(i int) string {
	if i < 0 || i >= len(fc.inputs) {
		return baseLabel
	}
	return fc.inputs[i]
}

// Out returns the link label this fragment writes to, allocating it on
// first use.
func (fc *FragContext) Out() string {
	if fc.out == "" {
		fc.out = fc.state.nextLabel()
	}
	return fc.out
}

// NewLabel allocates an extra link label for fragments that chain several
// filters internally.
func (fc *FragContext) NewLabel() string {
	return fc.state.nextLabel()
}

// Settings returns the composition's render settings.
func (fc *FragContext) Settings() model.Settings {
	return fc.settings
}

// Number returns the named number parameter.
func (fc *FragContext) Number(name string) float64 {
	return fc.node.Params[name].Number()
}

// Text returns the named string or choice parameter.
func (fc *FragContext) Text(name string) string {
	return fc.node.Params[name].Text()
}

// Flag returns the named boolean parameter.
func (fc *FragContext) Flag(name string) bool {
	return fc.node.Params[name].Bool()
}

// Color returns the named color parameter in engine syntax, e.g. "0x00FF00".
func (fc *FragContext) Color(name string) string {
	return fc.node.Params[name].Color().Engine()
}

// Point returns the named point parameter.
func (fc *FragContext) Point(name string) model.Point {
	return fc.node.Params[name].Point()
}

// ftoa renders a float the way filter expressions expect: no exponent, no
// trailing zeros.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// quotePath wraps a file path for use inside a filter option value.
func quotePath(p string) string {
	return "'" + strings.ReplaceAll(p, "'", "\\'") + "'"
}

// itoa is a shorthand for integral filter options.
func itoa(i int) string {
	return strconv.Itoa(i)
}

// frameSize renders settings dimensions as a WxH filter option value.
func frameSize(s model.Settings) string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
