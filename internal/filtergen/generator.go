package filtergen

import (
	"fmt"
	"strings"

	"github.com/blackmamba/compgraph/internal/engine"
	"github.com/blackmamba/compgraph/internal/model"
)

// baseLabel is the first engine input. Unconnected ports and inputs without
// media fall back to it; the orchestrator guarantees input 0 exists, feeding
// a synthetic source when the graph references no media.
const baseLabel = "[0:v]"

// fragmentSeparator joins fragments into the final expression.
const fragmentSeparator = ";"

// Program is a compiled composition, ready to hand to the engine.
type Program struct {
	// Expression is the complete filter graph. Empty when every scheduled
	// node is an input, an output or a pass-through.
	Expression string
	// Inputs lists the referenced media sources in positional order; the
	// i-th entry backs the [i:v] labels in Expression.
	Inputs []engine.Input
	// OutputLabel is the link the engine should map into the output file.
	OutputLabel string
	// NodeCount is the number of scheduled nodes the program covers.
	NodeCount int
}

// Generator translates scheduled nodes into filter graph fragments through
// a per-kind function table.
type Generator struct {
	fns map[model.Kind]FragmentFunc
}

// New returns a generator wired with the built-in fragment table.
func New() *Generator {
	fns := make(map[model.Kind]FragmentFunc, len(fragments))
	for k, fn := range fragments {
		fns[k] = fn
	}
	return &Generator{fns: fns}
}

// Validate checks that every node kind is either mapped to a fragment
// function or explicitly registered as pass-through, and never both. Run at
// startup so an unhandled kind is a wiring error, not a silent fallthrough.
func (g *Generator) Validate() error {
	var errs []string
	for _, k := range model.Kinds() {
		_, mapped := g.fns[k]
		switch {
		case mapped && passThrough[k]:
			errs = append(errs, fmt.Sprintf("kind '%s': both mapped and pass-through", k))
		case !mapped && !passThrough[k]:
			errs = append(errs, fmt.Sprintf("kind '%s': neither mapped nor pass-through", k))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("fragment registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// genState tracks label assignments over one Generate call.
type genState struct {
	comp     *model.Composition
	labels   map[string]string
	inputIdx map[string]int
	inputs   []engine.Input
	nLabels  int
}

func (st *genState) nextLabel() string {
	st.nLabels++
	return fmt.Sprintf("[n%d]", st.nLabels)
}

// labelFor resolves the link label carrying a node's result. Nodes that
// emitted a fragment or hold an engine input own a label; everything else
// forwards an input, falling back to the base input.
func (st *genState) labelFor(n *model.Node) string {
	if l, ok := st.labels[n.ID]; ok {
		return l
	}
	if p := forwardPort(n); p != nil {
		if src := st.comp.NodeByID(p.Upstream.NodeID); src != nil {
			l := st.labelFor(src)
			st.labels[n.ID] = l
			return l
		}
	}
	return baseLabel
}

// forwardPort picks the input port a node without a label forwards.
// merge.switch is a selector and follows its active port; everything else
// forwards its first connected input.
func forwardPort(n *model.Node) *model.InputPort {
	if n.Kind == model.KindMergeSwitch {
		if p := n.Input(n.Params["active"].Text()); p != nil && p.Upstream != nil {
			return p
		}
	}
	for _, p := range n.Inputs {
		if p.Upstream != nil {
			return p
		}
	}
	return nil
}

// Generate compiles the scheduled nodes into a Program. The order must come
// from the scheduler, so every node appears after its upstream sources and
// the graph is known to be acyclic.
func (g *Generator) Generate(comp *model.Composition, order []*model.Node) *Program {
	st := &genState{
		comp:     comp,
		labels:   make(map[string]string, len(order)),
		inputIdx: make(map[string]int),
	}

	// Media nodes claim positional engine inputs first, one per distinct
	// file path, in schedule encounter order.
	for _, n := range order {
		if n.Kind != model.KindInputMedia || !n.Enabled {
			continue
		}
		path := n.Params["filePath"].Text()
		if path == "" {
			continue
		}
		idx, seen := st.inputIdx[path]
		if !seen {
			idx = len(st.inputs)
			st.inputIdx[path] = idx
			st.inputs = append(st.inputs, engine.Input{URL: path})
		}
		st.labels[n.ID] = fmt.Sprintf("[%d:v]", idx)
	}

	var frags []string
	var lastOut string
	for _, n := range order {
		cat := n.Category
		if cat == model.CategoryInput || cat == model.CategoryOutput || !n.Enabled {
			continue
		}
		fn := g.fns[n.Kind]
		if fn == nil {
			continue
		}
		fc := &FragContext{
			node:     n,
			inputs:   resolveInputs(st, n),
			settings: comp.Settings,
			state:    st,
		}
		frag, ok := fn(fc)
		if !ok {
			continue
		}
		st.labels[n.ID] = fc.Out()
		lastOut = fc.Out()
		frags = append(frags, frag)
	}

	return &Program{
		Expression:  strings.Join(frags, fragmentSeparator),
		Inputs:      st.inputs,
		OutputLabel: outputLabel(st, lastOut),
		NodeCount:   len(order),
	}
}

// resolveInputs maps a node's input ports to their upstream labels in port
// order.
func resolveInputs(st *genState, n *model.Node) []string {
	labels := make([]string, len(n.Inputs))
	for i, p := range n.Inputs {
		labels[i] = baseLabel
		if p.Upstream == nil {
			continue
		}
		if src := st.comp.NodeByID(p.Upstream.NodeID); src != nil {
			labels[i] = st.labelFor(src)
		}
	}
	return labels
}

// outputLabel picks the link to map into the output file. The label feeding
// the first connected output node wins; a composition without one falls
// back to the last emitted fragment, and an expressionless program to the
// base input.
func outputLabel(st *genState, lastOut string) string {
	for _, n := range st.comp.Nodes {
		if n.Category != model.CategoryOutput || !n.Enabled {
			continue
		}
		for _, p := range n.Inputs {
			if p.Upstream == nil {
				continue
			}
			if src := st.comp.NodeByID(p.Upstream.NodeID); src != nil {
				return st.labelFor(src)
			}
		}
	}
	if lastOut != "" {
		return lastOut
	}
	return baseLabel
}
