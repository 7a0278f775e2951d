package app

import (
	"fmt"
	"strings"
)

// printCatalog writes the node type catalog to the application's output:
// one block per type with its ports and parameter declarations.
func (a *App) printCatalog() {
	defs := a.catalog.Definitions()
	fmt.Fprintf(a.outW, "Available node types (%d):\n", len(defs))
	for _, def := range defs {
		fmt.Fprintf(a.outW, "\n%s\n", def.Kind)
		if len(def.Inputs) > 0 {
			fmt.Fprintf(a.outW, "  inputs:  %s\n", strings.Join(def.Inputs, ", "))
		}
		if len(def.Outputs) > 0 {
			fmt.Fprintf(a.outW, "  outputs: %s\n", strings.Join(def.Outputs, ", "))
		}
		for _, p := range def.Params {
			line := fmt.Sprintf("  param %s (%s) = %s", p.Name, p.Type, p.Default)
			if len(p.Choices) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(p.Choices, "|"))
			}
			fmt.Fprintln(a.outW, line)
		}
	}
}
