package dafsa

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz representation of g to w, following the same
// conventions as internal/refregex's ExportDOT (doublecircle for the leaf,
// a point node feeding the start state) so both the reference engine's
// automata and this compiler's DAFSA render consistently.
func ExportDOT(w io.Writer, g *Graph) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, n := range g.nodes {
		shape := "circle"
		if n == g.leaf {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", n.id, shape)
		for _, e := range n.children {
			label := e.label.Regex()
			if label == "" {
				label = "ε"
			}
			fmt.Fprintf(w, "    n%d -> n%d [label=\"%s\"];\n", n.id, e.other.id, label)
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", g.root.id)
	fmt.Fprintln(w, "}")
}
