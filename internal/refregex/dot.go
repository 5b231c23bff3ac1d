package refregex

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz representation of r's DFA to w, following the
// same doublecircle/point-node conventions as internal/dafsa.ExportDOT.
func ExportDOT(w io.Writer, r *Regex) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, s := range r.dfa.States {
		shape := "circle"
		if s.accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s.id, shape)
		for ch, to := range s.trans {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", s.id, to.id, ch)
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", r.dfa.Start.id)
	fmt.Fprintln(w, "}")
}
