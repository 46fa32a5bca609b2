package graph

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/dfakit"
)

// DOT renders def as a Graphviz digraph. Final states draw as double
// circles, an unlabeled point node marks the entry into the initial state,
// and transitions sharing source and destination merge into one edge with a
// combined label.
func DOT[S, I comparable](def dfakit.Definition[S, I]) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("\trankdir=\"LR\";\n")
	b.WriteString("\tnode [shape=\"circle\"];\n")
	b.WriteString("\t\"__initial\" [shape=\"point\", label=\"\"];\n")

	final := make(map[S]struct{}, len(def.Final))
	for _, s := range def.Final {
		final[s] = struct{}{}
	}
	for _, s := range def.States {
		shape := "circle"
		if _, ok := final[s]; ok {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\t%s [shape=%q];\n", quote(s), shape)
	}

	fmt.Fprintf(&b, "\t\"__initial\" -> %s;\n", quote(def.Initial))

	// Merge labels per (from, to) pair, keeping first-seen edge order.
	type edge struct{ from, to S }
	labels := make(map[edge][]string, len(def.Transitions))
	var order []edge
	for _, t := range def.Transitions {
		e := edge{from: t.From, to: t.To}
		if _, ok := labels[e]; !ok {
			order = append(order, e)
		}
		labels[e] = append(labels[e], fmt.Sprint(t.On))
	}
	for _, e := range order {
		fmt.Fprintf(&b, "\t%s -> %s [label=%q];\n",
			quote(e.from), quote(e.to), strings.Join(labels[e], ", "))
	}

	b.WriteString("}\n")
	return b.String()
}

// quote renders v as a quoted DOT identifier.
func quote(v any) string {
	return fmt.Sprintf("%q", fmt.Sprint(v))
}
