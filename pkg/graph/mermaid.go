package graph

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/dfakit"
)

// Mermaid renders def as a Mermaid stateDiagram-v2. State names Mermaid
// cannot use as identifiers are declared under a sanitized alias, keeping
// the display name intact.
func Mermaid[S, I comparable](def dfakit.Definition[S, I]) string {
	var b strings.Builder
	b.WriteString("stateDiagram-v2\n")

	ids := make(map[S]string, len(def.States))
	taken := make(map[string]int, len(def.States))
	for _, s := range def.States {
		name := fmt.Sprint(s)
		base := sanitize(name)
		id := base
		if n := taken[base]; n > 0 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		taken[base]++
		ids[s] = id
		if id != name {
			fmt.Fprintf(&b, "    state %q as %s\n", name, id)
		}
	}

	fmt.Fprintf(&b, "    [*] --> %s\n", ids[def.Initial])
	for _, t := range def.Transitions {
		fmt.Fprintf(&b, "    %s --> %s: %v\n", ids[t.From], ids[t.To], t.On)
	}
	return b.String()
}

// sanitize maps a display name onto an identifier Mermaid accepts.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
