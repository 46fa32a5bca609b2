package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dfakit"
	"github.com/dmitrymomot/dfakit/pkg/graph"
)

func TestMermaid(t *testing.T) {
	t.Parallel()

	want := `stateDiagram-v2
    [*] --> START
    START --> START: a
    START --> MID: b
    MID --> MID: b
    MID --> FINAL: a
    MID --> START: c
`

	assert.Equal(t, want, graph.Mermaid(acceptorDefinition()))
}

func TestMermaid_SanitizesIdentifiers(t *testing.T) {
	t.Parallel()

	def := dfakit.Definition[string, string]{
		Alphabet: []string{"x"},
		States:   []string{"needs space", "ok"},
		Initial:  "needs space",
		Transitions: []dfakit.Transition[string, string]{
			{From: "needs space", On: "x", To: "ok"},
		},
	}

	want := `stateDiagram-v2
    state "needs space" as needs_space
    [*] --> needs_space
    needs_space --> ok: x
`

	assert.Equal(t, want, graph.Mermaid(def))
}

func TestMermaid_DisambiguatesCollidingIdentifiers(t *testing.T) {
	t.Parallel()

	// Both names sanitize to a_b; the second gets a numeric suffix.
	def := dfakit.Definition[string, string]{
		Alphabet: []string{"x"},
		States:   []string{"a b", "a-b"},
		Initial:  "a b",
		Transitions: []dfakit.Transition[string, string]{
			{From: "a b", On: "x", To: "a-b"},
		},
	}

	out := graph.Mermaid(def)
	assert.Contains(t, out, `state "a b" as a_b`)
	assert.Contains(t, out, `state "a-b" as a_b_1`)
	assert.Contains(t, out, "a_b --> a_b_1: x")
}
