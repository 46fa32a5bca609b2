package dfayaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dfakit"
	"github.com/dmitrymomot/dfakit/pkg/dfayaml"
)

const acceptorDoc = `alphabet: [a, b, c]
states: [START, MID, FINAL]
initial: START
transitions:
  - {from: START, on: a, to: START}
  - {from: START, on: b, to: MID}
  - {from: MID, on: b, to: MID}
  - {from: MID, on: a, to: FINAL}
  - {from: MID, on: c, to: START}
final: [FINAL]
`

func TestParse(t *testing.T) {
	t.Parallel()

	def, err := dfayaml.Parse([]byte(acceptorDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, def.Alphabet)
	assert.Equal(t, []string{"START", "MID", "FINAL"}, def.States)
	assert.Equal(t, "START", def.Initial)
	assert.Equal(t, []string{"FINAL"}, def.Final)

	// Document order must survive into the definition.
	require.Len(t, def.Transitions, 5)
	assert.Equal(t, dfakit.Transition[string, string]{From: "START", On: "a", To: "START"}, def.Transitions[0])
	assert.Equal(t, dfakit.Transition[string, string]{From: "MID", On: "c", To: "START"}, def.Transitions[4])
}

func TestParse_InvalidDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "malformed yaml",
			doc:  "alphabet: [a, b\nstates",
		},
		{
			name: "unknown field",
			doc: `alphabet: [a]
states: [s]
initial: s
start_state: s
`,
		},
		{
			name: "wrong field type",
			doc: `alphabet: a
states: [s]
initial: s
`,
		},
		{
			name: "empty document",
			doc:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dfayaml.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, dfayaml.ErrInvalidDocument)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	def, err := dfayaml.Decode(strings.NewReader(acceptorDoc))
	require.NoError(t, err)
	assert.Equal(t, "START", def.Initial)
	assert.Len(t, def.Transitions, 5)
}

func TestNewMachine(t *testing.T) {
	t.Parallel()

	t.Run("builds a working machine", func(t *testing.T) {
		t.Parallel()

		m, err := dfayaml.NewMachine([]byte(acceptorDoc))
		require.NoError(t, err)

		require.NoError(t, m.Feed("a", "b", "b", "c", "b", "a"))
		assert.Equal(t, "FINAL", m.Current())
		assert.True(t, m.Accepting())
	})

	t.Run("options are applied", func(t *testing.T) {
		t.Parallel()

		var visited []string
		m, err := dfayaml.NewMachine([]byte(acceptorDoc),
			dfakit.WithEndHook(func(m *dfakit.Machine[string, string], from, symbol, to string) {
				visited = append(visited, to)
			}),
		)
		require.NoError(t, err)

		require.NoError(t, m.Feed("b", "a"))
		assert.Equal(t, []string{"MID", "FINAL"}, visited)
	})

	t.Run("semantic errors come from the engine", func(t *testing.T) {
		t.Parallel()

		doc := `alphabet: [a]
states: [s]
initial: missing
transitions:
  - {from: s, on: a, to: s}
`
		_, err := dfayaml.NewMachine([]byte(doc))
		require.ErrorIs(t, err, dfakit.ErrUnknownInitialState)
		assert.NotErrorIs(t, err, dfayaml.ErrInvalidDocument)
	})

	t.Run("conflict positions match document order", func(t *testing.T) {
		t.Parallel()

		doc := `alphabet: [a]
states: [s, u]
initial: s
transitions:
  - {from: s, on: a, to: u}
  - {from: u, on: a, to: s}
  - {from: s, on: a, to: s}
`
		_, err := dfayaml.NewMachine([]byte(doc))

		var conflict *dfakit.ErrConflictingTransitions
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, 0, conflict.First)
		assert.Equal(t, 2, conflict.Second)
	})
}
