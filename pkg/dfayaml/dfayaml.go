package dfayaml

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dfakit"
)

// document mirrors the wire shape of a machine definition.
type document struct {
	Alphabet    []string     `yaml:"alphabet"`
	States      []string     `yaml:"states"`
	Initial     string       `yaml:"initial"`
	Transitions []transition `yaml:"transitions"`
	Final       []string     `yaml:"final"`
}

type transition struct {
	From string `yaml:"from"`
	On   string `yaml:"on"`
	To   string `yaml:"to"`
}

// Decode reads one machine definition from r. Unknown fields are rejected so
// a typo in a document surfaces as an error instead of a silently ignored
// setting. Decode checks only document shape; semantic validation belongs to
// dfakit.New.
func Decode(r io.Reader) (dfakit.Definition[string, string], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return dfakit.Definition[string, string]{}, errors.Join(ErrInvalidDocument, err)
	}

	def := dfakit.Definition[string, string]{
		Alphabet: doc.Alphabet,
		States:   doc.States,
		Initial:  doc.Initial,
		Final:    doc.Final,
	}
	if len(doc.Transitions) > 0 {
		def.Transitions = make([]dfakit.Transition[string, string], len(doc.Transitions))
		for i, t := range doc.Transitions {
			def.Transitions[i] = dfakit.Transition[string, string]{From: t.From, On: t.On, To: t.To}
		}
	}
	return def, nil
}

// Parse decodes a machine definition from raw YAML bytes.
func Parse(data []byte) (dfakit.Definition[string, string], error) {
	return Decode(bytes.NewReader(data))
}

// NewMachine decodes data and constructs a machine from it in one step.
// Decode failures wrap ErrInvalidDocument; a well-formed document describing
// an invalid automaton fails with dfakit's own construction errors.
func NewMachine(data []byte, opts ...dfakit.Option[string, string]) (*dfakit.Machine[string, string], error) {
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return dfakit.New(def, opts...)
}
