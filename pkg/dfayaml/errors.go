package dfayaml

import "errors"

// ErrInvalidDocument is returned when a document cannot be decoded as a
// machine definition: malformed YAML, a mistyped value, or an unknown field.
var ErrInvalidDocument = errors.New("failed to decode machine definition document")
