package transform

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
)

// payloadLevel marks a SchemaError that is not tied to a single event.
const payloadLevel = -1

// SchemaError reports an upstream document whose shape the transform cannot handle.
// Event is the zero-based index of the offending event, or -1 for document-level problems.
type SchemaError struct {
	League domain.League
	Event  int
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Event < 0 {
		return fmt.Sprintf("%s scoreboard schema: %s", e.League, e.Reason)
	}
	return fmt.Sprintf("%s scoreboard schema: event %d: %s", e.League, e.Event, e.Reason)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr, true
	}
	return nil, false
}
