package questiongen

import (
	"fmt"

	"github.com/akshad/studyquest/internal/challenge"
)

// Validator checks one authored question. Implementations must be
// stateless and safe for concurrent use.
type Validator interface {
	// Name identifies the validator in error messages, e.g.
	// "structural".
	Name() string

	// Validate returns nil when the question passes.
	Validate(q *challenge.Question, input Input) *ValidationError
}

// ValidationError says which check a question failed.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
