package toon

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is matched by every *ConfigError via errors.Is.
var ErrInvalidOption = errors.New("invalid encode option")

// ConfigError reports an encode option that cannot be used. It is returned
// before any encoding work starts.
type ConfigError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidOption
}

// InputError wraps a failure to read the source document into the value model,
// such as malformed JSON or a Go value of an unsupported kind.
type InputError struct {
	Offset int64 // byte offset into the JSON text, -1 when not applicable
	Err    error
}

func (e *InputError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid input at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("invalid input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
