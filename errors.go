package vertexlm

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError indicates invalid or unresolved adapter configuration. It is
// returned before any network call and is never retried.
type ConfigError struct {
	// Field names the configuration field that could not be resolved,
	// e.g. "project" or "model".
	Field string
	// EnvVar names the environment variable that could supply the field,
	// if one exists.
	EnvVar string
	// Msg overrides the generated message when set.
	Msg string
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.EnvVar != "" {
		return fmt.Sprintf("missing %s: set it at construction or via environment variable %s", e.Field, e.EnvVar)
	}
	return fmt.Sprintf("invalid %s configuration", e.Field)
}

// UnsupportedError indicates a request the Vertex AI APIs cannot serve,
// such as multi-candidate sampling or an image segment sent to a
// text-only model. It is returned before any network call.
type UnsupportedError struct {
	Reason string
}

// Error returns the error message.
func (e *UnsupportedError) Error() string {
	return e.Reason
}

// IsConfig returns true if the error or any wrapped error is a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsUnsupported returns true if the error or any wrapped error is an
// UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}

// BatchError reports per-prompt failures from a batched sampling call.
// Errs has one entry per input prompt; nil entries mark prompts that
// succeeded. Sibling prompts are never aborted by one prompt's failure.
type BatchError struct {
	Errs []error
}

// Error summarizes the failures.
func (e *BatchError) Error() string {
	var parts []string
	for i, err := range e.Errs {
		if err != nil {
			parts = append(parts, fmt.Sprintf("prompt %d: %v", i, err))
		}
	}
	return fmt.Sprintf("%d of %d prompts failed: %s", len(parts), len(e.Errs), strings.Join(parts, "; "))
}

// Unwrap returns the non-nil per-prompt errors for errors.Is / errors.As.
func (e *BatchError) Unwrap() []error {
	var errs []error
	for _, err := range e.Errs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// At returns the error for the prompt at position i, or nil if that
// prompt succeeded.
func (e *BatchError) At(i int) error {
	if i < 0 || i >= len(e.Errs) {
		return nil
	}
	return e.Errs[i]
}

// Failed returns the number of prompts that failed.
func (e *BatchError) Failed() int {
	n := 0
	for _, err := range e.Errs {
		if err != nil {
			n++
		}
	}
	return n
}
