package dataapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mschae23/data-api/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotABoolean         = "not_a_boolean"
	CodeNotAString          = "not_a_string"
	CodeNotAnInt            = "not_an_int"
	CodeNotALong            = "not_a_long"
	CodeNotAFloat           = "not_a_float"
	CodeNotADouble          = "not_a_double"
	CodeNotAnArray          = "not_an_array"
	CodeNotAnObject         = "not_an_object"
	CodeMissingKey          = "missing_key"
	CodeNeitherVariant      = "neither_variant"
	CodeUnknownDiscriminant = "unknown_discriminant"
	// CodeValidation is the open-ended kind for caller-supplied checks and
	// for external producers (expression front ends, wire transcoders) that
	// reuse this taxonomy for their own failures.
	CodeValidation = "validation"
)

// Error is a single path-qualified decode/encode failure. The path starts
// empty at the point of failure; each enclosing composite prepends its own
// context exactly once as the error returns outward.
type Error struct {
	// Code is one of the constants above.
	Code string
	// Path locates the failure within the decoded tree.
	Path Path
	// Element is the offending Element. External producers without one
	// leave it absent.
	Element Element
	// Message optionally overrides the dictionary message. It receives the
	// rendered path, so the text stays accurate as context is prepended.
	Message func(path string) string
	// Causes optionally retains discarded detail errors (e.g. both branch
	// failures behind a neither_variant summary). They are diagnostics
	// only and do not take part in rendering.
	Causes []Error
}

// NewError returns an Error of the given code for the offending Element,
// with an empty path.
func NewError(code string, el Element) Error {
	return Error{Code: code, Element: el}
}

// NewValidationError returns the generic message-producing validation error.
func NewValidationError(message func(path string) string, el Element) Error {
	return Error{Code: CodeValidation, Element: el, Message: message}
}

// WithPath returns a copy of e with its path replaced by fn(path).
func (e Error) WithPath(fn func(Path) Path) Error {
	e.Path = fn(e.Path)
	return e
}

// At returns a copy of e with node prepended to its path.
func (e Error) At(node PathNode) Error {
	e.Path = e.Path.Prepend(node)
	return e
}

// Description renders a human-readable message parameterized by the rendered
// path.
func (e Error) Description() string {
	p := e.Path.String()
	if e.Message != nil {
		return e.Message(p)
	}
	data := map[string]string{"element": e.Element.String()}
	return fmt.Sprintf("%s at %s", i18n.T(e.Code, data), p)
}

// Errors is an ordered collection of failures that implements error. A
// Failure Result never carries an empty Errors.
type Errors []Error

// Error summarizes the first few errors.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(errs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := errs[i]
		// e.g. not_an_int at /items/2
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// At returns a copy of errs with node prepended to every error's path.
func (errs Errors) At(node PathNode) Errors {
	if len(errs) == 0 {
		return errs
	}
	out := make(Errors, len(errs))
	for i, e := range errs {
		out[i] = e.At(node)
	}
	return out
}

// AppendErrors appends errors to the destination, initializing the slice
// when needed.
func AppendErrors(dst Errors, more ...Error) Errors {
	if dst == nil {
		dst = Errors{}
	}
	return append(dst, more...)
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
