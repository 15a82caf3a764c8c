// Package errors provides error handling for jpoet.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for the developer calling the emitter
//
// Every failure the emitter can produce is a programmer error. They are
// grouped by sentinel so callers can classify them with Is:
//
//	block, err := codeblock.Of("$T.class", 42)
//	if errors.Is(err, errors.ErrArgumentType) {
//	    // a non-type value was passed to $T
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Mark           = crdb.Mark
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the emission pipeline.
// The New*Error helpers mark a fresh error with one of these, so the message
// stays readable and errors.Is() still classifies it.
var (
	// ErrTemplateSyntax indicates a malformed format string: a dangling $,
	// an unknown placeholder, an index out of range, mixed addressing styles,
	// or unused / missing arguments.
	ErrTemplateSyntax = New("template syntax error")

	// ErrArgumentType indicates a value of the wrong kind was supplied for a
	// typed placeholder ($N, $T).
	ErrArgumentType = New("argument type error")

	// ErrInvalidName indicates text that is not a valid Java identifier was
	// supplied where a language-level name is required.
	ErrInvalidName = New("invalid name")

	// ErrWriterMisuse indicates the document writer was driven incorrectly:
	// writes after close, unbalanced statement markers, unbalanced scopes.
	ErrWriterMisuse = New("writer misuse")

	// ErrInvalidConfig indicates a configuration value is out of range
	ErrInvalidConfig = New("invalid configuration")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")
)

// NewTemplateSyntaxError creates a template syntax error with a formatted message
func NewTemplateSyntaxError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrTemplateSyntax)
}

// NewArgumentTypeError creates an argument type error with a formatted message
func NewArgumentTypeError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrArgumentType)
}

// NewInvalidNameError creates an invalid-name error with a formatted message
func NewInvalidNameError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrInvalidName)
}

// NewWriterMisuseError creates a writer misuse error with a formatted message
func NewWriterMisuseError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrWriterMisuse)
}

// NewInvalidConfigError creates an invalid-configuration error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrInvalidConfig)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Mark(crdb.NewWithDepthf(1, format, args...), ErrNotFound)
}

// IsUsageError reports whether err belongs to the emitter's usage taxonomy.
func IsUsageError(err error) bool {
	return err != nil && IsAny(err, ErrTemplateSyntax, ErrArgumentType, ErrInvalidName, ErrWriterMisuse)
}
