package record

import (
	"github.com/dball/characteristic/internal/types"
)

// These are the error codes raised by this package.
const (
	// NoInitializer: New was called on a kind composed without an initializer.
	NoInitializer = "record.noInitializer"
	// HasInitializer: Wrap was called on a kind composed with an initializer.
	HasInitializer = "record.hasInitializer"
)

// Error is the type of all errors reported by record kinds and records. Use
// errors.Is with the sentinels below to match on the error code, and the
// error's Context for the details.
type Error = types.Error

// These sentinels match errors by code with errors.Is.
var (
	ErrConflictingDefaultStrategy     = Error{Code: types.ConflictingDefaultStrategy}
	ErrConflictingDefaultsDeclaration = Error{Code: types.ConflictingDefaultsDeclaration}
	ErrMissingRequiredAttribute       = Error{Code: types.MissingRequiredAttribute}
	ErrUnexpectedArguments            = Error{Code: types.UnexpectedArguments}
	ErrImmutabilityViolation          = Error{Code: types.ImmutabilityViolation}
	ErrIncomparableTypes              = Error{Code: types.IncomparableTypes}
	ErrUnorderable                    = Error{Code: types.Unorderable}
	ErrUnhashable                     = Error{Code: types.Unhashable}
	ErrNoInitializer                  = Error{Code: NoInitializer}
	ErrHasInitializer                 = Error{Code: HasInitializer}
)
