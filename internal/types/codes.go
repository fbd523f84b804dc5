package types

// These are the codes of the errors a composed record type may report.
const (
	// ConflictingDefaultStrategy: an attribute was given both a default value and a factory.
	ConflictingDefaultStrategy = "attrs.conflictingDefaultStrategy"
	// ConflictingDefaultsDeclaration: a legacy defaults mapping was mixed with attribute defaults.
	ConflictingDefaultsDeclaration = "record.conflictingDefaultsDeclaration"
	// MissingRequiredAttribute: construction omitted an attribute with no default.
	MissingRequiredAttribute = "initializer.missingRequiredAttribute"
	// UnexpectedArguments: construction left arguments that nothing consumed.
	UnexpectedArguments = "initializer.unexpectedArguments"
	// ImmutabilityViolation: a protected attribute was written after construction.
	ImmutabilityViolation = "guard.immutabilityViolation"
	// IncomparableTypes: operands of a comparison are of different record types.
	IncomparableTypes = "compare.incomparableTypes"
	// Unorderable: a field value has no ordering.
	Unorderable = "compare.unorderable"
	// Unhashable: a field value has no hash.
	Unhashable = "compare.unhashable"
)
