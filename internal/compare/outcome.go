package compare

// Outcome is the result of a comparison that may not apply to its operands.
type Outcome int8

const (
	// NotComparable signals the operands are not of the same record type. It
	// is a non-result: callers treat it as "not equal" and "not ordered".
	NotComparable Outcome = iota
	False
	True
)

// Of converts a boolean to an outcome.
func Of(b bool) Outcome {
	if b {
		return True
	}
	return False
}

// Bool is true only for True.
func (o Outcome) Bool() bool { return o == True }

// Comparable is false only for NotComparable.
func (o Outcome) Comparable() bool { return o != NotComparable }

// Not negates the outcome, propagating NotComparable.
func (o Outcome) Not() Outcome {
	switch o {
	case True:
		return False
	case False:
		return True
	}
	return NotComparable
}

func (o Outcome) String() string {
	switch o {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "not comparable"
}
