package types

import (
	"fmt"
	"strings"
)

// Error is a failure identified by a stable code, with the values that
// explain it in the context.
type Error struct {
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	if len(err.Context) == 0 {
		return err.Code
	}
	return fmt.Sprintf("%+v: %+v", err.Code, err.Context)
}

// Is reports whether target is an Error with the same code, so that errors.Is
// can match on a code-only sentinel.
func (err Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return t.Code == err.Code
	case *Error:
		return t != nil && t.Code == err.Code
	}
	return false
}

// Attr returns the attribute name in the error context, if any.
func (err Error) Attr() (name string) {
	name, _ = err.Context["attr"].(string)
	return
}

// Type returns the record type name in the error context, if any.
func (err Error) Type() (name string) {
	name, _ = err.Context["type"].(string)
	return
}

// Package returns the code prefix naming the package that raised the error.
func (err Error) Package() string {
	pkg, _, _ := strings.Cut(err.Code, ".")
	return pkg
}

func NewError(code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
