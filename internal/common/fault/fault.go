// Released under an MIT license. See LICENSE.

// Package fault provides the errors raised while evaluating eva code.
//
// Every fault is deterministic. Evaluation stops at the first fault and the
// fault is returned, unchanged, to the top-level caller.
package fault

import (
	"strconv"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Unknown Kind = iota

	ArityMismatch
	MalformedExpression
	NotCallable
	PrimitiveFailure
	StackLimitExceeded
	UndefinedVariable
	UnimplementedExpression
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case ArityMismatch:
		return "ArityMismatch"
	case MalformedExpression:
		return "MalformedExpression"
	case NotCallable:
		return "NotCallable"
	case PrimitiveFailure:
		return "PrimitiveFailure"
	case StackLimitExceeded:
		return "StackLimitExceeded"
	case UndefinedVariable:
		return "UndefinedVariable"
	case UnimplementedExpression:
		return "UnimplementedExpression"
	}

	return "Unknown"
}

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrArityMismatch           = &T{Kind: ArityMismatch}
	ErrMalformedExpression     = &T{Kind: MalformedExpression}
	ErrNotCallable             = &T{Kind: NotCallable}
	ErrPrimitiveFailure        = &T{Kind: PrimitiveFailure}
	ErrStackLimitExceeded      = &T{Kind: StackLimitExceeded}
	ErrUndefinedVariable       = &T{Kind: UndefinedVariable}
	ErrUnimplementedExpression = &T{Kind: UnimplementedExpression}
)

// T (fault) is an evaluation error.
type T struct {
	Kind    Kind
	Subject string // Variable name, expression literal, or primitive name.
	Detail  string
}

type fault = T

// Error returns the message for the fault f.
func (f *fault) Error() string {
	s := f.Kind.String()

	if f.Subject != "" {
		s += "(" + strconv.Quote(f.Subject) + ")"
	}

	if f.Detail != "" {
		s += ": " + f.Detail
	}

	return s
}

// Is reports whether target is a fault of the same kind. A target with a
// subject must also match the subject.
func (f *fault) Is(target error) bool {
	t, ok := target.(*fault)
	if !ok {
		return false
	}

	if t.Kind != f.Kind {
		return false
	}

	return t.Subject == "" || t.Subject == f.Subject
}

// Arity creates an ArityMismatch fault for the routine named n.
func Arity(n string, expected, passed int) *T {
	return &T{
		Kind:    ArityMismatch,
		Subject: n,
		Detail:  "expected " + Count(expected, "argument", "s") + ", passed " + strconv.Itoa(passed),
	}
}

// Depth creates a StackLimitExceeded fault for the limit n.
func Depth(n int) *T {
	return &T{
		Kind:   StackLimitExceeded,
		Detail: "evaluation nested deeper than " + strconv.Itoa(n) + " levels",
	}
}

// Malformed creates a MalformedExpression fault for the expression literal e.
func Malformed(e, detail string) *T {
	return &T{Kind: MalformedExpression, Subject: e, Detail: detail}
}

// Primitive creates a PrimitiveFailure fault for the primitive named n.
func Primitive(n, detail string) *T {
	return &T{Kind: PrimitiveFailure, Subject: n, Detail: detail}
}

// Uncallable creates a NotCallable fault for a value with the type name n.
func Uncallable(e, n string) *T {
	return &T{Kind: NotCallable, Subject: e, Detail: n + " is not a function"}
}

// Undefined creates an UndefinedVariable fault for the name k.
func Undefined(k string) *T {
	return &T{Kind: UndefinedVariable, Subject: k}
}

// Unimplemented creates an UnimplementedExpression fault for the expression literal e.
func Unimplemented(e string) *T {
	return &T{Kind: UnimplementedExpression, Subject: e}
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return strconv.Itoa(n) + " " + label + p
}
