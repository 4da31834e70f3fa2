package plan

import (
	"fmt"
	"strings"

	"extenum-generator/internal/syntax"
)

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind classifies expansion failures.
type ErrorKind int

const (
	_ ErrorKind = iota

	NotAnEnum
	MissingKnownCases
	KnownCasesNotPrivate
	MissingRawType
	KnownCaseHasParameters
	InvalidRawLiteral
	HashConflict
	InvalidCatchAllPattern
	UnknownCaseArityMismatch
	UnknownCaseTypeMismatch
	NameCollision
)

// Sentinels for errors.Is. Only the kind is compared.
var (
	ErrNotAnEnum                = &Error{Kind: NotAnEnum}
	ErrMissingKnownCases        = &Error{Kind: MissingKnownCases}
	ErrKnownCasesNotPrivate     = &Error{Kind: KnownCasesNotPrivate}
	ErrMissingRawType           = &Error{Kind: MissingRawType}
	ErrKnownCaseHasParameters   = &Error{Kind: KnownCaseHasParameters}
	ErrInvalidRawLiteral        = &Error{Kind: InvalidRawLiteral}
	ErrHashConflict             = &Error{Kind: HashConflict}
	ErrInvalidCatchAllPattern   = &Error{Kind: InvalidCatchAllPattern}
	ErrUnknownCaseArityMismatch = &Error{Kind: UnknownCaseArityMismatch}
	ErrUnknownCaseTypeMismatch  = &Error{Kind: UnknownCaseTypeMismatch}
	ErrNameCollision            = &Error{Kind: NameCollision}
)

// Error is a structural error in an enum declaration.
type Error struct {
	Kind ErrorKind
	// Enum is the name of the enum being expanded.
	Enum string
	// Case is the offending case or member, if any.
	Case string
	// Detail completes the message, e.g. the offending type.
	Detail string
	// Pos locates the offending node when known.
	Pos syntax.Pos
	// Suggestions lists near-miss names for the missing member.
	Suggestions []string
}

func newError(kind ErrorKind, enum string, pos syntax.Pos) *Error {
	return &Error{Kind: kind, Enum: enum, Pos: pos}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	if e.Pos.IsValid() {
		b.WriteString(e.Pos.String())
		b.WriteString(": ")
	}

	b.WriteString(e.message())

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *Error) message() string {
	switch e.Kind {
	case NotAnEnum:
		return fmt.Sprintf("%s: extenum can only be applied to enums%s", e.Enum, e.detail())
	case MissingKnownCases:
		return fmt.Sprintf("%s: KnownCases enum must be declared", e.Enum)
	case KnownCasesNotPrivate:
		return fmt.Sprintf("%s: KnownCases enum must be private", e.Enum)
	case MissingRawType:
		return fmt.Sprintf("%s: KnownCases enum must inherit from exactly one raw type%s", e.Enum, e.detail())
	case KnownCaseHasParameters:
		return fmt.Sprintf("%s: known enum case %s may not have parameters", e.Enum, e.Case)
	case InvalidRawLiteral:
		return fmt.Sprintf("%s: known enum case %s has an invalid raw value%s", e.Enum, e.Case, e.detail())
	case HashConflict:
		return fmt.Sprintf("%s: %s contributes to hashing; the hash implementation is derived and cannot be overridden",
			e.Enum, e.Case)
	case InvalidCatchAllPattern:
		return fmt.Sprintf("invalid catch-all case pattern%s", e.detail())
	case UnknownCaseArityMismatch:
		return fmt.Sprintf("%s: unknown case %s must have exactly one parameter%s", e.Enum, e.Case, e.detail())
	case UnknownCaseTypeMismatch:
		return fmt.Sprintf("%s: unknown case %s must take a single parameter of type %s", e.Enum, e.Case, e.Detail)
	case NameCollision:
		return fmt.Sprintf("%s: name %s is declared twice%s", e.Enum, e.Case, e.detail())
	default:
		return fmt.Sprintf("%s: %s", e.Enum, e.Kind)
	}
}

func (e *Error) detail() string {
	if e.Detail == "" {
		return ""
	}

	return " (" + e.Detail + ")"
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}
