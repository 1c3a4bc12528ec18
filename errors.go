package conf

import "fmt"

// ErrorKind identifies the grammar rule or external condition a
// ParseError came from.
type ErrorKind int

const (
	ErrNoIdent ErrorKind = iota
	ErrNoEqualAfterIdent
	ErrNoValueAfterEqual
	ErrNoNewlineAfterValue
	ErrUnterminatedString
	ErrUnexpectedCharacter
	ErrExpectedRightSquareOrComma
	ErrExternal
)

// String returns the diagnostic message for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrNoIdent:
		return "expected identifier"
	case ErrNoEqualAfterIdent:
		return "expected '=' after identifier"
	case ErrNoValueAfterEqual:
		return "expected value after '='"
	case ErrNoNewlineAfterValue:
		return "expected newline after value"
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrUnexpectedCharacter:
		return "unexpected character"
	case ErrExpectedRightSquareOrComma:
		return "expected ']' or ',' inside list"
	case ErrExternal:
		return "external error"
	default:
		return "unknown error"
	}
}

// ParseError is one recovered fault. Syntax and lexical errors carry the
// 1-based position of the offending token plus the text of the previous
// and current tokens; ErrExternal errors carry an underlying error (for
// example an I/O failure) instead.
type ParseError struct {
	Kind ErrorKind
	Line int
	Col  int
	Prev string
	Cur  string
	Err  error // underlying cause, set only for ErrExternal
}

// Error formats a stable, human-readable message that does not require
// re-reading the source text.
func (e ParseError) Error() string {
	if e.Kind == ErrExternal {
		return fmt.Sprintf("error: %v", e.Err)
	}
	return fmt.Sprintf("%d:%d: %s (after %q, found %q)", e.Line, e.Col, e.Kind, e.Prev, e.Cur)
}

// Unwrap returns the underlying error of an ErrExternal, or nil.
func (e ParseError) Unwrap() error {
	return e.Err
}

// externalError wraps an error from outside the parser, typically file
// I/O, as a document-global ParseError.
func externalError(err error) ParseError {
	return ParseError{Kind: ErrExternal, Err: err}
}

// WarningKind identifies a schema-reconciliation finding.
type WarningKind int

const (
	InvalidKey WarningKind = iota
	MissingKey
	MismatchedTypes
)

// String returns the warning kind name.
func (k WarningKind) String() string {
	switch k {
	case InvalidKey:
		return "invalid key"
	case MissingKey:
		return "missing key"
	case MismatchedTypes:
		return "mismatched types"
	default:
		return "unknown warning"
	}
}

// Warning is one finding from validating parsed data against a schema.
// Warnings never abort the caller: validation always produces usable,
// type-correct data.
type Warning struct {
	Kind    WarningKind
	Key     string
	Default Value // substituted default, set for MissingKey and MismatchedTypes
	Got     Value // discarded value, set for MismatchedTypes
}

// String formats a stable, human-readable message for the warning.
func (w Warning) String() string {
	switch w.Kind {
	case InvalidKey:
		return fmt.Sprintf("invalid key %q", w.Key)
	case MissingKey:
		return fmt.Sprintf("missing key %q; using default %s", w.Key, w.Default.Format())
	case MismatchedTypes:
		return fmt.Sprintf("mismatched types for key %q (expected %s, got %s); using default %s",
			w.Key, w.Default.Type(), w.Got.Type(), w.Default.Format())
	default:
		return fmt.Sprintf("unknown warning for key %q", w.Key)
	}
}
