package cssinline

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// Kinds of parse errors.
const (
	Unknown              ErrorKind = iota // failure outside of the CSS text
	UnexpectedToken                       // token not allowed at its position
	EndOfInput                            // input ended while a rule was open
	InvalidAtRule                         // at-rules are not supported
	InvalidAtRuleBody                     // reserved, see ParseStylesheet
	InvalidQualifiedRule                  // malformed prelude
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case EndOfInput:
		return "end of input"
	case InvalidAtRule:
		return "invalid at-rule"
	case InvalidAtRuleBody:
		return "invalid at-rule body"
	case InvalidQualifiedRule:
		return "invalid qualified rule"
	}
	return "unknown"
}

// message returns the human readable text for the kind. detail is the
// offending token or at-rule name where the kind has one.
func (k ErrorKind) message(detail string) string {
	switch k {
	case UnexpectedToken:
		return "Unexpected token: " + detail
	case EndOfInput:
		return "End of input"
	case InvalidAtRule:
		return "Invalid @ rule: " + detail
	case InvalidAtRuleBody:
		return "Invalid @ rule body"
	case InvalidQualifiedRule:
		return "Invalid qualified rule"
	}
	return "Unknown error"
}

// ParseError is returned for malformed CSS inside a style element and when
// the style elements of a document cannot be located. Line and Column point
// to the offending token of the stylesheet; they are zero if unknown.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return e.Message
}

// newParseError creates an error of the given kind for the byte offset in
// css. Line and column are 1-based, the column counts runes.
func newParseError(kind ErrorKind, css string, offset int, detail string) *ParseError {
	line, col := position(css, offset)
	return &ParseError{
		Kind:    kind,
		Message: kind.message(detail),
		Line:    line,
		Column:  col,
	}
}

func position(css string, offset int) (int, int) {
	before := css[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return strings.Count(before, "\n") + 1, utf8.RuneCountInString(before[lineStart:]) + 1
}

// IOError is returned when the inlined document cannot be written.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}

// IsIOError returns true if err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioerr *IOError
	return errors.As(err, &ioerr)
}
