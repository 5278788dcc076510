/*
Package parsergen is a grammar-driven, backtracking recursive-descent parsing library.

Consists of subpackages:
  - cmd/pgen: console utility checking grammar descriptions and printing parsed trees;
  - grammar: the symbol arena holding grammar rule definitions, plus the combinator API to build them;
  - langdef: compiles grammar descriptions (written in a BNF-like notation) to grammar definitions,
    using a bootstrap grammar built from the combinators themselves;
  - parser: the backtracking interpreter applying a grammar to input text;
  - source: input buffers, positions, and the character stream used by the parser;
  - tree: the syntax tree produced by a parse, with traversal helpers.

Typical usage is:

1. Describe a grammar in the BNF-like notation (see langdef docs), or build one
directly with the grammar package combinators.

2. Compile the description with langdef.ParseString.

3. Feed input text to parser.ParseString with the compiled grammar and walk the
resulting tree.
*/
package parsergen

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LangDefErrors = 1   // used by langdef
	GrammarErrors = 101 // used by grammar
	SyntaxErrors  = 201 // used by parser for data-dependent parse failures
	ParserErrors  = 301 // used by parser for grammar configuration errors
)

// Error is the error type shared by all parsergen subpackages.
type Error struct {
	// Code is one of the per-package error codes, always non-zero.
	Code int

	// Message is the full error text, with the source name and position
	// appended when known.
	Message string

	// SourceName names the input that caused the error, empty when the
	// error is not tied to an input.
	SourceName string

	// Line is the 1-based line in the input, 0 when unknown.
	Line int

	// Col is the 1-based column in the input, 0 when unknown.
	Col int
}

// SourcePos supplies the source name and position when constructing an error.
// source.Pos implements it.
type SourcePos interface {
	// SourceName returns the input name, empty when unknown.
	SourceName() string
	// Line returns the 1-based line, 0 when unknown.
	Line() int
	// Col returns the 1-based column, 0 when unknown.
	Col() int
}

// NewError creates an Error. A non-empty name with non-zero line and col is
// appended to the message.
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates an Error carrying no source position. params are
// applied to msg with fmt.Sprintf.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates an Error located at pos, which must not be nil.
// params are applied to msg with fmt.Sprintf.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
