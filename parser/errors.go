package parser

import (
	parsergen "github.com/agelmarc/parser-generator"
	"github.com/agelmarc/parser-generator/source"
)

// Parse failures, data-dependent and recoverable:
const (
	ParseFailedError = iota + parsergen.SyntaxErrors
	UnconsumedInputError
)

// Grammar configuration errors, fatal:
const (
	NoRootError = iota + parsergen.ParserErrors
	IgnoredRootError
)

func parseFailedError(pos source.Pos) *parsergen.Error {
	return parsergen.FormatErrorPos(pos, ParseFailedError, "parsing failed")
}

func unconsumedInputError(pos source.Pos) *parsergen.Error {
	return parsergen.FormatErrorPos(pos, UnconsumedInputError, "parsing stopped before end of input")
}

func noRootError() *parsergen.Error {
	return parsergen.FormatError(NoRootError, "grammar has no root rule")
}

func ignoredRootError() *parsergen.Error {
	return parsergen.FormatError(IgnoredRootError, "root rule is ignore-flagged and cannot produce a node")
}
