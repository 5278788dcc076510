package langdef

import (
	parsergen "github.com/agelmarc/parser-generator"
	"github.com/agelmarc/parser-generator/tree"
)

// Error codes (error class LangDefErrors):
const (
	UnexpectedNodeError = iota + parsergen.LangDefErrors
	MalformedNodeError
	RedefinedNameError
	UndeclaredNameError
	NoRootStatementError
)

func unexpectedNodeError(n *tree.Node) *parsergen.Error {
	if n == nil {
		return parsergen.FormatError(UnexpectedNodeError, "unexpected empty node")
	}
	return parsergen.FormatErrorPos(n.Pos(), UnexpectedNodeError, "unexpected %s node", n.TypeName())
}

func malformedNodeError(n *tree.Node) *parsergen.Error {
	if n == nil {
		return parsergen.FormatError(MalformedNodeError, "malformed node")
	}
	return parsergen.FormatErrorPos(n.Pos(), MalformedNodeError, "malformed %s node", n.TypeName())
}

func redefinedError(n *tree.Node, name string) *parsergen.Error {
	return parsergen.FormatErrorPos(n.Pos(), RedefinedNameError, "rule %s redefined", name)
}

func undeclaredError(name string) *parsergen.Error {
	return parsergen.FormatError(UndeclaredNameError, "undeclared rule %s", name)
}

func noRootStatementError() *parsergen.Error {
	return parsergen.FormatError(NoRootStatementError, "no statement carries the root flag")
}
