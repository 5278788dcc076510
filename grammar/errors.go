package grammar

import (
	parsergen "github.com/agelmarc/parser-generator"
)

const (
	NotACollectionError = iota + parsergen.GrammarErrors
)

func notACollectionError(k Kind) *parsergen.Error {
	return parsergen.FormatError(NotACollectionError, "cannot append a member to a %s symbol", k)
}
