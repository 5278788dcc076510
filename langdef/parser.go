package langdef

import (
	"github.com/agelmarc/parser-generator/grammar"
	"github.com/agelmarc/parser-generator/parser"
	"github.com/agelmarc/parser-generator/source"
)

// ParseString compiles a grammar description to a grammar.
// name is used in error messages.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes compiles a grammar description to a grammar.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse compiles a grammar description to a grammar. The description is first
// parsed with the bootstrap grammar, then the resulting tree is compiled
// statement by statement, starting from the root-flagged rule.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	root, e := parser.Parse(bnfGrammar, s)
	if e != nil {
		return nil, e
	}

	return newBuilder().build(root)
}
