package langdef

import (
	"github.com/agelmarc/parser-generator/grammar"
)

// bnfGrammar is the bootstrap grammar: a grammar, built directly from the
// combinators, whose rules describe the grammar description notation itself.
// Building it through the compiler would be circular.
var bnfGrammar = newBnfGrammar()

func newBnfGrammar() *grammar.Grammar {
	g := grammar.New()

	// terminals
	terminalDelim := g.Terminal('\'', nil)
	statementTerm := g.Terminal(';', nil)
	equals := g.Terminal('=', nil)
	identChar := g.OneOfChars("ABCDEFGHIJKLMNOPQRSTUVWXYZ_", nil)
	lcChar := g.OneOfChars("abcdefghijklmnopqrstuvwxyz", nil)
	sep := g.Terminal(' ', nil)
	pipe := g.Terminal('|', nil)
	comma := g.Terminal(',', nil)
	char := g.AnyExcept("", nil)
	optBegin := g.Terminal('[', nil)
	optEnd := g.Terminal(']', nil)
	manyBegin := g.Terminal('{', nil)
	manyEnd := g.Terminal('}', nil)
	parBegin := g.Terminal('(', nil)
	parEnd := g.Terminal(')', nil)
	oneOfSep := g.Sequence([]grammar.SymbolID{sep, pipe, sep}, nil)
	whitespaceChar := g.OneOfChars(whitespaceChars, &grammar.Props{Name: "WHITESPACE_CHAR", Ignore: true})
	identWhitespace := g.SequenceOfChars("$WHITESPACE", &grammar.Props{Name: whitespaceIdNode, Raw: true})
	any := g.Terminal('*', &grammar.Props{Name: anyNode, Raw: true})

	whitespace := g.ZeroOrMore(whitespaceChar, &grammar.Props{Name: "WHITESPACE", Ignore: true})
	identifier := g.OneOrMore(identChar, &grammar.Props{Name: identifierNode, Raw: true})
	terminal := g.Sequence([]grammar.SymbolID{terminalDelim, char, terminalDelim}, &grammar.Props{Name: terminalNode, Raw: true})

	// The expression alternatives are mutually recursive with the composite
	// constructs below, so they start out empty and are filled in last.
	expression := g.OneOf(nil, &grammar.Props{Name: "EXPR", Ignore: true})
	exprSeq := g.OneOf(nil, &grammar.Props{Name: "EXPR_SEQ", Ignore: true})
	exprOneOf := g.OneOf(nil, &grammar.Props{Name: "EXPR_ONE_OF", Ignore: true})
	exprOpt := g.OneOf(nil, &grammar.Props{Name: "EXPR_OPT", Ignore: true})
	exprMany := g.OneOf(nil, &grammar.Props{Name: "EXPR_MANY", Ignore: true})

	// sequence
	seqItem := g.Sequence([]grammar.SymbolID{sep, exprSeq}, &grammar.Props{Name: "SEQ_ITEM", Ignore: true})
	seqItemOpt := g.ZeroOrMore(seqItem, &grammar.Props{Name: "SEQ_ITEM_OPT", Ignore: true})
	seq := g.Sequence([]grammar.SymbolID{exprSeq, sep, exprSeq, seqItemOpt}, &grammar.Props{Name: sequenceNode})
	seqPar := g.Sequence([]grammar.SymbolID{parBegin, whitespace, seq, whitespace, parEnd}, &grammar.Props{Name: "SEQ_PAR", Ignore: true})

	// ordered alternation
	oneOfItem := g.Sequence([]grammar.SymbolID{oneOfSep, exprOneOf}, &grammar.Props{Name: "ONE_OF_ITEM", Ignore: true})
	oneOfItemOpt := g.ZeroOrMore(oneOfItem, &grammar.Props{Name: "ONE_OF_ITEM_OPT", Ignore: true})
	oneOf := g.Sequence([]grammar.SymbolID{exprOneOf, oneOfSep, exprOneOf, oneOfItemOpt}, &grammar.Props{Name: oneOfNode})
	oneOfPar := g.Sequence([]grammar.SymbolID{parBegin, whitespace, oneOf, whitespace, parEnd}, &grammar.Props{Name: "ONE_OF_PAR", Ignore: true})

	// optional and repetition brackets
	opt := g.Sequence([]grammar.SymbolID{optBegin, whitespace, exprOpt, whitespace, optEnd}, &grammar.Props{Name: optionalNode})
	many := g.Sequence([]grammar.SymbolID{manyBegin, whitespace, exprMany, whitespace, manyEnd}, &grammar.Props{Name: manyNode})

	// statement
	flag := g.OneOrMore(lcChar, &grammar.Props{Name: flagNode, Raw: true})
	flagItem := g.Sequence([]grammar.SymbolID{comma, flag}, nil)
	flagItemOpt := g.ZeroOrMore(flagItem, nil)
	stmtInfo := g.Sequence([]grammar.SymbolID{parBegin, flag, flagItemOpt, parEnd}, &grammar.Props{Name: stmtInfoNode})
	stmtInfoOpt := g.Optional(stmtInfo, nil)
	statement := g.Sequence([]grammar.SymbolID{
		whitespace, identifier, stmtInfoOpt, whitespace, equals,
		whitespace, expression, whitespace, statementTerm, whitespace,
	}, &grammar.Props{Name: statementNode})

	root := g.OneOrMore(statement, &grammar.Props{Name: rootNode})

	// Member order is significant: composite constructs must be tried before
	// the simple ones, or IDENTIFIER would swallow the first name of every
	// sequence. Each alternative list omits the construct it is part of at
	// the same nesting level (grouping parentheses reintroduce it).
	appendMembers(g, expression, seq, oneOf, opt, many, terminal, identifier, any, identWhitespace)
	appendMembers(g, exprSeq, oneOfPar, opt, many, terminal, identifier, any, identWhitespace)
	appendMembers(g, exprOneOf, seqPar, opt, many, terminal, identifier, any, identWhitespace)
	appendMembers(g, exprOpt, seq, oneOf, many, terminal, identifier, any, identWhitespace)
	appendMembers(g, exprMany, seq, oneOf, opt, terminal, identifier, identWhitespace)

	g.SetRoot(root)
	return g
}

// appendMembers fills a known-collection symbol; the bootstrap grammar is a
// fixed constant, so a failure here is a defect in this file.
func appendMembers(g *grammar.Grammar, target grammar.SymbolID, members ...grammar.SymbolID) {
	for _, m := range members {
		if e := g.AppendMember(target, m); e != nil {
			panic(e)
		}
	}
}
