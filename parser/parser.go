// Package parser applies a compiled grammar to input text using backtracking
// recursive descent, producing a syntax tree or the position where matching
// stopped.
//
// Limitations, both inherent to the design: a failed parse reports only the
// position where the chosen path stopped, not the furthest position reached
// across backtracked alternatives; and left-recursive rules (rules that refer
// to themselves before consuming any input) are not detected and recurse
// without bound at parse time.
package parser

import (
	"github.com/agelmarc/parser-generator/grammar"
	"github.com/agelmarc/parser-generator/source"
	"github.com/agelmarc/parser-generator/tree"
)

// ParseString parses content against g and returns the root tree node.
// name is used in error messages and node positions.
func ParseString(g *grammar.Grammar, name, content string) (*tree.Node, error) {
	return Parse(g, source.New(name, []byte(content)))
}

// ParseBytes parses content against g and returns the root tree node.
func ParseBytes(g *grammar.Grammar, name string, content []byte) (*tree.Node, error) {
	return Parse(g, source.New(name, content))
}

// Parse parses s against g. The input must match the root rule completely:
// there is no partial-success mode, unconsumed trailing input is a parse
// failure at the first unconsumed character.
//
// A missing root designation or an ignore-flagged root rule are grammar
// configuration errors (ParserErrors class), distinct from data-dependent
// parse failures (SyntaxErrors class).
func Parse(g *grammar.Grammar, s *source.Source) (*tree.Node, error) {
	root, has := g.Root()
	if !has {
		return nil, noRootError()
	}
	if g.Symbol(root).Props.Ignore {
		return nil, ignoredRootError()
	}

	pc := &parseContext{grammar: g, stream: source.NewCharStream(s)}
	pc.failPos = pc.stream.Pos()
	nodes, ok := pc.tryAdvance(root)
	if !ok {
		return nil, parseFailedError(pc.failPos)
	}
	if !pc.stream.Eof() {
		return nil, unconsumedInputError(pc.stream.Pos())
	}

	return nodes[0], nil
}

type parseContext struct {
	grammar *grammar.Grammar
	stream  *source.CharStream

	// failPos records where the last character-level match failed. Composite
	// rules rewind the stream when they fail, so by the time the root rule
	// reports failure the cursor is back at the start; failPos still points
	// at the spot where matching actually stopped along the executed path.
	failPos source.Pos
}

// tryAdvance attempts to match one symbol at the current stream position.
// On success it returns the nodes the symbol contributes to its parent: a
// single new node, or, for ignore-flagged symbols, the already-built child
// nodes to be spliced into the parent's list. On failure it returns ok=false
// with the stream restored to its position on entry, so backtracking is
// fully transparent to outer rules.
func (pc *parseContext) tryAdvance(id grammar.SymbolID) (contribution []*tree.Node, ok bool) {
	sym := pc.grammar.Symbol(id)
	start := pc.stream.Pos()

	collected, ok := pc.advance(sym)
	if !ok {
		pc.stream.Seek(start)
		return nil, false
	}

	if sym.Props.Ignore {
		return collected, true
	}

	chars, span := pc.stream.Since(start)
	name := sym.Props.Name
	if name == "" {
		name = sym.Kind.String()
	}
	if sym.Props.Raw {
		return []*tree.Node{tree.NewRawNode(name, span, string(chars))}, true
	}
	return []*tree.Node{tree.NewNode(name, span, collected)}, true
}

// advance runs the shape-specific matching step, returning the ordered child
// nodes collected from sub-symbols. It may leave the stream mid-consumption
// on failure; tryAdvance restores it.
func (pc *parseContext) advance(sym *grammar.Symbol) (collected []*tree.Node, ok bool) {
	switch sym.Kind {
	case grammar.Terminal:
		c, has := pc.stream.Peek()
		if !has || c != sym.Char {
			pc.failPos = pc.stream.Pos()
			return nil, false
		}
		pc.stream.Next()
		return nil, true

	case grammar.AnyExcept:
		c, has := pc.stream.Peek()
		if !has {
			pc.failPos = pc.stream.Pos()
			return nil, false
		}
		for _, excluded := range sym.Except {
			if c == excluded {
				pc.failPos = pc.stream.Pos()
				return nil, false
			}
		}
		pc.stream.Next()
		return nil, true

	case grammar.Sequence:
		for _, m := range sym.Members {
			nodes, mok := pc.tryAdvance(m)
			if !mok {
				return nil, false
			}
			collected = append(collected, nodes...)
		}
		return collected, true

	case grammar.OneOf:
		for _, m := range sym.Members {
			nodes, mok := pc.tryAdvance(m)
			if mok {
				return nodes, true
			}
		}
		return nil, false

	case grammar.Optional:
		nodes, mok := pc.tryAdvance(sym.Inner)
		if mok {
			return nodes, true
		}
		return nil, true

	case grammar.OneOrMore, grammar.ZeroOrMore:
		matched := false
		for {
			nodes, mok := pc.tryAdvance(sym.Inner)
			if !mok {
				break
			}
			matched = true
			collected = append(collected, nodes...)
		}
		if !matched && sym.Kind == grammar.OneOrMore {
			return nil, false
		}
		return collected, true
	}

	return nil, false
}
