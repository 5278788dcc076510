package langdef

import (
	"github.com/agelmarc/parser-generator/grammar"
	"github.com/agelmarc/parser-generator/tree"
)

// Node type names produced by the bootstrap grammar and consumed by the
// builder.
const (
	rootNode         = "ROOT"
	statementNode    = "STATEMENT"
	stmtInfoNode     = "STMT_INFO"
	identifierNode   = "IDENTIFIER"
	terminalNode     = "TERMINAL"
	sequenceNode     = "SEQUENCE"
	oneOfNode        = "ONE_OF"
	optionalNode     = "OPTIONAL"
	manyNode         = "MANY"
	anyNode          = "ANY"
	whitespaceIdNode = "WHITESPACE_ID"
	flagNode         = "FLAG"
)

// Statement flags recognized in NAME(flag, ...) lists.
const (
	rawFlag    = "raw"
	ignoreFlag = "ignore"
	rootFlag   = "root"
)

// whitespaceChars are matched by the built-in $WHITESPACE reference and by
// the whitespace skipped between notation tokens.
const whitespaceChars = " \n\r\t"

// anyExceptChars is the fixed exclusion set of the * wildcard.
const anyExceptChars = "\"\\"

// stmtStatus tracks one declared rule name through compilation. All names
// are registered unbuilt before any expression is compiled; each is then
// built at most once, on first reference.
type stmtStatus struct {
	node        *tree.Node // the STATEMENT node, used until built
	raw, ignore bool
	built       bool
	id          grammar.SymbolID
}

// builder compiles the syntax tree of a grammar description into a grammar.
type builder struct {
	registry map[string]*stmtStatus
	g        *grammar.Grammar
}

func newBuilder() *builder {
	return &builder{registry: map[string]*stmtStatus{}, g: grammar.New()}
}

// build walks the ROOT node of a parsed grammar description and emits an
// equivalent grammar. Exactly the statement carrying the root flag becomes
// the grammar's entry rule; everything else is built on demand when
// referenced from it.
func (b *builder) build(root *tree.Node) (*grammar.Grammar, error) {
	if root.TypeName() != rootNode {
		return nil, unexpectedNodeError(root)
	}

	rootName := ""
	hasRoot := false
	for _, stmt := range root.Children() {
		name, e := stmtIdentifier(stmt)
		if e != nil {
			return nil, e
		}
		flags, e := stmtFlags(stmt)
		if e != nil {
			return nil, e
		}

		_, defined := b.registry[name]
		if defined {
			return nil, redefinedError(stmt, name)
		}

		b.registry[name] = &stmtStatus{
			node:   stmt,
			raw:    containsFlag(flags, rawFlag),
			ignore: containsFlag(flags, ignoreFlag),
		}
		if containsFlag(flags, rootFlag) {
			rootName = name
			hasRoot = true
		}
	}

	if !hasRoot {
		return nil, noRootStatementError()
	}

	id, e := b.buildIdentifier(rootName)
	if e != nil {
		return nil, e
	}

	b.g.SetRoot(id)
	return b.g, nil
}

// buildIdentifier resolves a rule reference by name. A rule already built
// (or currently being built, via the placeholder trick in buildCollection)
// resolves to its existing identifier, so forward references and mutual
// recursion terminate.
func (b *builder) buildIdentifier(name string) (grammar.SymbolID, error) {
	st, declared := b.registry[name]
	if !declared {
		return grammar.NoSymbol, undeclaredError(name)
	}
	if st.built {
		return st.id, nil
	}

	expr, e := stmtExpr(st.node)
	if e != nil {
		return grammar.NoSymbol, e
	}

	id, e := b.buildExpr(expr, name, st.raw, st.ignore)
	if e != nil {
		return grammar.NoSymbol, e
	}

	st.built = true
	st.id = id
	return id, nil
}

// buildExpr maps one expression node to a grammar primitive. name/raw/ignore
// are only set when the expression is the body of a named statement; nested
// sub-expressions are built anonymous with default properties.
func (b *builder) buildExpr(node *tree.Node, name string, raw, ignore bool) (grammar.SymbolID, error) {
	switch node.TypeName() {
	case sequenceNode:
		return b.buildCollection(node, name, raw, ignore, true)

	case oneOfNode:
		return b.buildCollection(node, name, raw, ignore, false)

	case terminalNode:
		return b.buildTerminal(node, name)

	case identifierNode:
		ref, e := rawValue(node)
		if e != nil {
			return grammar.NoSymbol, e
		}
		return b.buildIdentifier(ref)

	case optionalNode, manyNode:
		return b.buildUnary(node, name, raw, ignore)

	case anyNode:
		return b.g.AnyExcept(anyExceptChars, props(name, raw, ignore)), nil

	case whitespaceIdNode:
		return b.buildWhitespace(), nil
	}

	return grammar.NoSymbol, unexpectedNodeError(node)
}

// buildTerminal compiles a quoted single-character terminal. The raw capture
// includes the quotes, the character is between them. A named terminal
// statement always compiles raw so that the single matched character
// surfaces in the tree.
func (b *builder) buildTerminal(node *tree.Node, name string) (grammar.SymbolID, error) {
	text, e := rawValue(node)
	if e != nil {
		return grammar.NoSymbol, e
	}

	chars := []rune(text)
	if len(chars) != 3 {
		return grammar.NoSymbol, malformedNodeError(node)
	}

	if name == "" {
		return b.g.Terminal(chars[1], nil), nil
	}
	return b.g.Terminal(chars[1], &grammar.Props{Name: name, Raw: true}), nil
}

// buildUnary compiles [ expr ] and { expr } brackets.
func (b *builder) buildUnary(node *tree.Node, name string, raw, ignore bool) (grammar.SymbolID, error) {
	children := node.Children()
	if len(children) != 1 {
		return grammar.NoSymbol, malformedNodeError(node)
	}

	inner, e := b.buildExpr(children[0], "", false, true)
	if e != nil {
		return grammar.NoSymbol, e
	}

	if node.TypeName() == optionalNode {
		return b.g.Optional(inner, props(name, raw, ignore)), nil
	}
	return b.g.ZeroOrMore(inner, props(name, raw, ignore)), nil
}

// buildCollection compiles space-sequences and pipe-alternations. A named
// collection registers its identifier as built *before* its members are
// compiled: a member referring back to the collection (directly or through
// other rules) then reuses the in-progress identifier instead of recursing
// into the builder forever. The members land in the placeholder afterwards
// via AppendMember.
func (b *builder) buildCollection(node *tree.Node, name string, raw, ignore bool, isSeq bool) (grammar.SymbolID, error) {
	var id grammar.SymbolID
	if isSeq {
		id = b.g.Sequence(nil, props(name, raw, ignore))
	} else {
		id = b.g.OneOf(nil, props(name, raw, ignore))
	}

	if name != "" {
		st, declared := b.registry[name]
		if declared {
			st.built = true
			st.id = id
		} else {
			b.registry[name] = &stmtStatus{built: true, id: id}
		}
	}

	for _, child := range node.Children() {
		member, e := b.buildExpr(child, "", false, true)
		if e != nil {
			return grammar.NoSymbol, e
		}
		if e = b.g.AppendMember(id, member); e != nil {
			return grammar.NoSymbol, e
		}
	}

	return id, nil
}

// buildWhitespace compiles a $WHITESPACE reference: an inline ignored
// repetition of whitespace characters, freshly constructed at each use site.
func (b *builder) buildWhitespace() grammar.SymbolID {
	chars := b.g.OneOfChars(whitespaceChars, &grammar.Props{Name: "WHITESPACE_CHAR", Ignore: true})
	return b.g.ZeroOrMore(chars, &grammar.Props{Name: "WHITESPACE", Ignore: true})
}

func props(name string, raw, ignore bool) *grammar.Props {
	if name == "" {
		return nil
	}
	return &grammar.Props{Name: name, Raw: raw, Ignore: ignore}
}

func containsFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// A STATEMENT node has two or three children: IDENTIFIER, an optional
// STMT_INFO (spliced in by the bootstrap grammar), and the expression.

func stmtIdentifier(stmt *tree.Node) (string, error) {
	if stmt.TypeName() != statementNode || stmt.NumOfChildren() < 2 {
		return "", unexpectedNodeError(stmt)
	}
	return rawValue(tree.NthChild(stmt, 0))
}

func stmtFlags(stmt *tree.Node) ([]string, error) {
	if stmt.NumOfChildren() < 3 {
		return nil, nil
	}

	info := tree.NthChild(stmt, 1)
	if info.TypeName() != stmtInfoNode {
		return nil, unexpectedNodeError(info)
	}

	flags := make([]string, 0, info.NumOfChildren())
	for _, f := range info.Children() {
		text, e := rawValue(f)
		if e != nil {
			return nil, e
		}
		flags = append(flags, text)
	}
	return flags, nil
}

func stmtExpr(stmt *tree.Node) (*tree.Node, error) {
	if stmt.NumOfChildren() == 2 {
		return tree.NthChild(stmt, 1), nil
	}
	if stmt.NumOfChildren() == 3 {
		return tree.NthChild(stmt, 2), nil
	}
	return nil, unexpectedNodeError(stmt)
}

func rawValue(node *tree.Node) (string, error) {
	if node == nil || !node.IsRaw() {
		return "", malformedNodeError(node)
	}
	return node.Raw(), nil
}
