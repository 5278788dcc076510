package langdef

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agelmarc/parser-generator/grammar"
	"github.com/agelmarc/parser-generator/internal/test"
	"github.com/agelmarc/parser-generator/parser"
	"github.com/agelmarc/parser-generator/tree"
)

func compile(t *testing.T, text string) *grammar.Grammar {
	t.Helper()

	g, e := ParseString("grammar", text)
	require.NoError(t, e)
	return g
}

func parse(t *testing.T, g *grammar.Grammar, content string) *tree.Node {
	t.Helper()

	n, e := parser.ParseString(g, "input", content)
	require.NoError(t, e)
	return n
}

func TestTerminalSequence(t *testing.T) {
	g := compile(t, "ROOT(root) = 'a' 'b' 'c';")

	n := parse(t, g, "abc")
	require.Equal(t, "ROOT", n.TypeName())
	require.Nil(t, n.Children())
	require.Equal(t, "1:1 to 1:4", n.Span().String())

	_, e := parser.ParseString(g, "input", "abx")
	test.ExpectErrorCode(t, parser.ParseFailedError, e)
	test.ExpectErrorPos(t, 1, 3, e)
}

func TestRepeatedAlternation(t *testing.T) {
	g := compile(t, "ROOT(root) = { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' };")

	n := parse(t, g, "1234")
	require.Equal(t, "1:1 to 1:5", n.Span().String())

	n = parse(t, g, "")
	require.Equal(t, "1:1 to 1:1", n.Span().String())
}

func TestNestedRules(t *testing.T) {
	g := compile(t, `
PLUS(root) = EXPR_PLUS '+' EXPR_PLUS;
EXPR_PLUS = NUMBER;
NUMBER(raw) = DIGIT { DIGIT };
DIGIT = '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9';
`)

	n := parse(t, g, "3+4")
	require.Equal(t, "PLUS", n.TypeName())

	numbers := tree.Find(n, tree.IsA("NUMBER"), false)
	require.Len(t, numbers, 2)
	require.Equal(t, "3", numbers[0].Raw())
	require.Equal(t, "4", numbers[1].Raw())
}

func TestNoRootStatement(t *testing.T) {
	_, e := ParseString("grammar", "A = 'a'; B = 'b';")
	test.ExpectErrorCode(t, NoRootStatementError, e)
}

func TestUndeclaredReference(t *testing.T) {
	_, e := ParseString("grammar", "ROOT(root) = MISSING;")
	test.ExpectErrorCode(t, UndeclaredNameError, e)
}

func TestRedefinedRule(t *testing.T) {
	_, e := ParseString("grammar", "ROOT(root) = 'a'; ROOT = 'b';")
	test.ExpectErrorCode(t, RedefinedNameError, e)
}

// A statement whose body is a bare terminal captures raw even without the
// raw flag.
func TestNamedTerminalIsRaw(t *testing.T) {
	g := compile(t, "ROOT(root) = LETTER { LETTER }; LETTER = 'a';")

	n := parse(t, g, "aa")
	letters := n.Children()
	require.Len(t, letters, 2)
	for _, l := range letters {
		require.Equal(t, "LETTER", l.TypeName())
		require.True(t, l.IsRaw())
		require.Equal(t, "a", l.Raw())
	}
}

// Statements may be declared in any order; references resolve after the
// whole description is registered.
func TestForwardReference(t *testing.T) {
	g := compile(t, "ROOT(root) = A B; A = 'a'; B = 'b';")
	n := parse(t, g, "ab")
	require.Equal(t, 2, n.NumOfChildren())
}

// A rule may refer to itself through its own body; compilation reuses the
// in-progress identifier instead of recursing forever.
func TestSelfRecursion(t *testing.T) {
	g := compile(t, "ROOT(root) = 'a' [ ROOT ];")

	n := parse(t, g, "aaa")
	depth := 0
	for n != nil {
		require.Equal(t, "ROOT", n.TypeName())
		depth++
		n = tree.NthChild(n, 0)
	}
	require.Equal(t, 3, depth)
}

func TestMutualRecursion(t *testing.T) {
	g := compile(t, `
A(root) = 'a' [ B ];
B = 'b' [ A ];
`)

	parse(t, g, "abab")
	parse(t, g, "a")

	_, e := parser.ParseString(g, "input", "abb")
	test.ExpectErrorCode(t, parser.UnconsumedInputError, e)
}

func TestIgnoreFlag(t *testing.T) {
	g := compile(t, `
ROOT(root) = A PAIR;
PAIR(ignore) = X Y;
A = 'a';
X = 'x';
Y = 'y';
`)

	n := parse(t, g, "axy")
	names := make([]string, 0, n.NumOfChildren())
	for _, c := range n.Children() {
		names = append(names, c.TypeName())
	}
	require.Equal(t, []string{"A", "X", "Y"}, names)
}

func TestRawFlag(t *testing.T) {
	g := compile(t, `
ROOT(root,raw) = A B;
A = 'a';
B = 'b';
`)

	n := parse(t, g, "ab")
	require.True(t, n.IsRaw())
	require.Equal(t, "ab", n.Raw())
	require.Nil(t, n.Children())
}

// The * wildcard matches any character except a double quote or a backslash.
func TestWildcard(t *testing.T) {
	g := compile(t, `
ROOT(root,raw) = '"' { CHAR } '"';
CHAR = *;
`)

	n := parse(t, g, `"hi!"`)
	require.Equal(t, `"hi!"`, n.Raw())

	_, e := parser.ParseString(g, "input", `"a\b"`)
	test.ExpectErrorCode(t, parser.ParseFailedError, e)
}

func TestWhitespaceReference(t *testing.T) {
	g := compile(t, "ROOT(root) = 'a' $WHITESPACE 'b';")

	parse(t, g, "ab")
	parse(t, g, "a \n\t b")

	_, e := parser.ParseString(g, "input", "a x b")
	test.ExpectErrorCode(t, parser.ParseFailedError, e)
}

func TestGrouping(t *testing.T) {
	g := compile(t, "ROOT(root) = ( ( 'a' 'b' ) | ( 'c' 'd' ) ) 'e';")

	parse(t, g, "abe")
	parse(t, g, "cde")

	_, e := parser.ParseString(g, "input", "ade")
	test.ExpectErrorCode(t, parser.ParseFailedError, e)
}

func TestOptionalBrackets(t *testing.T) {
	g := compile(t, "ROOT(root) = [ '-' ] '1';")

	parse(t, g, "1")
	parse(t, g, "-1")
}

// Rules not reachable from the root are never compiled, so only the
// reachable part of a description must be well formed.
func TestUnreachableRuleSkipped(t *testing.T) {
	g := compile(t, `
ROOT(root) = 'a';
DANGLING = MISSING;
`)
	parse(t, g, "a")
}

func TestDescriptionSyntaxError(t *testing.T) {
	_, e := ParseString("grammar", "ROOT(root) = 'a'")
	test.ExpectErrorCode(t, parser.ParseFailedError, e)
}
