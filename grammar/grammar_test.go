package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProps(t *testing.T) {
	g := New()
	id := g.Terminal('a', nil)

	s := g.Symbol(id)
	require.Equal(t, "", s.Props.Name)
	require.False(t, s.Props.Raw)
	require.True(t, s.Props.Ignore)
}

func TestExplicitProps(t *testing.T) {
	g := New()
	id := g.Terminal('a', &Props{Name: "A", Raw: true})

	s := g.Symbol(id)
	require.Equal(t, "A", s.Props.Name)
	require.True(t, s.Props.Raw)
	require.False(t, s.Props.Ignore)
}

func TestStableIdentifiers(t *testing.T) {
	g := New()
	a := g.Terminal('a', nil)
	b := g.Terminal('b', nil)

	require.NotEqual(t, a, b)
	require.Equal(t, 'a', g.Symbol(a).Char)
	require.Equal(t, 'b', g.Symbol(b).Char)

	// identifiers survive arena growth
	for i := 0; i < 100; i++ {
		g.Terminal('x', nil)
	}
	require.Equal(t, 'a', g.Symbol(a).Char)
}

func TestSequenceOfChars(t *testing.T) {
	g := New()
	id := g.SequenceOfChars("abc", nil)

	s := g.Symbol(id)
	require.Equal(t, Sequence, s.Kind)
	require.Len(t, s.Members, 3)
	for i, c := range "abc" {
		m := g.Symbol(s.Members[i])
		require.Equal(t, Terminal, m.Kind)
		require.Equal(t, c, m.Char)
	}
}

func TestOneOfChars(t *testing.T) {
	g := New()
	id := g.OneOfChars("xy", nil)

	s := g.Symbol(id)
	require.Equal(t, OneOf, s.Kind)
	require.Len(t, s.Members, 2)
}

func TestAppendMember(t *testing.T) {
	g := New()
	seq := g.Sequence(nil, nil)
	alt := g.OneOf(nil, nil)
	a := g.Terminal('a', nil)

	require.NoError(t, g.AppendMember(seq, a))
	require.NoError(t, g.AppendMember(alt, a))
	require.Len(t, g.Symbol(seq).Members, 1)
	require.Len(t, g.Symbol(alt).Members, 1)
}

func TestAppendMemberToNonCollection(t *testing.T) {
	g := New()
	a := g.Terminal('a', nil)
	b := g.Terminal('b', nil)

	e := g.AppendMember(a, b)
	require.Error(t, e)
}

func TestRoot(t *testing.T) {
	g := New()
	_, has := g.Root()
	require.False(t, has)

	id := g.Terminal('a', &Props{Name: "A"})
	g.SetRoot(id)
	root, has := g.Root()
	require.True(t, has)
	require.Equal(t, id, root)
}

func TestMembersCopied(t *testing.T) {
	g := New()
	a := g.Terminal('a', nil)
	members := []SymbolID{a}
	seq := g.Sequence(members, nil)

	members[0] = NoSymbol
	require.Equal(t, a, g.Symbol(seq).Members[0])
}
