// Package grammar defines the grammar rule representation: an arena of
// symbols addressed by stable integer identifiers, and the combinator API
// used to build grammars by hand or by the langdef compiler.
//
// All cross-rule references are by identifier rather than by direct
// ownership, so mutually recursive and forward-referencing grammars need no
// cycle-aware memory management: a Sequence or OneOf can be created empty
// and filled in later with AppendMember.
package grammar

// SymbolID is a stable index into the arena of one Grammar. Identifiers are
// never reused or freed within a grammar's lifetime and are only meaningful
// for the Grammar that issued them.
type SymbolID int

// NoSymbol is the zero-ish SymbolID used before a root has been designated.
const NoSymbol SymbolID = -1

// Kind is the closed set of rule shapes. The interpreter dispatches
// exhaustively over it; new shapes require a deliberate extension.
type Kind int

const (
	Terminal Kind = iota
	AnyExcept
	Sequence
	OneOf
	Optional
	OneOrMore
	ZeroOrMore
)

// String returns the shape name, also used as the fallback type name for
// tree nodes produced by unnamed symbols.
func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case AnyExcept:
		return "AnyExcept"
	case Sequence:
		return "Sequence"
	case OneOf:
		return "OneOf"
	case Optional:
		return "Optional"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrMore:
		return "ZeroOrMore"
	}
	return "Unknown"
}

// Props are the presentation flags of one symbol. Builder calls take *Props
// where nil selects the default: unnamed, not raw, Ignore set. An ignored
// symbol never appears as a node in the output tree (its matched content is
// spliced into the parent's child list), so Ignore takes priority over Raw.
type Props struct {
	Name        string
	Raw, Ignore bool
}

func makeProps(p *Props) Props {
	if p == nil {
		return Props{Ignore: true}
	}
	return *p
}

// Symbol is one grammar rule: a shape plus presentation flags. Symbols are
// identified only by their arena index, never by value, since a rule may be
// mutated after creation via AppendMember.
type Symbol struct {
	Kind    Kind
	Char    rune       // Terminal only
	Except  []rune     // AnyExcept only
	Members []SymbolID // Sequence and OneOf, in match order
	Inner   SymbolID   // Optional, OneOrMore, ZeroOrMore
	Props   Props
}

// Grammar is the arena owning all symbols of one grammar, with one designated
// root rule. It is mutated only during construction; once parsing begins the
// symbols are read-only, so a single Grammar may serve concurrent parses.
type Grammar struct {
	symbols []Symbol
	root    SymbolID
}

func New() *Grammar {
	return &Grammar{root: NoSymbol}
}

func (g *Grammar) add(s Symbol) SymbolID {
	g.symbols = append(g.symbols, s)
	return SymbolID(len(g.symbols) - 1)
}

// Symbol returns the symbol for an identifier issued by this grammar.
// The pointer stays valid only until the next builder call.
func (g *Grammar) Symbol(id SymbolID) *Symbol {
	return &g.symbols[id]
}

// Len returns the number of symbols in the arena.
func (g *Grammar) Len() int {
	return len(g.symbols)
}

// SetRoot designates the grammar's entry rule.
func (g *Grammar) SetRoot(id SymbolID) {
	g.root = id
}

// Root returns the designated entry rule, if any.
func (g *Grammar) Root() (SymbolID, bool) {
	return g.root, g.root != NoSymbol
}

// Terminal adds a rule matching exactly the character c.
func (g *Grammar) Terminal(c rune, p *Props) SymbolID {
	return g.add(Symbol{Kind: Terminal, Char: c, Props: makeProps(p)})
}

// AnyExcept adds a rule matching any single character not in excluded.
func (g *Grammar) AnyExcept(excluded string, p *Props) SymbolID {
	return g.add(Symbol{Kind: AnyExcept, Except: []rune(excluded), Props: makeProps(p)})
}

// Sequence adds a rule matching all members in order. members may be empty
// and extended later with AppendMember.
func (g *Grammar) Sequence(members []SymbolID, p *Props) SymbolID {
	ms := make([]SymbolID, len(members))
	copy(ms, members)
	return g.add(Symbol{Kind: Sequence, Members: ms, Props: makeProps(p)})
}

// OneOf adds an ordered-choice rule: members are tried in declaration order
// and the first match wins. members may be empty and extended later with
// AppendMember.
func (g *Grammar) OneOf(members []SymbolID, p *Props) SymbolID {
	ms := make([]SymbolID, len(members))
	copy(ms, members)
	return g.add(Symbol{Kind: OneOf, Members: ms, Props: makeProps(p)})
}

// Optional adds a rule matching its member zero or one time; it never fails.
func (g *Grammar) Optional(member SymbolID, p *Props) SymbolID {
	return g.add(Symbol{Kind: Optional, Inner: member, Props: makeProps(p)})
}

// OneOrMore adds a rule matching its member as many times as possible,
// at least once.
func (g *Grammar) OneOrMore(member SymbolID, p *Props) SymbolID {
	return g.add(Symbol{Kind: OneOrMore, Inner: member, Props: makeProps(p)})
}

// ZeroOrMore adds a rule matching its member as many times as possible;
// it never fails.
func (g *Grammar) ZeroOrMore(member SymbolID, p *Props) SymbolID {
	return g.add(Symbol{Kind: ZeroOrMore, Inner: member, Props: makeProps(p)})
}

// SequenceOfChars is sugar for a Sequence of per-character Terminals
// matching text.
func (g *Grammar) SequenceOfChars(text string, p *Props) SymbolID {
	return g.add(Symbol{Kind: Sequence, Members: g.terminals(text), Props: makeProps(p)})
}

// OneOfChars is sugar for a OneOf of per-character Terminals, matching any
// single character of text.
func (g *Grammar) OneOfChars(text string, p *Props) SymbolID {
	return g.add(Symbol{Kind: OneOf, Members: g.terminals(text), Props: makeProps(p)})
}

func (g *Grammar) terminals(text string) []SymbolID {
	ids := make([]SymbolID, 0, len(text))
	for _, c := range text {
		ids = append(ids, g.Terminal(c, nil))
	}
	return ids
}

// AppendMember extends a Sequence or OneOf rule with one more member.
// Appending to any other shape is a grammar authoring defect and yields a
// fatal error.
func (g *Grammar) AppendMember(target, member SymbolID) error {
	s := &g.symbols[target]
	if s.Kind != Sequence && s.Kind != OneOf {
		return notACollectionError(s.Kind)
	}

	s.Members = append(s.Members, member)
	return nil
}
