// Package source defines input buffers, cursor positions, and the character
// stream consumed by the parser.
package source

import (
	"fmt"
)

// Source is a named input buffer. The name is only used in positions and
// error messages.
type Source struct {
	name    string
	content []byte
}

func New(name string, content []byte) *Source {
	return &Source{name: name, content: content}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

// Pos is an immutable cursor coordinate: 1-based line and column plus the
// 0-based rune index. Line and column exist only for diagnostics, the index
// alone identifies the position within a source.
type Pos struct {
	src              *Source
	line, col, index int
}

// SourceName returns the name of the source this position points into,
// or an empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

// Index returns the 0-based rune offset.
func (p Pos) Index() int {
	return p.index
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// Range is a half-open span between two positions of the same source,
// End is never before Start.
type Range struct {
	Start, End Pos
}

func (r Range) String() string {
	return r.Start.String() + " to " + r.End.String()
}

// CharStream owns the decoded characters of one source plus a movable cursor.
// A stream is created once per parse call and mutated only by the interpreter
// executing that call; it is not safe for concurrent use.
type CharStream struct {
	src              *Source
	chars            []rune
	index, line, col int
}

func NewCharStream(s *Source) *CharStream {
	return &CharStream{src: s, chars: []rune(string(s.Content())), line: 1, col: 1}
}

// Pos returns the current cursor position. The result may later be passed to
// Seek or Since.
func (cs *CharStream) Pos() Pos {
	return Pos{cs.src, cs.line, cs.col, cs.index}
}

// Peek returns the character under the cursor without consuming it.
// At end of input ok is false.
func (cs *CharStream) Peek() (c rune, ok bool) {
	if cs.index >= len(cs.chars) {
		return 0, false
	}
	return cs.chars[cs.index], true
}

// Next consumes one character and updates line/column bookkeeping; a newline
// increments the line and resets the column to 1. At end of input ok is false
// and nothing changes.
func (cs *CharStream) Next() (c rune, ok bool) {
	if cs.index >= len(cs.chars) {
		return 0, false
	}

	c = cs.chars[cs.index]
	cs.index++
	cs.col++
	if c == '\n' {
		cs.line++
		cs.col = 1
	}
	return c, true
}

// Seek moves the cursor back (or forward) to a previously observed position.
// This is the backtracking primitive: the position carries its own line and
// column, so no rescanning is needed.
func (cs *CharStream) Seek(p Pos) {
	cs.index = p.index
	cs.line = p.line
	cs.col = p.col
}

// Since returns the characters consumed between p and the current cursor,
// and the corresponding range.
func (cs *CharStream) Since(p Pos) ([]rune, Range) {
	return cs.chars[p.index:cs.index], Range{p, cs.Pos()}
}

// Eof reports whether the whole input has been consumed.
func (cs *CharStream) Eof() bool {
	return cs.index >= len(cs.chars)
}

// Len returns the total number of characters in the stream.
func (cs *CharStream) Len() int {
	return len(cs.chars)
}
