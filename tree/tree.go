// Package tree defines the syntax tree produced by a parse, along with
// functions to traverse and search it.
//
// A node is either a list node carrying ordered children, or a raw node
// carrying the literal matched text. This shape is the contract consumed by
// downstream tools (pretty-printers, evaluators, further compiler stages).
package tree

import (
	"encoding/json"

	"github.com/agelmarc/parser-generator/source"
)

// Node is one node of a syntax tree. Its type name is the display name of
// the grammar rule that produced it, or a shape-derived fallback if the rule
// is unnamed.
type Node struct {
	typeName string
	span     source.Range
	children []*Node
	raw      string
	isRaw    bool
}

// NewNode creates a list node holding children.
func NewNode(typeName string, span source.Range, children []*Node) *Node {
	return &Node{typeName: typeName, span: span, children: children}
}

// NewRawNode creates a raw node holding the literal matched text.
func NewRawNode(typeName string, span source.Range, raw string) *Node {
	return &Node{typeName: typeName, span: span, raw: raw, isRaw: true}
}

func (n *Node) TypeName() string {
	return n.typeName
}

// Span returns the input range this node was matched against.
func (n *Node) Span() source.Range {
	return n.span
}

// Pos returns the start of the node's span.
func (n *Node) Pos() source.Pos {
	return n.span.Start
}

// IsRaw reports whether the node carries raw text instead of children.
func (n *Node) IsRaw() bool {
	return n.isRaw
}

// Raw returns the literal matched text, or an empty string for list nodes.
func (n *Node) Raw() string {
	return n.raw
}

// Children returns the ordered child list; nil for raw nodes and for empty
// list nodes. The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) NumOfChildren() int {
	return len(n.children)
}

// NthChild returns the i-th child, counting from the end when i is negative
// (-1 is the last child). Returns nil when out of range or when n is raw.
func NthChild(n *Node, i int) *Node {
	if n == nil {
		return nil
	}
	if i < 0 {
		i += len(n.children)
	}
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// NodeVisitor is called for every visited node; returning false skips the
// node's children.
type NodeVisitor func(n *Node) (walkChildren bool)

// Walk visits n and its descendants depth-first, children in order.
func Walk(n *Node, visitor NodeVisitor) {
	if n == nil {
		return
	}

	if visitor(n) {
		for _, c := range n.children {
			Walk(c, visitor)
		}
	}
}

type NodeFilter func(n *Node) bool

// IsA matches nodes whose type name is one of names.
func IsA(names ...string) NodeFilter {
	return func(n *Node) bool {
		for _, name := range names {
			if n.typeName == name {
				return true
			}
		}
		return false
	}
}

// Find collects descendants of n (including n itself) accepted by f.
// With deep set the search continues below accepted nodes.
func Find(n *Node, f NodeFilter, deep bool) []*Node {
	res := make([]*Node, 0)
	Walk(n, func(nn *Node) bool {
		if f(nn) {
			res = append(res, nn)
			return deep
		}
		return true
	})
	return res
}

type nodeJSON struct {
	Type     string  `json:"type"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Raw      *string `json:"raw,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON encodes the node as {type, start, end, raw|children}.
func (n *Node) MarshalJSON() ([]byte, error) {
	nj := nodeJSON{
		Type:  n.typeName,
		Start: n.span.Start.String(),
		End:   n.span.End.String(),
	}
	if n.isRaw {
		nj.Raw = &n.raw
	} else {
		nj.Children = n.children
	}
	return json.Marshal(nj)
}
