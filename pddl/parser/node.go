package parser

import (
	"regexp"
	"strings"
)

// Node is one element of the syntax tree. Every token of the source becomes a
// node, whitespace and comments included, so any cursor offset lands on one.
// Bracket nodes additionally own the nodes up to their matching close bracket,
// and their span covers the whole form.
type Node struct {
	Kind     TokenKind
	Span     Span
	Token    *Token
	Parent   *Node
	Children []*Node
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

// Text returns the token text of the node; empty for the document root.
func (n *Node) Text() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// SectionName strips the bracket and whitespace off an OpenBracketOperator
// node, and the nothing off a Keyword node: "( :action" -> ":action".
func (n *Node) SectionName() string {
	text := n.Text()
	if n.Kind == TokenOpenBracketOperator {
		text = strings.TrimSpace(strings.TrimPrefix(text, "("))
	}
	return text
}

func (n *Node) ChildrenOfKind(kind TokenKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// SiblingsBefore returns n's children of the given kind that end at or before
// the start of ref, in source order. ref is typically a descendant of n, not
// necessarily a direct child.
func (n *Node) SiblingsBefore(kind TokenKind, ref *Node) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child == ref {
			continue
		}
		if child.Kind == kind && child.Span.End.Offset <= ref.Span.Start.Offset {
			result = append(result, child)
		}
	}
	return result
}

// SiblingsAfter returns n's children of the given kind that start at or after
// the end of ref, in source order.
func (n *Node) SiblingsAfter(kind TokenKind, ref *Node) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child == ref {
			continue
		}
		if child.Kind == kind && child.Span.Start.Offset >= ref.Span.End.Offset {
			result = append(result, child)
		}
	}
	return result
}

// FindAncestor walks from the node outward (the node itself included) and
// returns the first ancestor of the given kind whose text matches pattern.
func (n *Node) FindAncestor(kind TokenKind, pattern *regexp.Regexp) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind && pattern.MatchString(cur.Text()) {
			return cur
		}
	}
	return nil
}

// AncestorOfKind returns the nearest ancestor (the node itself included) of
// the given kind.
func (n *Node) AncestorOfKind(kind TokenKind) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return cur
		}
	}
	return nil
}

// EnclosingBracket returns the nearest bracket form containing the node, or
// the document root when the node is at top level.
func (n *Node) EnclosingBracket() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		switch cur.Kind {
		case TokenOpenBracket, TokenOpenBracketOperator, TokenDocument:
			return cur
		}
	}
	return nil
}

// Expand widens a whitespace, comment, or close-bracket node to its parent
// form. Cursor positions usually sit in the whitespace between tokens; the
// parent bracket is the scope those positions belong to.
func (n *Node) Expand() *Node {
	switch n.Kind {
	case TokenWhitespace, TokenComment, TokenCloseBracket:
		if n.Parent != nil {
			return n.Parent
		}
	}
	return n
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showPositions bool) string {
	var b strings.Builder
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
	b.WriteString(n.Kind.String())
	if showPositions {
		b.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	if n.Token != nil && n.Kind != TokenWhitespace {
		b.WriteString(" " + n.Token.Literal)
	}
	b.WriteString("\n")

	for _, child := range n.Children {
		b.WriteString(child.stringIndent(indent+1, showPositions))
	}
	return b.String()
}
