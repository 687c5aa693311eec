package parser

// Tree is the syntax tree over one document. It is a snapshot: the engine
// never mutates it after Parse, so concurrent readers need no locking.
type Tree struct {
	Root *Node
}

// Parse tokenizes the input and builds the bracket tree. It never fails:
// stray close brackets become leaves of the current form and unclosed forms
// extend to the end of input, since half-typed documents are the normal case.
func Parse(input []byte, file string) *Tree {
	lex := NewLexer(input, file)

	root := &Node{
		Kind: TokenDocument,
		Span: Span{Start: lex.Position()},
	}
	current := root

	for {
		tok := lex.NextToken()
		if tok.Kind == TokenEOF {
			break
		}
		t := tok
		node := &Node{Kind: t.Kind, Span: t.Span, Token: &t}

		switch t.Kind {
		case TokenOpenBracket, TokenOpenBracketOperator:
			current.AddChild(node)
			current = node
		case TokenCloseBracket:
			current.AddChild(node)
			if current.Parent != nil {
				current.Span.End = t.Span.End
				current = current.Parent
			}
		default:
			current.AddChild(node)
		}
	}

	// Unclosed forms (and the root) run to end of input.
	end := lex.Position()
	for cur := current; cur != nil; cur = cur.Parent {
		cur.Span.End = end
	}
	root.Span.End = end

	return &Tree{Root: root}
}

// NodeAt returns the deepest node whose span contains the given byte offset.
// On a boundary between two tokens the later one wins, so a cursor sitting
// right after a just-typed character lands on that character's token.
func (t *Tree) NodeAt(offset int) *Node {
	return nodeAt(t.Root, offset)
}

func nodeAt(n *Node, offset int) *Node {
	var match *Node
	for _, child := range n.Children {
		if child.Span.Start.Offset <= offset && offset <= child.Span.End.Offset {
			match = child
		}
	}
	if match != nil {
		return nodeAt(match, offset)
	}
	if n.Span.Start.Offset <= offset && offset <= n.Span.End.Offset {
		return n
	}
	return nil
}
