package parser

import (
	"regexp"
	"strings"
	"testing"
)

func TestParseNesting(t *testing.T) {
	input := "(define (domain d)\n  (:action move))"
	tree := Parse([]byte(input), "test.pddl")

	root := tree.Root
	if root.Kind != TokenDocument {
		t.Fatalf("root Kind = %v, want %v", root.Kind, TokenDocument)
	}

	forms := root.ChildrenOfKind(TokenOpenBracketOperator)
	if len(forms) != 1 {
		t.Fatalf("top-level forms = %d, want 1", len(forms))
	}

	define := forms[0]
	if define.Text() != "(define" {
		t.Errorf("define Text = %q, want %q", define.Text(), "(define")
	}

	inner := define.ChildrenOfKind(TokenOpenBracketOperator)
	if len(inner) != 2 {
		t.Fatalf("inner forms = %d, want 2", len(inner))
	}
	if inner[0].SectionName() != "domain" {
		t.Errorf("SectionName = %q, want %q", inner[0].SectionName(), "domain")
	}
	if inner[1].SectionName() != ":action" {
		t.Errorf("SectionName = %q, want %q", inner[1].SectionName(), ":action")
	}

	if define.Span.End.Offset != len(input) {
		t.Errorf("define span end = %d, want %d", define.Span.End.Offset, len(input))
	}
}

func TestParseUnclosedForm(t *testing.T) {
	input := "(define (domain d"
	tree := Parse([]byte(input), "test.pddl")

	forms := tree.Root.ChildrenOfKind(TokenOpenBracketOperator)
	if len(forms) != 1 {
		t.Fatalf("top-level forms = %d, want 1", len(forms))
	}
	define := forms[0]
	if define.Span.End.Offset != len(input) {
		t.Errorf("define span end = %d, want %d", define.Span.End.Offset, len(input))
	}

	domain := define.ChildrenOfKind(TokenOpenBracketOperator)
	if len(domain) != 1 {
		t.Fatalf("nested forms = %d, want 1", len(domain))
	}
	if domain[0].Span.End.Offset != len(input) {
		t.Errorf("domain span end = %d, want %d", domain[0].Span.End.Offset, len(input))
	}
}

func TestParseStrayCloseBracket(t *testing.T) {
	input := ") (define (domain d))"
	tree := Parse([]byte(input), "test.pddl")

	if len(tree.Root.ChildrenOfKind(TokenCloseBracket)) != 1 {
		t.Errorf("stray close bracket not kept as a root child")
	}
	if len(tree.Root.ChildrenOfKind(TokenOpenBracketOperator)) != 1 {
		t.Errorf("define form lost after stray close bracket")
	}
}

func TestNodeAt(t *testing.T) {
	input := "(define (domain logistics))"
	tree := Parse([]byte(input), "test.pddl")

	node := tree.NodeAt(strings.Index(input, "logistics") + 1)
	if node.Kind != TokenIdentifier || node.Text() != "logistics" {
		t.Fatalf("node = %v %q, want Identifier %q", node.Kind, node.Text(), "logistics")
	}

	// On the boundary between two tokens the later one wins.
	node = tree.NodeAt(strings.Index(input, "logistics") + len("logistics"))
	if node.Kind != TokenCloseBracket {
		t.Errorf("boundary node = %v, want CloseBracket", node.Kind)
	}

	node = tree.NodeAt(len(input) + 10)
	if node != nil {
		t.Errorf("out of range node = %v, want nil", node)
	}
}

func TestSiblingsAround(t *testing.T) {
	input := "(define (domain d) (:requirements :strips) (:predicates (p)))"
	tree := Parse([]byte(input), "test.pddl")
	define := tree.Root.ChildrenOfKind(TokenOpenBracketOperator)[0]

	// Cursor in the whitespace between :requirements and :predicates.
	cursor := tree.NodeAt(strings.Index(input, " (:predicates"))
	if cursor.Kind != TokenWhitespace {
		t.Fatalf("cursor node = %v, want Whitespace", cursor.Kind)
	}

	before := define.SiblingsBefore(TokenOpenBracketOperator, cursor)
	if len(before) != 2 {
		t.Fatalf("before = %d siblings, want 2", len(before))
	}
	if before[1].SectionName() != ":requirements" {
		t.Errorf("before[1] = %q, want %q", before[1].SectionName(), ":requirements")
	}

	after := define.SiblingsAfter(TokenOpenBracketOperator, cursor)
	if len(after) != 1 {
		t.Fatalf("after = %d siblings, want 1", len(after))
	}
	if after[0].SectionName() != ":predicates" {
		t.Errorf("after[0] = %q, want %q", after[0].SectionName(), ":predicates")
	}
}

func TestFindAncestor(t *testing.T) {
	input := "(define (domain d) (:action move (and (p))))"
	tree := Parse([]byte(input), "test.pddl")

	node := tree.NodeAt(strings.Index(input, "p)"))
	actionPattern := regexp.MustCompile(`^\(\s*:action$`)

	action := node.FindAncestor(TokenOpenBracketOperator, actionPattern)
	if action == nil {
		t.Fatal("action ancestor not found")
	}
	if action.SectionName() != ":action" {
		t.Errorf("ancestor = %q, want %q", action.SectionName(), ":action")
	}

	missing := node.FindAncestor(TokenOpenBracketOperator, regexp.MustCompile(`^\(\s*:derived$`))
	if missing != nil {
		t.Errorf("unexpected ancestor %q", missing.Text())
	}
}

func TestExpand(t *testing.T) {
	input := "(define (domain d) )"
	tree := Parse([]byte(input), "test.pddl")

	ws := tree.NodeAt(strings.Index(input, ") )") + 1)
	if ws.Kind != TokenWhitespace {
		t.Fatalf("node = %v, want Whitespace", ws.Kind)
	}
	if got := ws.Expand(); got.Text() != "(define" {
		t.Errorf("Expand = %q, want %q", got.Text(), "(define")
	}

	ident := tree.NodeAt(strings.Index(input, "d)"))
	if got := ident.Expand(); got != ident {
		t.Errorf("Expand of identifier moved to %v", got.Kind)
	}
}
