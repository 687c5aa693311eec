package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pddls/pddls/pddl/parser"
)

// parseAt parses source with the "|" marker removed and returns the first
// top-level form plus the node under the marker.
func parseAt(t *testing.T, source string) (*parser.Node, *parser.Node) {
	t.Helper()
	offset := strings.Index(source, "|")
	require.GreaterOrEqual(t, offset, 0, "source needs a | marker")
	clean := strings.Replace(source, "|", "", 1)

	tree := parser.Parse([]byte(clean), "test.pddl")
	forms := tree.Root.ChildrenOfKind(parser.TokenOpenBracketOperator)
	require.NotEmpty(t, forms)

	node := tree.NodeAt(offset)
	require.NotNil(t, node)
	return forms[0], node
}

func TestSupportedSectionsDomain(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "empty domain offers everything after the name",
			source: "(define (domain d) | )",
			want: []string{
				":requirements", ":types", ":constants", ":predicates",
				":functions", ":constraints",
				":derived", ":action", ":durative-action", ":process", ":event",
			},
		},
		{
			name:   "between requirements and predicates",
			source: "(define (domain d) (:requirements :strips) | (:predicates (p)))",
			want:   []string{":types", ":constants"},
		},
		{
			name:   "before the first section",
			source: "(define (domain d) | (:types truck))",
			want:   []string{":requirements"},
		},
		{
			name:   "after a structure only structures remain",
			source: "(define (domain d) (:predicates (p)) (:action move) | )",
			want:   []string{":derived", ":action", ":durative-action", ":process", ":event"},
		},
		{
			name:   "between a section and a structure",
			source: "(define (domain d) (:types truck) | (:action move))",
			want: []string{
				":constants", ":predicates", ":functions", ":constraints",
				":derived", ":action", ":durative-action", ":process", ":event",
			},
		},
		{
			name:   "half-typed sibling narrows nothing",
			source: "(define (domain d) (:requirements :strips) (: | )",
			want: []string{
				":types", ":constants", ":predicates", ":functions", ":constraints",
				":derived", ":action", ":durative-action", ":process", ":event",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			define, node := parseAt(t, tt.source)
			got := SupportedSectionsHere(define, node, parser.TokenOpenBracketOperator, domainGrammar)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedSectionsProblem(t *testing.T) {
	source := "(define (problem p) (:domain d) | (:init (f)) (:goal (g)))"
	define, node := parseAt(t, source)

	got := SupportedSectionsHere(define, node, parser.TokenOpenBracketOperator, problemGrammar)
	assert.Equal(t, []string{":requirements", ":objects"}, got)
}

func TestSupportedSectionsActionBody(t *testing.T) {
	source := "(define (domain d) (:action move :parameters (?t) | :effect (and)))"
	tree := parser.Parse([]byte(strings.Replace(source, "|", "", 1)), "test.pddl")
	offset := strings.Index(source, "|")

	node := tree.NodeAt(offset)
	require.NotNil(t, node)
	define := tree.Root.ChildrenOfKind(parser.TokenOpenBracketOperator)[0]
	action := define.ChildrenOfKind(parser.TokenOpenBracketOperator)[1]

	got := SupportedSectionsHere(action, node, parser.TokenKeyword, actionGrammar)
	assert.Equal(t, []string{":precondition"}, got)
}

func TestSupportedSectionsNoSiblings(t *testing.T) {
	// With nothing written yet, everything is legal.
	tree := parser.Parse([]byte("   "), "test.pddl")
	node := tree.NodeAt(1)
	require.NotNil(t, node)

	got := SupportedSectionsHere(tree.Root, node, parser.TokenOpenBracketOperator, problemGrammar)
	assert.Equal(t, problemGrammar.Ordered, got)
}

func TestSupportedSectionsDoesNotMutateGrammar(t *testing.T) {
	source := "(define (domain d) (:constraints (and)) | )"
	define, node := parseAt(t, source)

	before := strings.Join(domainGrammar.Ordered, ",")
	SupportedSectionsHere(define, node, parser.TokenOpenBracketOperator, domainGrammar)
	assert.Equal(t, before, strings.Join(domainGrammar.Ordered, ","))
}

func TestSupportedSectionsIdempotent(t *testing.T) {
	// The calculator is pure: repeated calls over the same tree agree.
	source := "(define (domain d) (:requirements :strips) | (:predicates (p)))"
	define, node := parseAt(t, source)

	first := SupportedSectionsHere(define, node, parser.TokenOpenBracketOperator, domainGrammar)
	second := SupportedSectionsHere(define, node, parser.TokenOpenBracketOperator, domainGrammar)
	assert.Equal(t, first, second)
}

func TestSectionsBeforeAfter(t *testing.T) {
	ordered := []string{"a", "b", "c"}

	assert.Empty(t, SectionsBefore("a", ordered))
	assert.Equal(t, []string{"a", "b"}, SectionsBefore("c", ordered))
	assert.Equal(t, ordered, SectionsBefore("unknown", ordered))

	assert.Equal(t, []string{"b", "c"}, SectionsAfter("a", ordered))
	assert.Empty(t, SectionsAfter("c", ordered))
	assert.Equal(t, ordered, SectionsAfter("unknown", ordered))
}
