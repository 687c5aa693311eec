package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pddls/pddls/pddl/parser"
)

func classifyAt(t *testing.T, source string) Scope {
	t.Helper()
	offset := strings.Index(source, "|")
	require.GreaterOrEqual(t, offset, 0, "source needs a | marker")
	clean := strings.Replace(source, "|", "", 1)

	tree := parser.Parse([]byte(clean), "test.pddl")
	node := tree.NodeAt(offset)
	require.NotNil(t, node)
	return Classify(node)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   ScopeKind
	}{
		{"empty document", "| ", ScopeBeforeDefine},
		{"top level before define", " | (define (domain d))", ScopeBeforeDefine},
		{"domain header", "(define (domain d) | )", ScopeDomainHeader},
		{"problem header", "(define (problem p) | )", ScopeProblemHeader},
		{"half-typed section", "(define (domain d) (: | )", ScopeDomainHeader},
		{"requirements", "(define (domain d) (:requirements :strips | ))", ScopeRequirements},
		{"action body", "(define (domain d) (:action move | ))", ScopeActionBody},
		{"durative action body", "(define (domain d) (:durative-action move | ))", ScopeDurativeActionBody},
		{"parameters", "(define (domain d) (:action move :parameters ( | )))", ScopeParameters},
		{"precondition", "(define (domain d) (:action move :precondition (and | )))", ScopeActionCondition},
		{"effect", "(define (domain d) (:action move :effect (and | )))", ScopeActionEffect},
		{"durative condition", "(define (domain d) (:durative-action move :condition (and | )))", ScopeDurativeCondition},
		{"durative effect", "(define (domain d) (:durative-action move :effect (and | )))", ScopeDurativeEffect},
		{"inside time qualifier", "(define (domain d) (:durative-action move :condition (and (at start | ))))", ScopeActionCondition},
		{"effect inside time qualifier", "(define (domain d) (:durative-action move :effect (and (at end | ))))", ScopeActionEffect},
		{"inside predicate declaration", "(define (domain d) (:predicates (p ?x | )))", ScopeUnknown},
		{"inside either type", "(define (domain d) (:types (either a | )))", ScopeUnknown},
		{"inside init fact", "(define (problem p) (:domain d) (:init (f | )))", ScopeUnknown},
		{"inside goal condition", "(define (problem p) (:goal (and | )))", ScopeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := classifyAt(t, tt.source)
			assert.Equal(t, tt.want, scope.Kind, "got %v", scope.Kind)
		})
	}
}

func TestClassifyReferences(t *testing.T) {
	scope := classifyAt(t, "(define (domain d) (:requirements | ))")
	require.Equal(t, ScopeRequirements, scope.Kind)
	assert.Equal(t, ":requirements", scope.Reference.SectionName())

	scope = classifyAt(t, "(define (domain d) (:action move :precondition (and | )))")
	require.Equal(t, ScopeActionCondition, scope.Kind)
	assert.Equal(t, ":action", scope.Construct.SectionName())

	scope = classifyAt(t, "(define (domain d) | )")
	require.Equal(t, ScopeDomainHeader, scope.Kind)
	assert.Equal(t, "define", scope.Reference.SectionName())
}
