package completion

import (
	"regexp"

	"github.com/pddls/pddls/pddl/parser"
)

// ScopeKind says which grammar applies at the cursor. The classifier
// re-derives it from the live tree on every request; it is never cached
// across edits.
type ScopeKind int

const (
	ScopeUnknown ScopeKind = iota
	ScopeBeforeDefine
	ScopeDomainHeader
	ScopeProblemHeader
	ScopeRequirements
	ScopeActionBody
	ScopeDurativeActionBody
	ScopeActionCondition
	ScopeActionEffect
	ScopeDurativeCondition
	ScopeDurativeEffect
	ScopeParameters
)

var scopeKindNames = map[ScopeKind]string{
	ScopeUnknown:            "Unknown",
	ScopeBeforeDefine:       "BeforeDefine",
	ScopeDomainHeader:       "DomainHeader",
	ScopeProblemHeader:      "ProblemHeader",
	ScopeRequirements:       "Requirements",
	ScopeActionBody:         "ActionBody",
	ScopeDurativeActionBody: "DurativeActionBody",
	ScopeActionCondition:    "ActionCondition",
	ScopeActionEffect:       "ActionEffect",
	ScopeDurativeCondition:  "DurativeCondition",
	ScopeDurativeEffect:     "DurativeEffect",
	ScopeParameters:         "Parameters",
}

func (k ScopeKind) String() string {
	if name, ok := scopeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Scope is the classifier result: the kind plus the nodes later stages scan.
// Reference anchors the sibling scan, Construct is the enclosing action or
// define form when one exists.
type Scope struct {
	Kind      ScopeKind
	Reference *parser.Node
	Construct *parser.Node
}

var (
	definePattern        = regexp.MustCompile(`^\(\s*define$`)
	domainPattern        = regexp.MustCompile(`^\(\s*domain$`)
	problemPattern       = regexp.MustCompile(`^\(\s*problem$`)
	requirementsPattern  = regexp.MustCompile(`^\(\s*:requirements$`)
	actionPattern        = regexp.MustCompile(`^\(\s*:action$`)
	durativePattern      = regexp.MustCompile(`^\(\s*:durative-action$`)
	timeQualifierPattern = regexp.MustCompile(`^\(\s*(at\s+start|at\s+end|over\s+all)$`)
)

// Classify decides which grammar table applies at the cursor node by walking
// ancestors innermost-out. Nothing is cached between calls.
func Classify(node *parser.Node) Scope {
	node = node.Expand()

	bracket := node.EnclosingBracket()
	if bracket == nil {
		return Scope{Kind: ScopeUnknown}
	}

	if req := node.FindAncestor(parser.TokenOpenBracketOperator, requirementsPattern); req != nil {
		return Scope{Kind: ScopeRequirements, Reference: req}
	}

	if action := node.FindAncestor(parser.TokenOpenBracketOperator, actionPattern); action != nil {
		return classifyActionBody(node, bracket, action, false)
	}
	if action := node.FindAncestor(parser.TokenOpenBracketOperator, durativePattern); action != nil {
		return classifyActionBody(node, bracket, action, true)
	}

	if define := node.FindAncestor(parser.TokenOpenBracketOperator, definePattern); define != nil {
		if node.FindAncestor(parser.TokenOpenBracketOperator, domainPattern) != nil ||
			node.FindAncestor(parser.TokenOpenBracketOperator, problemPattern) != nil {
			// Inside the (domain ...) or (problem ...) name form itself.
			return Scope{Kind: ScopeUnknown}
		}
		// Header sections apply only directly inside the define form: the
		// expanded node is the define itself, or a bracket the user is
		// opening as a direct child of it. A cursor nested deeper sits in
		// some section's body, where header keywords are illegal.
		if node != define && node.Parent != define {
			return Scope{Kind: ScopeUnknown}
		}
		kind := ScopeDomainHeader
		if hasChildMatching(define, problemPattern) {
			kind = ScopeProblemHeader
		}
		return Scope{Kind: kind, Reference: define, Construct: define}
	}

	if bracket.Kind == parser.TokenDocument {
		return Scope{Kind: ScopeBeforeDefine, Reference: bracket}
	}

	return Scope{Kind: ScopeUnknown}
}

// classifyActionBody distinguishes the body of an (:action ...) or
// (:durative-action ...) form from the condition/effect sub-forms nested in
// it, and from the parameter list.
func classifyActionBody(node, bracket, action *parser.Node, durative bool) Scope {
	if bracket == action {
		// Directly inside the action form: its keyword sections apply.
		kind := ScopeActionBody
		if durative {
			kind = ScopeDurativeActionBody
		}
		return Scope{Kind: kind, Reference: action, Construct: action}
	}

	// Inside some nested bracket. Which keyword section it hangs under is
	// decided by the last section keyword written before it.
	section := lastKeywordBefore(action, bracket)
	switch section {
	case ":parameters":
		return Scope{Kind: ScopeParameters, Reference: bracket, Construct: action}
	case ":precondition":
		return Scope{Kind: ScopeActionCondition, Reference: bracket, Construct: action}
	case ":condition":
		if durative && node.FindAncestor(parser.TokenOpenBracketOperator, timeQualifierPattern) == nil {
			return Scope{Kind: ScopeDurativeCondition, Reference: bracket, Construct: action}
		}
		return Scope{Kind: ScopeActionCondition, Reference: bracket, Construct: action}
	case ":effect":
		if durative && node.FindAncestor(parser.TokenOpenBracketOperator, timeQualifierPattern) == nil {
			return Scope{Kind: ScopeDurativeEffect, Reference: bracket, Construct: action}
		}
		return Scope{Kind: ScopeActionEffect, Reference: bracket, Construct: action}
	}

	return Scope{Kind: ScopeUnknown, Construct: action}
}

// lastKeywordBefore returns the name of the last keyword child of action that
// starts before the given node.
func lastKeywordBefore(action, node *parser.Node) string {
	// node may be nested several forms deep; compare against the direct
	// child of action that contains it.
	top := node
	for top.Parent != nil && top.Parent != action {
		top = top.Parent
	}

	keywords := action.SiblingsBefore(parser.TokenKeyword, top)
	if len(keywords) == 0 {
		return ""
	}
	return keywords[len(keywords)-1].Text()
}

func hasChildMatching(n *parser.Node, pattern *regexp.Regexp) bool {
	for _, child := range n.ChildrenOfKind(parser.TokenOpenBracketOperator) {
		if pattern.MatchString(child.Text()) {
			return true
		}
	}
	return false
}
