package completion

// sectionDoc is the static per-label record behind a rendered item: hover
// detail, markdown documentation, and the snippet inserted when the item is
// accepted. Snippets for bracket forms include their brackets; rendering
// strips or re-adds the opening bracket depending on what triggered the
// request.
type sectionDoc struct {
	Detail      string
	Doc         string
	Snippet     string
	BracketForm bool
}

// newSectionDocs builds the immutable documentation table. It is constructed
// once per engine and only ever read afterwards, so engines may be shared
// across documents and goroutines.
func newSectionDocs() map[string]sectionDoc {
	docs := map[string]sectionDoc{
		"domain": {
			Detail:      "Domain name",
			Doc:         "Names the domain: `(domain transport)`. Must be the first element of a domain definition.",
			Snippet:     "(domain ${1:name})",
			BracketForm: true,
		},
		"problem": {
			Detail:      "Problem name",
			Doc:         "Names the problem: `(problem delivery-1)`. Must be the first element of a problem definition.",
			Snippet:     "(problem ${1:name})",
			BracketForm: true,
		},
		":domain": {
			Detail:      "Associated domain",
			Doc:         "Names the domain this problem instantiates: `(:domain transport)`.",
			Snippet:     "(:domain ${1:name})",
			BracketForm: true,
		},
		":requirements": {
			Detail:      "Requirement flags",
			Doc:         "Declares the PDDL feature set the file uses, e.g. `(:requirements :strips :typing)`. Planners may reject files whose requirements they do not support.",
			Snippet:     "(:requirements :strips$0)",
			BracketForm: true,
		},
		":types": {
			Detail:      "Type hierarchy",
			Doc:         "Declares object types, optionally with super-types:\n\n```\n(:types\n  truck location - object\n)\n```",
			Snippet:     "(:types\n\t$0\n)",
			BracketForm: true,
		},
		":constants": {
			Detail:      "Domain constants",
			Doc:         "Objects shared by every problem of this domain:\n\n```\n(:constants depot - location)\n```",
			Snippet:     "(:constants\n\t$0\n)",
			BracketForm: true,
		},
		":predicates": {
			Detail:      "Predicate declarations",
			Doc:         "Declares the predicates usable in conditions and effects:\n\n```\n(:predicates\n  (at ?t - truck ?l - location)\n)\n```",
			Snippet:     "(:predicates\n\t(${1:name} $0)\n)",
			BracketForm: true,
		},
		":functions": {
			Detail:      "Function declarations",
			Doc:         "Declares numeric fluents:\n\n```\n(:functions\n  (fuel-level ?t - truck)\n)\n```\n\nRequires `:numeric-fluents`.",
			Snippet:     "(:functions\n\t(${1:name} $0)\n)",
			BracketForm: true,
		},
		":constraints": {
			Detail:      "Constraints",
			Doc:         "State trajectory constraints the plan must respect. Requires `:constraints`.",
			Snippet:     "(:constraints\n\t(and $0)\n)",
			BracketForm: true,
		},
		":objects": {
			Detail:      "Problem objects",
			Doc:         "The objects of this problem instance:\n\n```\n(:objects truck1 - truck depot - location)\n```",
			Snippet:     "(:objects\n\t$0\n)",
			BracketForm: true,
		},
		":init": {
			Detail:      "Initial state",
			Doc:         "The facts (and fluent values) true at time zero:\n\n```\n(:init (at truck1 depot))\n```",
			Snippet:     "(:init\n\t$0\n)",
			BracketForm: true,
		},
		":goal": {
			Detail:      "Goal condition",
			Doc:         "The condition every valid plan must achieve:\n\n```\n(:goal (and (at truck1 depot)))\n```",
			Snippet:     "(:goal\n\t(and $0)\n)",
			BracketForm: true,
		},
		":metric": {
			Detail:      "Plan metric",
			Doc:         "The objective to optimize: `(:metric minimize (total-cost))`.",
			Snippet:     "(:metric ${1|minimize,maximize|} ($0))",
			BracketForm: true,
		},
		":derived": {
			Detail:      "Derived predicate",
			Doc:         "A predicate defined by a condition rather than by effects:\n\n```\n(:derived (reachable ?a ?b) (or ...))\n```\n\nRequires `:derived-predicates`.",
			Snippet:     "(:derived (${1:name} $2)\n\t$0\n)",
			BracketForm: true,
		},
		":action": {
			Detail:      "Action",
			Doc:         "An instantaneous action with parameters, precondition, and effect.",
			Snippet:     "(:action ${1:name}\n\t:parameters ($2)\n\t:precondition (and $3)\n\t:effect (and $0)\n)",
			BracketForm: true,
		},
		":durative-action": {
			Detail:      "Durative action",
			Doc:         "An action with duration; conditions and effects are qualified with `at start`, `at end`, or `over all`. Requires `:durative-actions`.",
			Snippet:     "(:durative-action ${1:name}\n\t:parameters ($2)\n\t:duration (= ?duration ${3:1})\n\t:condition (and $4)\n\t:effect (and $0)\n)",
			BracketForm: true,
		},
		":process": {
			Detail:      "Process",
			Doc:         "A continuous change active while its condition holds (PDDL+).",
			Snippet:     "(:process ${1:name}\n\t:parameters ($2)\n\t:precondition (and $3)\n\t:effect (and $0)\n)",
			BracketForm: true,
		},
		":event": {
			Detail:      "Event",
			Doc:         "An instantaneous change the world triggers when its condition holds (PDDL+).",
			Snippet:     "(:event ${1:name}\n\t:parameters ($2)\n\t:precondition (and $3)\n\t:effect (and $0)\n)",
			BracketForm: true,
		},

		":parameters": {
			Detail:  "Action parameters",
			Doc:     "Typed variables the action ranges over: `:parameters (?t - truck ?l - location)`.",
			Snippet: ":parameters ($0)",
		},
		":precondition": {
			Detail:  "Action precondition",
			Doc:     "The condition that must hold for the action to apply.",
			Snippet: ":precondition (and $0)",
		},
		":effect": {
			Detail:  "Action effect",
			Doc:     "The state change the action causes.",
			Snippet: ":effect (and $0)",
		},
		":duration": {
			Detail:  "Action duration",
			Doc:     "Constrains `?duration`, e.g. `:duration (= ?duration 10)`.",
			Snippet: ":duration (= ?duration $0)",
		},
		":condition": {
			Detail:  "Durative action condition",
			Doc:     "Temporally qualified condition: conjunction of `(at start ...)`, `(at end ...)`, `(over all ...)`.",
			Snippet: ":condition (and $0)",
		},

		"at start": {
			Detail:      "Condition/effect at the start of the action",
			Doc:         "Holds (or applies) at the moment the durative action starts.",
			Snippet:     "(at start $0)",
			BracketForm: true,
		},
		"at end": {
			Detail:      "Condition/effect at the end of the action",
			Doc:         "Holds (or applies) at the moment the durative action ends.",
			Snippet:     "(at end $0)",
			BracketForm: true,
		},
		"over all": {
			Detail:      "Invariant over the whole action",
			Doc:         "Must hold for the entire duration of the action.",
			Snippet:     "(over all $0)",
			BracketForm: true,
		},
	}

	for _, op := range conditionOperators {
		docs[op] = sectionDoc{
			Detail:      "Logical operator",
			Snippet:     "(" + op + " $0)",
			BracketForm: true,
		}
	}
	for _, op := range effectOperators {
		docs[op] = sectionDoc{
			Detail:      "Effect operator",
			Snippet:     "(" + op + " $0)",
			BracketForm: true,
		}
	}
	for _, flag := range requirementFlags {
		if _, ok := docs[flag]; ok {
			continue
		}
		docs[flag] = sectionDoc{
			Detail:  "Requirement flag",
			Snippet: flag,
		}
	}

	return docs
}

var conditionOperators = []string{"and", "or", "not", "imply", "forall", "exists"}

var effectOperators = []string{"and", "not", "when", "forall", "assign", "increase", "decrease", "scale-up", "scale-down"}
