// Package completion computes which PDDL section keywords, structure
// keywords, and declared names may legally be inserted at a cursor position,
// and renders them as ranked completion items.
package completion

// A grammar table pairs the ordered sections of a construct (individually
// optional, but fixed in relative order) with its structures (repeatable, in
// any order among themselves, but only after every ordered section). The two
// lists are disjoint and never change at runtime.
type Grammar struct {
	Ordered    []string
	Structures []string
}

var domainGrammar = Grammar{
	Ordered: []string{
		"domain",
		":requirements",
		":types",
		":constants",
		":predicates",
		":functions",
		":constraints",
	},
	Structures: []string{
		":derived",
		":action",
		":durative-action",
		":process",
		":event",
	},
}

var problemGrammar = Grammar{
	Ordered: []string{
		"problem",
		":domain",
		":requirements",
		":objects",
		":init",
		":goal",
		":constraints",
		":metric",
	},
}

var actionGrammar = Grammar{
	Ordered: []string{
		":parameters",
		":precondition",
		":effect",
	},
}

var durativeActionGrammar = Grammar{
	Ordered: []string{
		":parameters",
		":duration",
		":condition",
		":effect",
	},
}

// requirementFlags are the values accepted inside (:requirements ...).
var requirementFlags = []string{
	":strips",
	":typing",
	":negative-preconditions",
	":disjunctive-preconditions",
	":equality",
	":existential-preconditions",
	":universal-preconditions",
	":quantified-preconditions",
	":conditional-effects",
	":fluents",
	":numeric-fluents",
	":object-fluents",
	":adl",
	":durative-actions",
	":duration-inequalities",
	":continuous-effects",
	":derived-predicates",
	":timed-initial-literals",
	":preferences",
	":constraints",
	":action-costs",
}

func (g Grammar) isStructure(name string) bool {
	for _, s := range g.Structures {
		if s == name {
			return true
		}
	}
	return false
}

// SectionsBefore returns the prefix of ordered strictly before name. A name
// that is not an ordered section (a structure, or a half-typed token) yields
// the whole list.
func SectionsBefore(name string, ordered []string) []string {
	for i, section := range ordered {
		if section == name {
			return ordered[:i]
		}
	}
	return ordered
}

// SectionsAfter returns the suffix of ordered strictly after name, or the
// whole list when name is absent.
func SectionsAfter(name string, ordered []string) []string {
	for i, section := range ordered {
		if section == name {
			return ordered[i+1:]
		}
	}
	return ordered
}
