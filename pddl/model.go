// Package pddl models the declarations of a PDDL file: the names a
// completion provider can offer where a type, predicate, or variable is
// expected.
package pddl

import (
	"regexp"

	"github.com/pddls/pddls/pddl/parser"
)

// Declaration is a predicate or function declaration: a name plus its
// parameter variables in order.
type Declaration struct {
	Name       string
	Parameters []string
}

// DomainInfo holds the names declared by a domain (or problem) file.
// DomainRef is set only for problem files and names the domain they
// instantiate.
type DomainInfo struct {
	Name         string
	DomainRef    string
	Requirements []string
	Types        []string
	Constants    []string
	Objects      []string
	Predicates   []Declaration
	Functions    []Declaration
}

var (
	domainNamePattern   = regexp.MustCompile(`^\(\s*domain$`)
	problemNamePattern  = regexp.MustCompile(`^\(\s*problem$`)
	domainRefSection    = regexp.MustCompile(`^\(\s*:domain$`)
	requirementsSection = regexp.MustCompile(`^\(\s*:requirements$`)
	typesSection        = regexp.MustCompile(`^\(\s*:types$`)
	constantsSection    = regexp.MustCompile(`^\(\s*:constants$`)
	objectsSection      = regexp.MustCompile(`^\(\s*:objects$`)
	predicatesSection   = regexp.MustCompile(`^\(\s*:predicates$`)
	functionsSection    = regexp.MustCompile(`^\(\s*:functions$`)
)

// InfoFromTree collects the declared names of a parsed file. It tolerates any
// amount of missing or malformed structure; absent sections simply leave
// their fields empty.
func InfoFromTree(tree *parser.Tree) *DomainInfo {
	info := &DomainInfo{}
	if tree == nil || tree.Root == nil {
		return info
	}

	for _, top := range tree.Root.ChildrenOfKind(parser.TokenOpenBracketOperator) {
		for _, section := range top.ChildrenOfKind(parser.TokenOpenBracketOperator) {
			switch {
			case domainNamePattern.MatchString(section.Text()),
				problemNamePattern.MatchString(section.Text()):
				info.Name = firstIdentifier(section)
			case domainRefSection.MatchString(section.Text()):
				info.DomainRef = firstIdentifier(section)
			case requirementsSection.MatchString(section.Text()):
				for _, kw := range section.ChildrenOfKind(parser.TokenKeyword) {
					info.Requirements = append(info.Requirements, kw.Text())
				}
			case typesSection.MatchString(section.Text()):
				info.Types = appendUnique(info.Types, identifiers(section)...)
			case constantsSection.MatchString(section.Text()):
				info.Constants = typedListNames(section)
			case objectsSection.MatchString(section.Text()):
				info.Objects = typedListNames(section)
			case predicatesSection.MatchString(section.Text()):
				info.Predicates = declarations(section)
			case functionsSection.MatchString(section.Text()):
				info.Functions = declarations(section)
			}
		}
	}

	return info
}

// ActionParameters returns the variables declared in the :parameters list of
// an action form, in order without duplicates.
func ActionParameters(action *parser.Node) []string {
	if action == nil {
		return nil
	}
	var params []string
	afterParameters := false
	for _, child := range action.Children {
		switch child.Kind {
		case parser.TokenKeyword:
			afterParameters = child.Text() == ":parameters"
		case parser.TokenOpenBracket:
			if afterParameters {
				for _, v := range child.ChildrenOfKind(parser.TokenVariable) {
					params = appendUnique(params, v.Text())
				}
				return params
			}
		}
	}
	return params
}

// declarations reads the "(name ?a ?b)" forms of a :predicates or :functions
// section.
func declarations(section *parser.Node) []Declaration {
	var decls []Declaration
	for _, form := range section.ChildrenOfKind(parser.TokenOpenBracket) {
		name := firstIdentifier(form)
		if name == "" {
			continue
		}
		decl := Declaration{Name: name}
		for _, v := range form.ChildrenOfKind(parser.TokenVariable) {
			decl.Parameters = append(decl.Parameters, v.Text())
		}
		decls = append(decls, decl)
	}
	return decls
}

// typedListNames returns the object names of a typed list, skipping the type
// names that follow each dash: "truck1 truck2 - truck" yields truck1, truck2.
func typedListNames(section *parser.Node) []string {
	var names []string
	var pending []string
	afterDash := false
	for _, child := range section.Children {
		switch child.Kind {
		case parser.TokenIdentifier:
			if afterDash {
				afterDash = false
			} else {
				pending = append(pending, child.Text())
			}
		case parser.TokenDash:
			afterDash = true
			names = append(names, pending...)
			pending = nil
		}
	}
	names = append(names, pending...)
	return names
}

func firstIdentifier(n *parser.Node) string {
	for _, child := range n.ChildrenOfKind(parser.TokenIdentifier) {
		return child.Text()
	}
	return ""
}

func identifiers(n *parser.Node) []string {
	var result []string
	for _, child := range n.ChildrenOfKind(parser.TokenIdentifier) {
		result = append(result, child.Text())
	}
	return result
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range list {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, v)
		}
	}
	return list
}
