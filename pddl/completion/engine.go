package completion

import (
	"context"
	"fmt"
	"strings"

	"github.com/pddls/pddls/pddl"
	"github.com/pddls/pddls/pddl/parser"
)

// TriggerKind mirrors the LSP completion trigger kinds.
type TriggerKind int

const (
	TriggerInvoked          TriggerKind = 1
	TriggerCharacter        TriggerKind = 2
	TriggerIncompleteResult TriggerKind = 3
)

// Request is one completion request against an immutable tree snapshot.
// Offset is a byte offset into the document the tree was parsed from.
type Request struct {
	Tree             *parser.Tree
	Offset           int
	TriggerKind      TriggerKind
	TriggerCharacter string
	Domain           *pddl.DomainInfo
}

// Engine renders completion items. It holds only the static documentation
// table, built once at construction and read-only afterwards, so a single
// engine serves any number of documents concurrently.
type Engine struct {
	docs map[string]sectionDoc
}

func NewEngine() *Engine {
	return &Engine{docs: newSectionDocs()}
}

// Doc returns the documentation record for a section label, for reuse by
// hover. The second result is false for labels without a record.
func (e *Engine) Doc(label string) (detail, doc string, ok bool) {
	rec, ok := e.docs[label]
	return rec.Detail, rec.Doc, ok
}

// Complete computes the completion items for a request. Every failure path
// (cancelled context, no node at the offset, unclassifiable scope) returns an
// empty list; the engine never errors, because a completion engine that
// throws would disrupt unrelated editing.
func (e *Engine) Complete(ctx context.Context, req Request) []Item {
	if ctx != nil && ctx.Err() != nil {
		return nil
	}
	if req.Tree == nil {
		return nil
	}
	node := req.Tree.NodeAt(req.Offset)
	if node == nil {
		return nil
	}

	trigger := ""
	var triggerSpan *ReplaceRange
	if req.TriggerKind == TriggerCharacter {
		trigger = req.TriggerCharacter
		if req.Offset > 0 && (trigger == "(" || trigger == ":" || trigger == "?") {
			triggerSpan = &ReplaceRange{Start: req.Offset - 1, End: req.Offset}
		}
	}

	scope := Classify(node)

	if node.Kind == parser.TokenVariable || trigger == "?" {
		switch scope.Kind {
		case ScopeActionCondition, ScopeActionEffect, ScopeDurativeCondition, ScopeDurativeEffect:
			return variableItems(scope.Construct, triggerSpan)
		}
	}

	switch scope.Kind {
	case ScopeBeforeDefine:
		return e.defineItems(trigger, triggerSpan)

	case ScopeDomainHeader:
		names := SupportedSectionsHere(scope.Reference, node, parser.TokenOpenBracketOperator, domainGrammar)
		return e.sectionItems(names, domainGrammar, "(", trigger, triggerSpan)

	case ScopeProblemHeader:
		names := SupportedSectionsHere(scope.Reference, node, parser.TokenOpenBracketOperator, problemGrammar)
		return e.sectionItems(names, problemGrammar, "(", trigger, triggerSpan)

	case ScopeRequirements:
		return e.requirementItems(scope.Reference, trigger, triggerSpan)

	case ScopeActionBody:
		names := SupportedSectionsHere(scope.Reference, node, parser.TokenKeyword, actionGrammar)
		return e.sectionItems(names, actionGrammar, "", trigger, triggerSpan)

	case ScopeDurativeActionBody:
		names := SupportedSectionsHere(scope.Reference, node, parser.TokenKeyword, durativeActionGrammar)
		return e.sectionItems(names, durativeActionGrammar, "", trigger, triggerSpan)

	case ScopeDurativeCondition:
		return e.sectionItems([]string{"at start", "at end", "over all", "and"}, Grammar{}, "(", trigger, triggerSpan)

	case ScopeDurativeEffect:
		return e.sectionItems([]string{"at start", "at end", "and"}, Grammar{}, "(", trigger, triggerSpan)

	case ScopeActionCondition:
		items := e.sectionItems(conditionOperators, Grammar{}, "(", trigger, triggerSpan)
		return appendDeclarationItems(items, req.Domain, false, trigger, triggerSpan)

	case ScopeActionEffect:
		items := e.sectionItems(effectOperators, Grammar{}, "(", trigger, triggerSpan)
		return appendDeclarationItems(items, req.Domain, true, trigger, triggerSpan)

	case ScopeParameters:
		return typeItems(req.Domain, scope.Reference, req.Offset)
	}

	return nil
}

// sectionItems renders each eligible name in grammar order.
func (e *Engine) sectionItems(names []string, g Grammar, prefix, trigger string, triggerSpan *ReplaceRange) []Item {
	var items []Item
	for _, name := range names {
		s := NewSuggestion(prefix, name, trigger)
		if s == nil {
			continue
		}
		kind := ItemSection
		switch {
		case g.isStructure(name):
			kind = ItemStructure
		case name == "at start" || name == "at end" || name == "over all":
			kind = ItemTimeQualifier
		case !strings.HasPrefix(name, ":") && prefix == "(" && len(g.Ordered) == 0:
			kind = ItemOperator
		}
		items = append(items, e.render(s, len(items), kind, trigger, triggerSpan))
	}
	return items
}

// defineItems offers the two top-level skeletons of an empty file.
func (e *Engine) defineItems(trigger string, triggerSpan *ReplaceRange) []Item {
	skeletons := []struct {
		label   string
		detail  string
		snippet string
	}{
		{
			label:   "domain",
			detail:  "Domain definition skeleton",
			snippet: "(define (domain ${1:name})\n\t(:requirements :strips)\n\t(:predicates\n\t\t(${2:predicate})\n\t)\n\t$0\n)",
		},
		{
			label:   "problem",
			detail:  "Problem definition skeleton",
			snippet: "(define (problem ${1:name}) (:domain ${2:domain})\n\t(:objects\n\t\t$3\n\t)\n\t(:init\n\t\t$4\n\t)\n\t(:goal (and $0))\n)",
		},
	}

	var items []Item
	for _, sk := range skeletons {
		s := NewSuggestion("(", sk.label, trigger)
		if s == nil {
			continue
		}
		item := Item{
			Label:      sk.label,
			Kind:       ItemSection,
			Detail:     sk.detail,
			InsertText: sk.snippet,
			Snippet:    true,
			FilterText: s.FilterText,
			SortText:   fmt.Sprintf("%04d", len(items)),
		}
		if trigger == "(" {
			item.Replace = triggerSpan
		}
		items = append(items, item)
	}
	return items
}

// requirementItems offers the requirement flags not already present in the
// (:requirements ...) form.
func (e *Engine) requirementItems(reference *parser.Node, trigger string, triggerSpan *ReplaceRange) []Item {
	present := map[string]bool{}
	for _, kw := range reference.ChildrenOfKind(parser.TokenKeyword) {
		present[kw.Text()] = true
	}

	var items []Item
	for _, flag := range requirementFlags {
		if present[flag] {
			continue
		}
		s := NewSuggestion("", flag, trigger)
		if s == nil {
			continue
		}
		item := e.render(s, len(items), ItemRequirement, trigger, triggerSpan)
		items = append(items, item)
	}
	return items
}

// variableItems offers the parameters of the enclosing action.
func variableItems(action *parser.Node, triggerSpan *ReplaceRange) []Item {
	var items []Item
	for _, param := range pddl.ActionParameters(action) {
		items = append(items, Item{
			Label:      param,
			Kind:       ItemVariable,
			Detail:     "Action parameter",
			InsertText: param,
			FilterText: param,
			SortText:   fmt.Sprintf("%04d", len(items)),
			Replace:    triggerSpan,
		})
	}
	return items
}

// typeItems offers type names, but only in the type position of a typed
// list, right after a dash.
func typeItems(domain *pddl.DomainInfo, bracket *parser.Node, offset int) []Item {
	if !afterDash(bracket, offset) {
		return nil
	}

	names := []string{"object"}
	if domain != nil {
		for _, t := range domain.Types {
			if t != "object" {
				names = append(names, t)
			}
		}
	}

	var items []Item
	for _, name := range names {
		items = append(items, Item{
			Label:      name,
			Kind:       ItemTypeName,
			Detail:     "Type",
			InsertText: name,
			FilterText: name,
			SortText:   fmt.Sprintf("%04d", len(items)),
		})
	}
	return items
}

// afterDash reports whether the last meaningful token before the offset
// within the bracket is the dash of a typed list.
func afterDash(bracket *parser.Node, offset int) bool {
	var last *parser.Node
	for _, child := range bracket.Children {
		if child.Span.End.Offset > offset {
			break
		}
		switch child.Kind {
		case parser.TokenWhitespace, parser.TokenComment:
		default:
			last = child
		}
	}
	return last != nil && last.Kind == parser.TokenDash
}

// appendDeclarationItems adds the domain's declared predicates (and, in
// effect position, functions) after the operator items.
func appendDeclarationItems(items []Item, domain *pddl.DomainInfo, effects bool, trigger string, triggerSpan *ReplaceRange) []Item {
	if domain == nil || trigger == ":" {
		return items
	}

	add := func(decl pddl.Declaration, kind ItemKind, detail string) {
		item := Item{
			Label:      decl.Name,
			Kind:       kind,
			Detail:     detail,
			InsertText: declarationSnippet(decl),
			Snippet:    true,
			FilterText: "(" + decl.Name,
			SortText:   fmt.Sprintf("%04d", len(items)),
		}
		if trigger == "(" {
			item.Replace = triggerSpan
		}
		items = append(items, item)
	}

	for _, decl := range domain.Predicates {
		add(decl, ItemPredicate, declarationDetail(decl, "predicate"))
	}
	if effects {
		for _, decl := range domain.Functions {
			add(decl, ItemFunction, declarationDetail(decl, "function"))
		}
	}
	return items
}

// declarationSnippet renders "(name ${1:?a} ${2:?b})".
func declarationSnippet(decl pddl.Declaration) string {
	var b strings.Builder
	b.WriteString("(" + decl.Name)
	for i, param := range decl.Parameters {
		fmt.Fprintf(&b, " ${%d:%s}", i+1, param)
	}
	b.WriteString(")")
	return b.String()
}

func declarationDetail(decl pddl.Declaration, kind string) string {
	return fmt.Sprintf("%s (%s)", kind, strings.Join(decl.Parameters, " "))
}
