package completion

import (
	"fmt"
	"strings"
)

type ItemKind int

const (
	ItemSection ItemKind = iota
	ItemStructure
	ItemRequirement
	ItemOperator
	ItemTimeQualifier
	ItemVariable
	ItemTypeName
	ItemPredicate
	ItemFunction
)

// ReplaceRange is a byte-offset range of document text the accepted item
// replaces; when nil the insert text goes in at the cursor.
type ReplaceRange struct {
	Start int
	End   int
}

// Item is one rendered completion. InsertText uses LSP snippet syntax when
// Snippet is set. SortText encodes the grammar position of the item, so the
// editor shows sections in the order they are conventionally written rather
// than alphabetically.
type Item struct {
	Label         string
	Kind          ItemKind
	Detail        string
	Documentation string
	InsertText    string
	Snippet       bool
	FilterText    string
	SortText      string
	Replace       *ReplaceRange
}

// Suggestion is a candidate section name paired with the filter text the
// editor should fuzzy-match against what the user already typed.
type Suggestion struct {
	SectionName string
	FilterText  string
}

// NewSuggestion builds a suggestion, or nothing when the triggering character
// was a colon and the candidate cannot continue it.
func NewSuggestion(prefix, name, triggerCharacter string) *Suggestion {
	if triggerCharacter == ":" && !strings.HasPrefix(name, ":") {
		return nil
	}
	return &Suggestion{
		SectionName: name,
		FilterText:  prefix + name,
	}
}

// render turns a suggestion into an item. index is the candidate's position
// in the eligible-name sequence, trigger the character that fired the request
// ("" for plain invocation), and triggerSpan the range covering that
// character.
func (e *Engine) render(s *Suggestion, index int, kind ItemKind, trigger string, triggerSpan *ReplaceRange) Item {
	rec, ok := e.docs[s.SectionName]
	if !ok {
		// Generic keyword rendering for names without a record.
		rec = sectionDoc{Detail: "PDDL keyword", Snippet: s.SectionName}
	}

	insert := rec.Snippet
	item := Item{
		Label:         s.SectionName,
		Kind:          kind,
		Detail:        rec.Detail,
		Documentation: rec.Doc,
		Snippet:       true,
		FilterText:    s.FilterText,
		SortText:      fmt.Sprintf("%04d", index),
	}

	// The replace range covers the just-typed trigger character so the
	// inserted text does not duplicate it.
	switch trigger {
	case "(":
		if rec.BracketForm {
			item.Replace = triggerSpan
		}
	case ":":
		if rec.BracketForm {
			insert = strings.TrimPrefix(insert, "(")
		}
		if strings.HasPrefix(insert, ":") {
			item.Replace = triggerSpan
		}
	}

	item.InsertText = insert
	return item
}
