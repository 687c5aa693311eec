package completion

import (
	"github.com/pddls/pddls/pddl/parser"
)

// SupportedSectionsHere computes the legal remainder of a grammar table at a
// cursor position. reference anchors the sibling scan (the enclosing bracket
// or document), current marks where the scan splits into "already written
// before the cursor" and "already written after it", and kind restricts which
// sibling tokens count as sections.
//
// The rules, applied in order:
//
//   - a section written before the cursor rules out itself and everything
//     that must precede it;
//   - a section written after the cursor rules out itself and everything that
//     must follow it, since the insertion has to fit strictly before it;
//   - structures may be offered whenever everything after the cursor is also
//     a structure;
//   - once any structure precedes the cursor the ordered-section era is over
//     for this scope, and only structures remain.
//
// A sibling whose name belongs to neither list (half-typed input, stray
// text) narrows nothing. With no siblings at all, everything is legal.
func SupportedSectionsHere(reference, current *parser.Node, kind parser.TokenKind, g Grammar) []string {
	eligible := g.Ordered

	preceding := reference.SiblingsBefore(kind, current)
	following := reference.SiblingsAfter(kind, current)

	for _, sibling := range preceding {
		eligible = intersect(eligible, SectionsAfter(sibling.SectionName(), eligible))
	}

	for i := len(following) - 1; i >= 0; i-- {
		eligible = intersect(eligible, SectionsBefore(following[i].SectionName(), eligible))
	}

	structuresAhead := true
	for _, sibling := range following {
		if !g.isStructure(sibling.SectionName()) {
			structuresAhead = false
			break
		}
	}
	if structuresAhead {
		eligible = append(eligible[:len(eligible):len(eligible)], g.Structures...)
	}

	for _, sibling := range preceding {
		if g.isStructure(sibling.SectionName()) {
			return g.Structures
		}
	}

	return eligible
}

// intersect keeps the elements of a that are also in b, preserving a's order.
func intersect(a, b []string) []string {
	var result []string
	for _, x := range a {
		for _, y := range b {
			if x == y {
				result = append(result, x)
				break
			}
		}
	}
	return result
}
