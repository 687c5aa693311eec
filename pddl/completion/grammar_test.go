package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrammarPartition(t *testing.T) {
	grammars := map[string]Grammar{
		"domain":          domainGrammar,
		"problem":         problemGrammar,
		"action":          actionGrammar,
		"durative action": durativeActionGrammar,
	}

	for name, g := range grammars {
		t.Run(name, func(t *testing.T) {
			// before ++ [section] ++ after reassembles the ordered list.
			for _, section := range g.Ordered {
				var rebuilt []string
				rebuilt = append(rebuilt, SectionsBefore(section, g.Ordered)...)
				rebuilt = append(rebuilt, section)
				rebuilt = append(rebuilt, SectionsAfter(section, g.Ordered)...)
				assert.Equal(t, g.Ordered, rebuilt, "section %s", section)
			}

			// Ordered sections and structures are disjoint.
			for _, section := range g.Ordered {
				assert.False(t, g.isStructure(section), "section %s", section)
			}
		})
	}
}

func TestGrammarStructuresOnlyInDomain(t *testing.T) {
	assert.NotEmpty(t, domainGrammar.Structures)
	assert.Empty(t, problemGrammar.Structures)
	assert.Empty(t, actionGrammar.Structures)
	assert.Empty(t, durativeActionGrammar.Structures)
}
