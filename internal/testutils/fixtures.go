package testutils

import (
	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/names"
)

const (
	// TestSpellName is the default spell name for test fixtures
	TestSpellName = "Fireball"
)

// CreateTestSpell creates a catalogue spell with sensible defaults
func CreateTestSpell(name string) *entities.Spell {
	return &entities.Spell{
		Key:         names.Key(name),
		Name:        name,
		College:     "Fire",
		SpellClass:  "Missile",
		CastingCost: "Any",
		CastingTime: "1 to 3 sec",
		Duration:    "Instant",
		Reference:   "B247",
		Prereq:      "Magery 1+ and Create Fire and Shape Fire",
	}
}

// CreateTestCatalogue creates a catalogue holding a default spell per name
func CreateTestCatalogue(spellNames ...string) *entities.Catalogue {
	cat := entities.NewCatalogue()
	for _, name := range spellNames {
		cat.Put(CreateTestSpell(name))
	}
	return cat
}
