// Package catalogue reads the XML spell catalogue into an entities.Catalogue
package catalogue

import (
	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/names"
	"github.com/KirkDiggler/spellmerge/internal/prereq"
	"github.com/KirkDiggler/spellmerge/internal/xmltree"
)

const (
	tagSpell = "spell"

	// SupportedVersion is the only spell element version understood
	SupportedVersion = "2"

	attrVersion  = "version"
	attrVeryHard = "very_hard"
	veryHardYes  = "yes"
)

// extraFields are known spell children that are not carried into records
var extraFields = map[string]struct{}{
	"categories":    {},
	"points":        {},
	"power_source":  {},
	"resist":        {},
	"melee_weapon":  {},
	"ranged_weapon": {},
}

var knownFields = func() map[string]struct{} {
	known := make(map[string]struct{}, len(entities.RequiredFields)+len(entities.OptionalFields))
	for _, f := range entities.RequiredFields {
		known[f] = struct{}{}
	}
	for _, f := range entities.OptionalFields {
		known[f] = struct{}{}
	}
	return known
}()

// Extract builds a spell from one spell element
func Extract(node *xmltree.Node) (*entities.Spell, error) {
	if node.Tag() != tagSpell {
		return nil, errors.SchemaViolationf("unexpected element %s in catalogue", node.Tag()).
			WithMeta("tag", node.Tag())
	}

	version, _ := node.Attr(attrVersion)
	if version != SupportedVersion {
		return nil, errors.SchemaViolationf("unsupported spell version %q", version).
			WithMeta("version", version)
	}

	spell := &entities.Spell{}

	if veryHard, ok := node.Attr(attrVeryHard); ok {
		if veryHard != veryHardYes {
			return nil, errors.SchemaViolationf("unsupported very_hard value %q", veryHard).
				WithMeta("spell", nameOf(node))
		}
		spell.Difficulty = entities.DifficultyVeryHard
	}

	seen := make(map[string]bool, len(node.Children))
	var prereqNode *xmltree.Node

	for i := range node.Children {
		child := &node.Children[i]
		tag := child.Tag()

		if _, ok := knownFields[tag]; ok {
			if !seen[tag] {
				spell.SetField(tag, child.Value())
				seen[tag] = true
			}
			continue
		}
		if tag == prereq.TagList {
			if prereqNode == nil {
				prereqNode = child
			}
			continue
		}
		if _, ok := extraFields[tag]; ok {
			continue
		}

		return nil, errors.SchemaViolationf("unknown field %s on spell %q", tag, nameOf(node)).
			WithMeta("spell", nameOf(node)).
			WithMeta("field", tag)
	}

	for _, field := range entities.RequiredFields {
		if !seen[field] {
			return nil, errors.SchemaViolationf("no field %s for spell %q", field, nameOf(node)).
				WithMeta("spell", nameOf(node)).
				WithMeta("field", field)
		}
	}

	var list *prereq.List
	if prereqNode != nil {
		var err error
		list, err = prereq.Decode(prereqNode)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid prerequisites for spell %q", spell.Name)
		}
	}

	expr, err := prereq.Render(list)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid prerequisites for spell %q", spell.Name)
	}
	spell.Prereq = expr
	spell.Key = names.Key(spell.Name)

	return spell, nil
}

func nameOf(node *xmltree.Node) string {
	if name := node.Child(entities.FieldName); name != nil {
		return name.Value()
	}
	return ""
}
