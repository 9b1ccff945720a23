package prereq

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
)

// Render returns the expression for a spell's prerequisite list. A nil list
// or one with no renderable requirements yields "none".
func Render(list *List) (string, error) {
	if list == nil {
		return entities.PrereqNone, nil
	}

	expr, err := renderList(list)
	if err != nil {
		return "", err
	}
	if expr == "" {
		return entities.PrereqNone, nil
	}
	return expr, nil
}

// renderList returns "" for a list without requirements. Such lists are
// dropped from their parent instead of rendering as "()".
func renderList(list *List) (string, error) {
	level, collapsed, err := mageryLevel(list)
	if err != nil {
		return "", err
	}
	if collapsed {
		return fmt.Sprintf("Magery %s+", level), nil
	}

	parts := make([]string, 0, len(list.Children))
	for _, child := range list.Children {
		part, err := renderPrereq(child)
		if err != nil {
			return "", err
		}
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	sep := " or "
	if list.All {
		sep = " and "
	}
	return strings.Join(parts, sep), nil
}

// mageryLevel reports whether every direct child of the list is a Magery
// advantage at the same level. Levels are only checked once the whole list
// is known to be Magery, so child order never changes the outcome.
func mageryLevel(list *List) (string, bool, error) {
	if len(list.Children) == 0 {
		return "", false, nil
	}

	advantages := make([]*AdvantagePrereq, 0, len(list.Children))
	for _, child := range list.Children {
		adv, ok := child.(*AdvantagePrereq)
		if !ok || !adv.isMagery() {
			return "", false, nil
		}
		advantages = append(advantages, adv)
	}

	level := ""
	for _, adv := range advantages {
		if adv.Level == nil || adv.Level.Value == "" {
			return "", false, errors.SchemaViolation("magery prerequisite has no level")
		}
		if level != "" && level != adv.Level.Value {
			return "", false, errors.SchemaViolationf("inconsistent magery levels %s and %s", level, adv.Level.Value).
				WithMeta("levels", []string{level, adv.Level.Value})
		}
		level = adv.Level.Value
	}

	return level, true, nil
}

func renderPrereq(p Prereq) (string, error) {
	switch p := p.(type) {
	case *List:
		inner, err := renderList(p)
		if err != nil || inner == "" {
			return "", err
		}
		return "(" + inner + ")", nil
	case *SpellPrereq:
		return renderSpell(p)
	case *AttributePrereq:
		return renderAttribute(p)
	case *AdvantagePrereq:
		return "advantage", nil
	case *SkillPrereq:
		return "skill", nil
	default:
		return "", errors.Internalf("unhandled prerequisite %T", p)
	}
}

func renderSpell(p *SpellPrereq) (string, error) {
	var text string

	switch {
	case p.Name != nil && p.College != nil:
		return "", errors.SchemaViolation("spell prerequisite has both name and college")
	case p.Name != nil:
		switch normalizeCompare(p.Name.Compare) {
		case CompareIs:
			text = p.Name.Value
		case CompareStartsWith:
			text = p.Name.Value + "*"
		case CompareContains:
			text = "*" + p.Name.Value + "*"
		case CompareIsAnything:
			text = "any spell"
		default:
			return "", unknownComparator(TagSpell, "name", p.Name.Compare)
		}
	case p.College != nil:
		switch normalizeCompare(p.College.Compare) {
		case CompareIs, CompareContains:
			text = p.College.Value + " college"
		default:
			return "", unknownComparator(TagSpell, "college", p.College.Compare)
		}
	default:
		return "", errors.SchemaViolation("spell prerequisite has neither name nor college")
	}

	if p.Quantity.Is(CompareAtLeast) {
		text = p.Quantity.Value + "+ " + text
	}
	return text, nil
}

func renderAttribute(p *AttributePrereq) (string, error) {
	if !isAffirmative(p.Has) {
		return "", errors.SchemaViolationf("attribute prerequisite has=%q is not supported", p.Has).
			WithMeta("tag", TagAttribute)
	}
	if normalizeCompare(p.Compare) != CompareAtLeast {
		return "", unknownComparator(TagAttribute, "compare", p.Compare)
	}
	return fmt.Sprintf("%s %s+", p.Which, p.Value), nil
}

func unknownComparator(tag, field, compare string) *errors.Error {
	return errors.SchemaViolationf("unknown comparator %q on %s %s", compare, tag, field).
		WithMeta("tag", tag).
		WithMeta("compare", compare)
}
