package prereq

import (
	"strings"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/xmltree"
)

// Decode converts a prereq_list element into a List. Unknown child tags are
// schema violations; comparator values are checked when rendering.
func Decode(node *xmltree.Node) (*List, error) {
	if node == nil {
		return nil, errors.Internal("prerequisite node is nil")
	}
	if node.Tag() != TagList {
		return nil, errors.SchemaViolationf("expected %s, got %s", TagList, node.Tag()).
			WithMeta("tag", node.Tag())
	}

	all, _ := node.Attr("all")
	list := &List{
		All:      isAffirmative(all),
		Children: make([]Prereq, 0, len(node.Children)),
	}

	for i := range node.Children {
		child := &node.Children[i]

		var (
			p   Prereq
			err error
		)
		switch child.Tag() {
		case TagList:
			p, err = Decode(child)
		case TagSpell:
			p = decodeSpell(child)
		case TagAttribute:
			p = decodeAttribute(child)
		case TagAdvantage:
			p = decodeAdvantage(child)
		case TagSkill:
			p = &SkillPrereq{}
		default:
			return nil, errors.SchemaViolationf("unknown prerequisite type %s", child.Tag()).
				WithMeta("tag", child.Tag())
		}
		if err != nil {
			return nil, err
		}

		list.Children = append(list.Children, p)
	}

	return list, nil
}

func decodeSpell(node *xmltree.Node) *SpellPrereq {
	return &SpellPrereq{
		Name:     comparison(node.Child("name")),
		College:  comparison(node.Child("college")),
		Quantity: comparison(node.Child("quantity")),
	}
}

func decodeAttribute(node *xmltree.Node) *AttributePrereq {
	has, _ := node.Attr("has")
	which, _ := node.Attr("which")
	compare, _ := node.Attr("compare")

	return &AttributePrereq{
		Has:     has,
		Which:   which,
		Compare: compare,
		Value:   node.Value(),
	}
}

func decodeAdvantage(node *xmltree.Node) *AdvantagePrereq {
	return &AdvantagePrereq{
		Name:  comparison(node.Child("name")),
		Level: comparison(node.Child("level")),
	}
}

func comparison(node *xmltree.Node) *Comparison {
	if node == nil {
		return nil
	}
	compare, _ := node.Attr("compare")
	return &Comparison{
		Compare: compare,
		Value:   node.Value(),
	}
}

func isAffirmative(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case affirmative, "true":
		return true
	default:
		return false
	}
}
