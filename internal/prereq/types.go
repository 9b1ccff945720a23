// Package prereq turns a catalogue prerequisite tree into a readable boolean
// expression such as "Magery 1+ and (Fireball or *Fire*)"
package prereq

import "strings"

// Element tags of a prerequisite tree
const (
	TagList      = "prereq_list"
	TagSpell     = "spell_prereq"
	TagAttribute = "attribute_prereq"
	TagAdvantage = "advantage_prereq"
	TagSkill     = "skill_prereq"
)

// Comparators. The catalogue writes them with underscores ("starts_with");
// both spellings are accepted.
const (
	CompareIs         = "is"
	CompareStartsWith = "starts with"
	CompareContains   = "contains"
	CompareIsAnything = "is anything"
	CompareAtLeast    = "at least"
)

const (
	affirmative = "yes"
	magery      = "magery"
)

// Prereq is one node of a prerequisite tree. The set of implementations is
// closed: *SpellPrereq, *AttributePrereq, *AdvantagePrereq, *SkillPrereq, *List.
type Prereq interface {
	isPrereq()
}

// Comparison is a value paired with the comparator applied to it
type Comparison struct {
	Compare string
	Value   string
}

// Is reports whether the comparator equals op, ignoring spelling differences
func (c *Comparison) Is(op string) bool {
	return c != nil && normalizeCompare(c.Compare) == op
}

// SpellPrereq requires knowing spells selected by name or by college
type SpellPrereq struct {
	Name     *Comparison
	College  *Comparison
	Quantity *Comparison
}

// AttributePrereq requires an attribute at or above a threshold
type AttributePrereq struct {
	Has     string
	Which   string
	Compare string
	Value   string
}

// AdvantagePrereq requires an advantage, optionally at a minimum level
type AdvantagePrereq struct {
	Name  *Comparison
	Level *Comparison
}

// SkillPrereq requires a skill. Only its presence is rendered.
type SkillPrereq struct{}

// List combines child requirements. All selects "and", otherwise "or".
type List struct {
	All      bool
	Children []Prereq
}

func (*SpellPrereq) isPrereq()     {}
func (*AttributePrereq) isPrereq() {}
func (*AdvantagePrereq) isPrereq() {}
func (*SkillPrereq) isPrereq()     {}
func (*List) isPrereq()            {}

// isMagery reports whether the advantage matches the Magery pattern: name
// compared with "is" against "magery", and a level compared with "at least"
// if a level is given at all
func (a *AdvantagePrereq) isMagery() bool {
	if !a.Name.Is(CompareIs) || !strings.EqualFold(strings.TrimSpace(a.Name.Value), magery) {
		return false
	}
	return a.Level == nil || a.Level.Is(CompareAtLeast)
}

func normalizeCompare(compare string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(compare)), "_", " ")
}
