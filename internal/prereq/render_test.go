package prereq_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/prereq"
	"github.com/KirkDiggler/spellmerge/internal/xmltree"
)

type RenderTestSuite struct {
	suite.Suite
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) render(doc string) (string, error) {
	node, err := xmltree.Parse(strings.NewReader(doc))
	s.Require().NoError(err)

	list, err := prereq.Decode(node)
	if err != nil {
		return "", err
	}
	return prereq.Render(list)
}

func spell(compare, name string) string {
	return `<spell_prereq has="yes"><name compare="` + compare + `">` + name + `</name></spell_prereq>`
}

func magery(level string) string {
	return `<advantage_prereq has="yes"><name compare="is">magery</name><level compare="at_least">` + level + `</level></advantage_prereq>`
}

func (s *RenderTestSuite) TestGeneralCase() {
	testCases := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "all joins with and",
			doc:      `<prereq_list all="yes">` + spell("is", "Fireball") + spell("is", "Icy Weapon") + `</prereq_list>`,
			expected: "Fireball and Icy Weapon",
		},
		{
			name:     "any joins with or",
			doc:      `<prereq_list all="no">` + spell("is", "Fireball") + spell("is", "Icy Weapon") + `</prereq_list>`,
			expected: "Fireball or Icy Weapon",
		},
		{
			name:     "missing all attribute joins with or",
			doc:      `<prereq_list>` + spell("is", "Fireball") + spell("is", "Icy Weapon") + `</prereq_list>`,
			expected: "Fireball or Icy Weapon",
		},
		{
			name:     "starts with",
			doc:      `<prereq_list all="yes">` + spell("starts_with", "Light") + `</prereq_list>`,
			expected: "Light*",
		},
		{
			name:     "starts with spaced spelling",
			doc:      `<prereq_list all="yes">` + spell("starts with", "Light") + `</prereq_list>`,
			expected: "Light*",
		},
		{
			name:     "contains",
			doc:      `<prereq_list all="yes">` + spell("contains", "Fire") + `</prereq_list>`,
			expected: "*Fire*",
		},
		{
			name:     "is anything",
			doc:      `<prereq_list all="yes">` + spell("is_anything", "") + `</prereq_list>`,
			expected: "any spell",
		},
		{
			name: "college with quantity",
			doc: `<prereq_list all="yes"><spell_prereq has="yes">` +
				`<college compare="contains">Fire</college><quantity compare="at_least">5</quantity>` +
				`</spell_prereq></prereq_list>`,
			expected: "5+ Fire college",
		},
		{
			name: "name with quantity",
			doc: `<prereq_list all="yes"><spell_prereq has="yes">` +
				`<name compare="is_anything"/><quantity compare="at_least">10</quantity>` +
				`</spell_prereq></prereq_list>`,
			expected: "10+ any spell",
		},
		{
			name: "quantity with other comparator is ignored",
			doc: `<prereq_list all="yes"><spell_prereq has="yes">` +
				`<college compare="is">Air</college><quantity compare="at_most">2</quantity>` +
				`</spell_prereq></prereq_list>`,
			expected: "Air college",
		},
		{
			name:     "attribute",
			doc:      `<prereq_list all="yes"><attribute_prereq has="yes" which="IQ" compare="at_least">12</attribute_prereq></prereq_list>`,
			expected: "IQ 12+",
		},
		{
			name: "advantage and skill are literal",
			doc: `<prereq_list all="no">` +
				`<advantage_prereq has="yes"><name compare="is">Clerical Investment</name></advantage_prereq>` +
				`<skill_prereq has="yes"><name compare="is">Thaumatology</name></skill_prereq>` +
				`</prereq_list>`,
			expected: "advantage or skill",
		},
		{
			name: "nested list is parenthesized",
			doc: `<prereq_list all="yes">` + magery("1") +
				`<prereq_list all="no">` + spell("is", "Fireball") + spell("is", "Icy Weapon") + `</prereq_list>` +
				`</prereq_list>`,
			expected: "advantage and (Fireball or Icy Weapon)",
		},
		{
			name: "deep nesting",
			doc: `<prereq_list all="yes">` + spell("is", "Apportation") +
				`<prereq_list all="no">` + spell("is", "Haste") +
				`<prereq_list all="yes">` + spell("is", "Lockmaster") + spell("is", "Shape Earth") + `</prereq_list>` +
				`</prereq_list></prereq_list>`,
			expected: "Apportation and (Haste or (Lockmaster and Shape Earth))",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			expr, err := s.render(tc.doc)
			s.Require().NoError(err)
			s.Equal(tc.expected, expr)
		})
	}
}

func (s *RenderTestSuite) TestMageryCollapse() {
	testCases := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "single magery",
			doc:      `<prereq_list all="yes">` + magery("1") + `</prereq_list>`,
			expected: "Magery 1+",
		},
		{
			name:     "repeated magery at same level",
			doc:      `<prereq_list all="no">` + magery("2") + magery("2") + magery("2") + `</prereq_list>`,
			expected: "Magery 2+",
		},
		{
			name: "name comparison ignores case",
			doc: `<prereq_list all="yes"><advantage_prereq has="yes"><name compare="is">Magery</name>` +
				`<level compare="at_least">3</level></advantage_prereq></prereq_list>`,
			expected: "Magery 3+",
		},
		{
			name:     "nested magery list",
			doc:      `<prereq_list all="yes">` + spell("is", "Fireball") + `<prereq_list all="no">` + magery("2") + `</prereq_list></prereq_list>`,
			expected: "Fireball and (Magery 2+)",
		},
		{
			name:     "mixture falls through to general case",
			doc:      `<prereq_list all="yes">` + magery("1") + spell("is", "Fireball") + `</prereq_list>`,
			expected: "advantage and Fireball",
		},
		{
			name: "other advantage falls through",
			doc: `<prereq_list all="yes"><advantage_prereq has="yes"><name compare="is">Magery</name>` +
				`<level compare="at_most">3</level></advantage_prereq></prereq_list>`,
			expected: "advantage",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			expr, err := s.render(tc.doc)
			s.Require().NoError(err)
			s.Equal(tc.expected, expr)
		})
	}
}

func (s *RenderTestSuite) TestMageryCollapseIgnoresChildOrder() {
	levelless := `<advantage_prereq has="yes"><name compare="is">magery</name></advantage_prereq>`

	testCases := []struct {
		name     string
		children []string
		expected []string
	}{
		{
			name:     "differing levels beside a spell",
			children: []string{spell("is", "Fireball"), magery("1"), magery("2")},
			expected: []string{"Fireball", "advantage", "advantage"},
		},
		{
			name:     "levelless magery beside a spell",
			children: []string{levelless, spell("is", "Fireball")},
			expected: []string{"advantage", "Fireball"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			forward := `<prereq_list all="yes">` + strings.Join(tc.children, "") + `</prereq_list>`
			expr, err := s.render(forward)
			s.Require().NoError(err)
			s.Equal(strings.Join(tc.expected, " and "), expr)

			reversed := slices.Clone(tc.children)
			slices.Reverse(reversed)
			expected := slices.Clone(tc.expected)
			slices.Reverse(expected)

			expr, err = s.render(`<prereq_list all="yes">` + strings.Join(reversed, "") + `</prereq_list>`)
			s.Require().NoError(err)
			s.Equal(strings.Join(expected, " and "), expr)
		})
	}
}

func (s *RenderTestSuite) TestInconsistentMageryInAnyOrder() {
	orders := [][]string{
		{magery("1"), magery("2"), magery("1")},
		{magery("2"), magery("1"), magery("1")},
		{magery("1"), magery("1"), magery("2")},
	}

	for _, children := range orders {
		_, err := s.render(`<prereq_list all="no">` + strings.Join(children, "") + `</prereq_list>`)
		s.Require().Error(err)
		s.True(errors.IsSchemaViolation(err))
		s.Contains(err.Error(), "inconsistent magery levels")
	}
}

func (s *RenderTestSuite) TestEmptyLists() {
	expr, err := prereq.Render(nil)
	s.Require().NoError(err)
	s.Equal("none", expr)

	expr, err = s.render(`<prereq_list all="yes"/>`)
	s.Require().NoError(err)
	s.Equal("none", expr)

	expr, err = s.render(`<prereq_list all="yes">` + spell("is", "Fireball") + `<prereq_list all="no"/></prereq_list>`)
	s.Require().NoError(err)
	s.Equal("Fireball", expr)

	expr, err = s.render(`<prereq_list all="yes"><prereq_list all="no"/></prereq_list>`)
	s.Require().NoError(err)
	s.Equal("none", expr)
}

func (s *RenderTestSuite) TestSchemaViolations() {
	testCases := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{
			name:   "inconsistent magery levels",
			doc:    `<prereq_list all="yes">` + magery("1") + magery("2") + `</prereq_list>`,
			errMsg: "inconsistent magery levels",
		},
		{
			name:   "magery without level",
			doc:    `<prereq_list all="yes"><advantage_prereq has="yes"><name compare="is">magery</name></advantage_prereq></prereq_list>`,
			errMsg: "magery prerequisite has no level",
		},
		{
			name:   "unknown spell comparator",
			doc:    `<prereq_list all="yes">` + spell("ends_with", "Fire") + `</prereq_list>`,
			errMsg: "unknown comparator",
		},
		{
			name:   "unknown college comparator",
			doc:    `<prereq_list all="yes"><spell_prereq has="yes"><college compare="starts_with">Fi</college></spell_prereq></prereq_list>`,
			errMsg: "unknown comparator",
		},
		{
			name: "name and college together",
			doc: `<prereq_list all="yes"><spell_prereq has="yes"><name compare="is">Fireball</name>` +
				`<college compare="is">Fire</college></spell_prereq></prereq_list>`,
			errMsg: "both name and college",
		},
		{
			name:   "attribute without has",
			doc:    `<prereq_list all="yes"><attribute_prereq has="no" which="IQ" compare="at_least">12</attribute_prereq></prereq_list>`,
			errMsg: "attribute prerequisite",
		},
		{
			name:   "attribute with other comparator",
			doc:    `<prereq_list all="yes"><attribute_prereq has="yes" which="IQ" compare="at_most">12</attribute_prereq></prereq_list>`,
			errMsg: "unknown comparator",
		},
		{
			name:   "unknown prerequisite type",
			doc:    `<prereq_list all="yes"><contained_weight_prereq/></prereq_list>`,
			errMsg: "unknown prerequisite type contained_weight_prereq",
		},
		{
			name:   "unknown type nested",
			doc:    `<prereq_list all="yes"><prereq_list><equipped_prereq/></prereq_list></prereq_list>`,
			errMsg: "unknown prerequisite type equipped_prereq",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.render(tc.doc)
			s.Require().Error(err)
			s.True(errors.IsSchemaViolation(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RenderTestSuite) TestDecodeRejectsOtherRoot() {
	node, err := xmltree.Parse(strings.NewReader(`<spell_prereq/>`))
	s.Require().NoError(err)

	_, err = prereq.Decode(node)
	s.Require().Error(err)
	s.True(errors.IsSchemaViolation(err))
}
