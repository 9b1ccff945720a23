package catalogue_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellmerge/internal/catalogue"
	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
	"github.com/KirkDiggler/spellmerge/internal/testutils/builders"
)

const mageryOne = `<prereq_list all="yes"><advantage_prereq has="yes"><name compare="is">magery</name>` +
	`<level compare="at_least">1</level></advantage_prereq></prereq_list>`

type LoaderTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *LoaderTestSuite) load(spells ...string) (*entities.Catalogue, error) {
	return catalogue.Load(s.ctx, strings.NewReader(builders.CatalogueXML(spells...)))
}

func (s *LoaderTestSuite) TestLoadSpell() {
	cat, err := s.load(
		builders.NewSpellXMLBuilder("Fireball").
			WithField("college", "Fire").
			WithField("spell_class", "Missile").
			WithField("casting_cost", "Any").
			WithField("maintenance_cost", "").
			WithField("notes", "Damage 1d per energy").
			WithRawChild(`<categories><category>Fire</category></categories>`).
			WithRawChild(`<points>1</points>`).
			WithPrereqs(mageryOne).
			Build(),
	)
	s.Require().NoError(err)
	s.Require().Equal(1, cat.Len())

	spell, ok := cat.Get("fireball")
	s.Require().True(ok)
	s.Equal(&entities.Spell{
		Key:         "fireball",
		Name:        "Fireball",
		College:     "Fire",
		SpellClass:  "Missile",
		CastingCost: "Any",
		CastingTime: "1 sec",
		Duration:    "1 min",
		Reference:   "B247",
		Notes:       "Damage 1d per energy",
		Prereq:      "Magery 1+",
	}, spell)
}

func (s *LoaderTestSuite) TestExtraTagsAreIgnored() {
	testCases := []struct {
		name  string
		child string
	}{
		{"categories", `<categories><category>Fire</category></categories>`},
		{"points", `<points>1</points>`},
		{"power source", `<power_source>Arcane</power_source>`},
		{"resist", `<resist>HT</resist>`},
		{"melee weapon", `<melee_weapon><damage type="burn"/></melee_weapon>`},
		{"ranged weapon", `<ranged_weapon><damage type="burn"/></ranged_weapon>`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cat, err := s.load(builders.NewSpellXMLBuilder("Fireball").WithRawChild(tc.child).Build())
			s.Require().NoError(err)

			spell, ok := cat.Get("fireball")
			s.Require().True(ok)
			s.Equal("Fireball", spell.Name)
		})
	}
}

func (s *LoaderTestSuite) TestDefaults() {
	cat, err := s.load(builders.NewSpellXMLBuilder("Ignite Fire").Build())
	s.Require().NoError(err)

	spell, ok := cat.Get("ignite fire")
	s.Require().True(ok)
	s.Equal("", spell.MaintenanceCost)
	s.Equal("", spell.Notes)
	s.Equal("", spell.TechLevel)
	s.Equal("", spell.Difficulty)
	s.Equal("none", spell.Prereq)
}

func (s *LoaderTestSuite) TestVeryHard() {
	cat, err := s.load(builders.NewSpellXMLBuilder("Alter Body").WithVeryHard("yes").Build())
	s.Require().NoError(err)

	spell, ok := cat.Get("alter body")
	s.Require().True(ok)
	s.Equal("VH", spell.Difficulty)
}

func (s *LoaderTestSuite) TestKeyStripsTag() {
	cat, err := s.load(
		builders.NewSpellXMLBuilder("Seek Machine (@TL@)").WithField("tech_level", "8").Build(),
	)
	s.Require().NoError(err)

	spell, ok := cat.Get("seek machine")
	s.Require().True(ok)
	s.Equal("Seek Machine (@TL@)", spell.Name)
	s.Equal("8", spell.TechLevel)
}

func (s *LoaderTestSuite) TestDuplicateKeyLastWins() {
	cat, err := s.load(
		builders.NewSpellXMLBuilder("Light").WithField("reference", "B249").Build(),
		builders.NewSpellXMLBuilder("LIGHT").WithField("reference", "M110").Build(),
	)
	s.Require().NoError(err)
	s.Equal(1, cat.Len())

	spell, ok := cat.Get("light")
	s.Require().True(ok)
	s.Equal("M110", spell.Reference)
}

func (s *LoaderTestSuite) TestEmptyCatalogue() {
	cat, err := catalogue.Load(s.ctx, strings.NewReader(`<spell_list version="2"></spell_list>`))
	s.Require().NoError(err)
	s.Equal(0, cat.Len())
}

func (s *LoaderTestSuite) TestSchemaViolations() {
	testCases := []struct {
		name   string
		spell  string
		errMsg string
	}{
		{
			name:   "missing required field",
			spell:  builders.NewSpellXMLBuilder("Fireball").WithoutField("college").Build(),
			errMsg: "no field college",
		},
		{
			name:   "wrong version",
			spell:  builders.NewSpellXMLBuilder("Fireball").WithVersion("3").Build(),
			errMsg: "unsupported spell version",
		},
		{
			name:   "missing version",
			spell:  builders.NewSpellXMLBuilder("Fireball").WithVersion("").Build(),
			errMsg: "unsupported spell version",
		},
		{
			name:   "unknown field",
			spell:  builders.NewSpellXMLBuilder("Fireball").WithField("flavor", "hot").Build(),
			errMsg: "unknown field flavor",
		},
		{
			name:   "very hard not yes",
			spell:  builders.NewSpellXMLBuilder("Fireball").WithVeryHard("no").Build(),
			errMsg: "unsupported very_hard value",
		},
		{
			name: "bad prerequisite",
			spell: builders.NewSpellXMLBuilder("Fireball").
				WithPrereqs(`<prereq_list all="yes"><spell_prereq><name compare="ends_with">Fire</name></spell_prereq></prereq_list>`).
				Build(),
			errMsg: "unknown comparator",
		},
		{
			name:   "non-spell element",
			spell:  `<skill version="2"><name>Thaumatology</name></skill>`,
			errMsg: "unexpected element skill",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cat, err := s.load(builders.NewSpellXMLBuilder("Light").Build(), tc.spell)
			s.Require().Error(err)
			s.Nil(cat)
			s.True(errors.IsSchemaViolation(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *LoaderTestSuite) TestMissingFieldMetadata() {
	_, err := s.load(builders.NewSpellXMLBuilder("Fireball").WithoutField("college").Build())
	s.Require().Error(err)

	meta := errors.GetMeta(err)
	s.Equal("Fireball", meta["spell"])
	s.Equal("college", meta["field"])
}

func (s *LoaderTestSuite) TestMalformedDocument() {
	testCases := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unclosed", "<spell_list><spell version=\"2\">"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalogue.Load(s.ctx, strings.NewReader(tc.doc))
			s.Require().Error(err)
			s.True(errors.IsSchemaViolation(err))
		})
	}
}
