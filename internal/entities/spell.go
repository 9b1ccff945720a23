package entities

// Catalogue column names
const (
	FieldName            = "name"
	FieldCollege         = "college"
	FieldSpellClass      = "spell_class"
	FieldCastingCost     = "casting_cost"
	FieldMaintenanceCost = "maintenance_cost"
	FieldCastingTime     = "casting_time"
	FieldDuration        = "duration"
	FieldReference       = "reference"
	FieldNotes           = "notes"
	FieldTechLevel       = "tech_level"
	FieldDifficulty      = "difficulty"
	FieldPrereq          = "prereq"
)

const (
	// DifficultyVeryHard marks spells flagged very_hard in the catalogue
	DifficultyVeryHard = "VH"

	// PrereqNone is the prerequisite expression of a spell with no requirements
	PrereqNone = "none"
)

// RequiredFields must be present on every catalogue spell
var RequiredFields = []string{
	FieldName,
	FieldCollege,
	FieldSpellClass,
	FieldCastingCost,
	FieldCastingTime,
	FieldDuration,
	FieldReference,
}

// OptionalFields default to the empty string when absent
var OptionalFields = []string{
	FieldMaintenanceCost,
	FieldNotes,
	FieldTechLevel,
}

// FieldNames is the ordered column set a matched spell contributes to a row
var FieldNames = []string{
	FieldName,
	FieldCollege,
	FieldSpellClass,
	FieldCastingCost,
	FieldMaintenanceCost,
	FieldCastingTime,
	FieldDuration,
	FieldReference,
	FieldNotes,
	FieldTechLevel,
	FieldDifficulty,
	FieldPrereq,
}

// Spell is one parsed catalogue entry
type Spell struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	College         string `json:"college"`
	SpellClass      string `json:"spell_class"`
	CastingCost     string `json:"casting_cost"`
	MaintenanceCost string `json:"maintenance_cost"`
	CastingTime     string `json:"casting_time"`
	Duration        string `json:"duration"`
	Reference       string `json:"reference"`
	Notes           string `json:"notes"`
	TechLevel       string `json:"tech_level"`
	Difficulty      string `json:"difficulty"`
	Prereq          string `json:"prereq"`
}

// Fields returns the spell's column values keyed by the names in FieldNames
func (s *Spell) Fields() map[string]string {
	return map[string]string{
		FieldName:            s.Name,
		FieldCollege:         s.College,
		FieldSpellClass:      s.SpellClass,
		FieldCastingCost:     s.CastingCost,
		FieldMaintenanceCost: s.MaintenanceCost,
		FieldCastingTime:     s.CastingTime,
		FieldDuration:        s.Duration,
		FieldReference:       s.Reference,
		FieldNotes:           s.Notes,
		FieldTechLevel:       s.TechLevel,
		FieldDifficulty:      s.Difficulty,
		FieldPrereq:          s.Prereq,
	}
}

// SetField assigns a plain catalogue field by column name. Derived columns
// (difficulty, prereq) and unknown names report false.
func (s *Spell) SetField(field, value string) bool {
	switch field {
	case FieldName:
		s.Name = value
	case FieldCollege:
		s.College = value
	case FieldSpellClass:
		s.SpellClass = value
	case FieldCastingCost:
		s.CastingCost = value
	case FieldMaintenanceCost:
		s.MaintenanceCost = value
	case FieldCastingTime:
		s.CastingTime = value
	case FieldDuration:
		s.Duration = value
	case FieldReference:
		s.Reference = value
	case FieldNotes:
		s.Notes = value
	case FieldTechLevel:
		s.TechLevel = value
	default:
		return false
	}
	return true
}
