package names

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/spellmerge/internal/errors"
)

// AliasTable maps literal table names to the catalogue key they stand for.
// It covers spells whose two spellings no normalization reconciles.
type AliasTable struct {
	entries map[string]string
}

// aliasFile is the YAML layout read by LoadAliases
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

var defaultAliases = map[string]string{
	"Boost Attribute":      "boost @attribute@",
	"Steal Attribute":      "steal @attribute@",
	"Divination (Various)": "divination",
}

// NewAliasTable builds a table from literal name to catalogue name. Targets
// are canonicalized with Key.
func NewAliasTable(entries map[string]string) AliasTable {
	t := AliasTable{entries: make(map[string]string, len(entries))}
	for name, target := range entries {
		t.entries[name] = Key(target)
	}
	return t
}

// DefaultAliases returns the built-in aliases
func DefaultAliases() AliasTable {
	return NewAliasTable(defaultAliases)
}

// LoadAliases reads an alias table from YAML:
//
//	aliases:
//	  Boost Attribute: "boost @attribute@"
func LoadAliases(r io.Reader) (AliasTable, error) {
	var file aliasFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return NewAliasTable(nil), nil
		}
		return AliasTable{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode alias file")
	}

	for name, target := range file.Aliases {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(target) == "" {
			return AliasTable{}, errors.InvalidArgumentf("alias %q: name and target are required", name)
		}
	}

	return NewAliasTable(file.Aliases), nil
}

// Lookup returns the catalogue key aliased to the literal table name
func (t AliasTable) Lookup(name string) (string, bool) {
	key, ok := t.entries[name]
	return key, ok
}

// Len returns the number of aliases
func (t AliasTable) Len() int {
	return len(t.entries)
}

// Merge returns a table holding both sets; entries in other win
func (t AliasTable) Merge(other AliasTable) AliasTable {
	merged := AliasTable{entries: make(map[string]string, len(t.entries)+len(other.entries))}
	for name, key := range t.entries {
		merged.entries[name] = key
	}
	for name, key := range other.entries {
		merged.entries[name] = key
	}
	return merged
}
