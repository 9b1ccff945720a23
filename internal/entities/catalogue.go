package entities

import "sort"

// Catalogue maps canonical keys to spells. It is built once per run and
// only read afterwards.
type Catalogue struct {
	spells map[string]*Spell
}

// NewCatalogue creates an empty catalogue
func NewCatalogue() *Catalogue {
	return &Catalogue{spells: make(map[string]*Spell)}
}

// Put stores a spell under its key. The last write for a key wins; the
// return value reports whether an earlier spell was replaced.
func (c *Catalogue) Put(spell *Spell) bool {
	_, replaced := c.spells[spell.Key]
	c.spells[spell.Key] = spell
	return replaced
}

// Get returns the spell stored under key
func (c *Catalogue) Get(key string) (*Spell, bool) {
	spell, ok := c.spells[key]
	return spell, ok
}

// Has reports whether key is present
func (c *Catalogue) Has(key string) bool {
	_, ok := c.spells[key]
	return ok
}

// Len returns the number of spells
func (c *Catalogue) Len() int {
	return len(c.spells)
}

// Keys returns every key in sorted order
func (c *Catalogue) Keys() []string {
	keys := make([]string, 0, len(c.spells))
	for key := range c.spells {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
