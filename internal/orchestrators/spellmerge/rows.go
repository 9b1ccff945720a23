package spellmerge

import (
	"slices"
	"sort"

	"github.com/KirkDiggler/spellmerge/internal/entities"
	"github.com/KirkDiggler/spellmerge/internal/errors"
)

// Row is one output row, positionally aligned with Layout.Columns
type Row []string

// Layout maps a table header onto the output columns: the header unchanged,
// then every catalogue column the header lacks. Duplicate header names keep
// their own positions.
type Layout struct {
	header  []string
	columns []string
	fields  map[string][]int
}

// NewLayout builds the output layout for a table header
func NewLayout(header []string) *Layout {
	l := &Layout{
		header:  append([]string{}, header...),
		columns: append([]string{}, header...),
		fields:  make(map[string][]int, len(entities.FieldNames)),
	}

	for i, column := range header {
		if slices.Contains(entities.FieldNames, column) {
			l.fields[column] = append(l.fields[column], i)
		}
	}
	for _, field := range entities.FieldNames {
		if _, ok := l.fields[field]; ok {
			continue
		}
		l.fields[field] = []int{len(l.columns)}
		l.columns = append(l.columns, field)
	}

	return l
}

// Columns returns the output header
func (l *Layout) Columns() []string {
	return append([]string{}, l.columns...)
}

// NewRow places a CSV record in the output layout. Missing trailing cells are
// empty; a record with more cells than the header is rejected.
func (l *Layout) NewRow(record []string) (Row, error) {
	if len(record) > len(l.header) {
		return nil, errors.SchemaViolationf("row has %d cells but the header has %d", len(record), len(l.header)).
			WithMeta("cells", len(record)).
			WithMeta("columns", len(l.header))
	}

	row := make(Row, len(l.columns))
	copy(row, record)
	return row, nil
}

// Augment returns a copy of row with every catalogue field of spell set. A
// nil spell leaves the row unchanged.
func (l *Layout) Augment(row Row, spell *entities.Spell) Row {
	merged := slices.Clone(row)
	if spell == nil {
		return merged
	}
	for field, value := range spell.Fields() {
		for _, i := range l.fields[field] {
			merged[i] = value
		}
	}
	return merged
}

// Coverage accumulates which catalogue keys were consumed and which table
// names found nothing over a whole run
type Coverage struct {
	consumed  map[string]struct{}
	unmatched []string
}

// NewCoverage creates an empty accumulator
func NewCoverage() *Coverage {
	return &Coverage{consumed: make(map[string]struct{})}
}

// Consume records a matched catalogue key
func (c *Coverage) Consume(key string) {
	c.consumed[key] = struct{}{}
}

// Miss records a table name with no catalogue entry
func (c *Coverage) Miss(name string) {
	c.unmatched = append(c.unmatched, name)
}

// Unmatched returns the missed table names in the order they were seen
func (c *Coverage) Unmatched() []string {
	return append([]string{}, c.unmatched...)
}

// Unconsumed returns the given catalogue keys that were never consumed, sorted
func (c *Coverage) Unconsumed(keys []string) []string {
	unused := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := c.consumed[key]; !ok {
			unused = append(unused, key)
		}
	}
	sort.Strings(unused)
	return unused
}
