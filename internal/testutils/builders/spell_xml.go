// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"html"
	"strings"
)

// SpellXMLBuilder provides a fluent interface for building catalogue spell elements
type SpellXMLBuilder struct {
	version  string
	veryHard string
	fields   [][2]string
	extra    []string
	prereqs  string
}

// NewSpellXMLBuilder creates a builder for a version 2 spell with every
// required field set
func NewSpellXMLBuilder(name string) *SpellXMLBuilder {
	return &SpellXMLBuilder{
		version: "2",
		fields: [][2]string{
			{"name", name},
			{"college", "Fire"},
			{"spell_class", "Regular"},
			{"casting_cost", "1"},
			{"casting_time", "1 sec"},
			{"duration", "1 min"},
			{"reference", "B247"},
		},
	}
}

// WithVersion sets the version attribute; empty omits it
func (b *SpellXMLBuilder) WithVersion(version string) *SpellXMLBuilder {
	b.version = version
	return b
}

// WithVeryHard sets the very_hard attribute
func (b *SpellXMLBuilder) WithVeryHard(value string) *SpellXMLBuilder {
	b.veryHard = value
	return b
}

// WithField sets or adds a field element
func (b *SpellXMLBuilder) WithField(tag, value string) *SpellXMLBuilder {
	for i := range b.fields {
		if b.fields[i][0] == tag {
			b.fields[i][1] = value
			return b
		}
	}
	b.fields = append(b.fields, [2]string{tag, value})
	return b
}

// WithoutField drops a field element
func (b *SpellXMLBuilder) WithoutField(tag string) *SpellXMLBuilder {
	kept := b.fields[:0]
	for _, f := range b.fields {
		if f[0] != tag {
			kept = append(kept, f)
		}
	}
	b.fields = kept
	return b
}

// WithRawChild appends verbatim XML inside the spell element
func (b *SpellXMLBuilder) WithRawChild(xml string) *SpellXMLBuilder {
	b.extra = append(b.extra, xml)
	return b
}

// WithPrereqs sets the prereq_list element verbatim
func (b *SpellXMLBuilder) WithPrereqs(xml string) *SpellXMLBuilder {
	b.prereqs = xml
	return b
}

// Build renders the spell element
func (b *SpellXMLBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("<spell")
	if b.version != "" {
		fmt.Fprintf(&sb, ` version="%s"`, b.version)
	}
	if b.veryHard != "" {
		fmt.Fprintf(&sb, ` very_hard="%s"`, b.veryHard)
	}
	sb.WriteString(">\n")

	for _, f := range b.fields {
		fmt.Fprintf(&sb, "  <%s>%s</%s>\n", f[0], html.EscapeString(f[1]), f[0])
	}
	for _, x := range b.extra {
		sb.WriteString("  " + x + "\n")
	}
	if b.prereqs != "" {
		sb.WriteString("  " + b.prereqs + "\n")
	}

	sb.WriteString("</spell>")
	return sb.String()
}

// CatalogueXML wraps spell elements in a spell_list document
func CatalogueXML(spells ...string) string {
	return `<?xml version="1.0" encoding="utf-8"?>` + "\n" +
		`<spell_list version="2">` + "\n" +
		strings.Join(spells, "\n") + "\n" +
		`</spell_list>`
}
