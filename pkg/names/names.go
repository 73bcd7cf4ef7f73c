// Package names maps free-text location input (country names, ISO 3166 codes,
// common alternate spellings) to the canonical spelling used by the stats gateway
// and, separately, to the spelling used by the timeline source.
package names

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default resolves against the built-in country table.
var Default = New(MustNewTable(Countries))

type Normalizer struct {
	table *Table
}

func New(t *Table) *Normalizer {
	return &Normalizer{table: t}
}

// Normalize returns the canonical stats-source name for raw. Unknown input is
// returned title-cased so the repository lookup can report it as not found.
func (n *Normalizer) Normalize(raw string) string {
	c, text := n.resolve(raw)
	if c == nil {
		return text
	}
	return c.Name
}

// ForChart is Normalize against the timeline source's spelling.
func (n *Normalizer) ForChart(raw string) string {
	c, text := n.resolve(raw)
	if c == nil {
		return text
	}
	if c.ChartName != "" {
		return c.ChartName
	}
	return c.Name
}

func (n *Normalizer) resolve(raw string) (*Country, string) {
	s := collapse(raw)
	if s == "" {
		return nil, ""
	}
	if l := utf8.RuneCountInString(s); l == 2 || l == 3 {
		if c, ok := n.table.code(strings.ToUpper(s)); ok {
			return c, c.Name
		}
	}
	titled := Title(s)
	if c, ok := n.table.name(titled); ok {
		return c, c.Name
	}
	return nil, titled
}

// Title upper-cases the first letter of every word and lower-cases the rest.
func Title(s string) string {
	// a Caser keeps state between calls and must not be shared
	return cases.Title(language.Und).String(s)
}

func Normalize(raw string) string { return Default.Normalize(raw) }

func ForChart(raw string) string { return Default.ForChart(raw) }
