package names

import (
	"fmt"
	"strings"
)

// Country is one row of the name table. Name is the spelling used by the stats
// gateway; ChartName is set only when the timeline source spells it differently.
type Country struct {
	Name      string
	Alpha2    string
	Alpha3    string
	Aliases   []string
	ChartName string
}

// Table indexes countries by ISO code, canonical name and alias.
type Table struct {
	alpha2  map[string]*Country
	alpha3  map[string]*Country
	byName  map[string]*Country
	byAlias map[string]*Country
}

// NewTable builds the lookup indexes. A code, name or alias claimed by two
// different countries is rejected.
func NewTable(countries []Country) (*Table, error) {
	t := &Table{
		alpha2:  make(map[string]*Country, len(countries)),
		alpha3:  make(map[string]*Country, len(countries)),
		byName:  make(map[string]*Country, len(countries)),
		byAlias: make(map[string]*Country),
	}
	for i := range countries {
		c := &countries[i]
		if c.Name == "" {
			return nil, fmt.Errorf("country #%d has no name", i)
		}
		if err := claim(t.byName, key(c.Name), c); err != nil {
			return nil, err
		}
		if c.Alpha2 != "" {
			if len(c.Alpha2) != 2 {
				return nil, fmt.Errorf("%s: bad alpha-2 code %q", c.Name, c.Alpha2)
			}
			if err := claim(t.alpha2, strings.ToUpper(c.Alpha2), c); err != nil {
				return nil, err
			}
		}
		if c.Alpha3 != "" {
			if len(c.Alpha3) != 3 {
				return nil, fmt.Errorf("%s: bad alpha-3 code %q", c.Name, c.Alpha3)
			}
			if err := claim(t.alpha3, strings.ToUpper(c.Alpha3), c); err != nil {
				return nil, err
			}
		}
	}
	// aliases go in after every canonical name is known so an alias can never
	// shadow another country's name
	for i := range countries {
		c := &countries[i]
		extra := c.Aliases
		if c.ChartName != "" {
			extra = append(append([]string(nil), extra...), c.ChartName)
		}
		for _, a := range extra {
			k := key(a)
			if owner, ok := t.byName[k]; ok && owner != c {
				return nil, fmt.Errorf("alias %q of %s is the name of %s", a, c.Name, owner.Name)
			}
			if err := claim(t.byAlias, k, c); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// MustNewTable is NewTable for package-level tables.
func MustNewTable(countries []Country) *Table {
	t, err := NewTable(countries)
	if err != nil {
		panic(err)
	}
	return t
}

func claim(index map[string]*Country, k string, c *Country) error {
	if owner, ok := index[k]; ok && owner != c {
		return fmt.Errorf("%q is claimed by both %s and %s", k, owner.Name, c.Name)
	}
	index[k] = c
	return nil
}

func (t *Table) code(s string) (*Country, bool) {
	switch len(s) {
	case 2:
		c, ok := t.alpha2[s]
		return c, ok
	case 3:
		c, ok := t.alpha3[s]
		return c, ok
	}
	return nil, false
}

func (t *Table) name(s string) (*Country, bool) {
	k := key(s)
	if c, ok := t.byName[k]; ok {
		return c, true
	}
	c, ok := t.byAlias[k]
	return c, ok
}

func key(s string) string {
	return strings.ToLower(collapse(s))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
