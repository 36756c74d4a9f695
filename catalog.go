// seehuhn.de/go/fontmatch - select installed fonts by family and style
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontmatch

import (
	"iter"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options control how a Catalog is built.
type Options struct {
	// Locale selects the language of family display names.
	// If this is unset, American English is used.
	Locale language.Tag
}

// Catalog is a read-only collection of font families.
//
// A Catalog is built once, using FromRecords, and cannot be modified
// afterwards.  It is safe to use a Catalog concurrently from multiple
// goroutines.  Variants obtained from a Catalog refer back into it.
type Catalog struct {
	families    []*Family
	numVariants int

	// byName maps case-folded family names, including localized names,
	// to families.
	byName map[string]*Family

	// byInfo maps the searchable informational strings to variants,
	// in enumeration order.
	byInfo map[InfoKey]map[string][]*Variant
}

// Family is a named group of font variants within a Catalog.
type Family struct {
	catalog  *Catalog
	index    int
	name     string
	names    LocalizedNames
	locale   language.Tag
	variants []*Variant
}

// FromRecords builds a catalog from a list of font records.
//
// Records are grouped into families by their FamilyName, ignoring case.
// Families are ordered by their first appearance in records, and the
// variants of a family keep the order of the records.  This order is used
// to break ties when ranking variants.
func FromRecords(records []Record, opt *Options) *Catalog {
	locale := language.AmericanEnglish
	if opt != nil && opt.Locale != language.Und {
		locale = opt.Locale
	}

	c := &Catalog{
		byName: make(map[string]*Family),
		byInfo: make(map[InfoKey]map[string][]*Variant),
	}

	fold := cases.Fold()
	groups := make(map[string]*Family)
	localized := make(map[*Family]map[language.Tag]string)
	for i := range records {
		rec := &records[i]

		key := fold.String(rec.FamilyName)
		f := groups[key]
		if f == nil {
			f = &Family{
				catalog: c,
				index:   len(c.families),
				name:    rec.FamilyName,
				locale:  locale,
			}
			groups[key] = f
			localized[f] = make(map[language.Tag]string)
			c.families = append(c.families, f)
		}
		for tag, name := range rec.FamilyNames {
			if _, seen := localized[f][tag]; !seen {
				localized[f][tag] = name
			}
		}

		v := newVariant(rec)
		v.family = f
		v.index = len(f.variants)
		f.variants = append(f.variants, v)
	}

	// Primary names are registered first, so that they take precedence
	// over clashing localized names of other families.
	for _, f := range c.families {
		f.names = NewLocalizedNames(localized[f])
		c.byName[fold.String(f.name)] = f
	}
	for _, f := range c.families {
		for _, n := range f.names.names {
			key := fold.String(n.Text)
			if _, taken := c.byName[key]; !taken {
				c.byName[key] = f
			}
		}
	}

	for _, f := range c.families {
		for _, v := range f.variants {
			c.numVariants++
			for key, val := range v.info.All() {
				if !key.Searchable() {
					continue
				}
				idx := c.byInfo[key]
				if idx == nil {
					idx = make(map[string][]*Variant)
					c.byInfo[key] = idx
				}
				idx[val] = append(idx[val], v)
			}
		}
	}

	return c
}

// Len returns the number of families in the catalog.
func (c *Catalog) Len() int {
	return len(c.families)
}

// NumVariants returns the total number of variants in the catalog.
func (c *Catalog) NumVariants() int {
	return c.numVariants
}

// Family returns the family with the given index.
// Negative indices count from the end.
func (c *Catalog) Family(i int) (*Family, error) {
	idx, err := resolveIndex(i, len(c.families))
	if err != nil {
		return nil, err
	}
	return c.families[idx], nil
}

// Families returns all families, in catalog order.
func (c *Catalog) Families() []*Family {
	return slices.Clone(c.families)
}

// All iterates over all variants in the catalog, in enumeration order.
func (c *Catalog) All() iter.Seq[*Variant] {
	return func(yield func(*Variant) bool) {
		for _, f := range c.families {
			for _, v := range f.variants {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// LookupFamily finds a family by name.  The name is compared to the family
// names and to all localized family names, ignoring case.
// If no family matches, a *FamilyNotFoundError is returned.
func (c *Catalog) LookupFamily(name string) (*Family, error) {
	// A Caser keeps state and must not be shared between goroutines.
	f, ok := c.byName[cases.Fold().String(name)]
	if !ok {
		return nil, &FamilyNotFoundError{Name: name}
	}
	return f, nil
}

// SearchByName returns all variants for which the informational string
// for key equals value.  The comparison is exact.
//
// The result is in catalog enumeration order and may contain variants
// from different families.  If no variant matches, the result is empty.
// Keys which are not searchable give an *UnsearchableKeyError.
func (c *Catalog) SearchByName(key InfoKey, value string) ([]*Variant, error) {
	if !key.Searchable() {
		return nil, &UnsearchableKeyError{Key: key}
	}
	return slices.Clone(c.byInfo[key][value]), nil
}

// Search returns the variants which match all given filters, in catalog
// enumeration order.  Each filter maps a searchable information key to
// the required value.
func (c *Catalog) Search(filters map[InfoKey]string) ([]*Variant, error) {
	if len(filters) == 0 {
		return nil, ErrNoFilters
	}

	keys := make([]InfoKey, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	// Start from the shortest candidate list.
	var candidates []*Variant
	for i, key := range keys {
		if !key.Searchable() {
			return nil, &UnsearchableKeyError{Key: key}
		}
		list := c.byInfo[key][filters[key]]
		if i == 0 || len(list) < len(candidates) {
			candidates = list
		}
	}

	var res []*Variant
candidateLoop:
	for _, v := range candidates {
		for _, key := range keys {
			if val, ok := v.info.Get(key); !ok || val != filters[key] {
				continue candidateLoop
			}
		}
		res = append(res, v)
	}
	return res, nil
}

// SearchQuery runs Search using the name filters of q.
func (c *Catalog) SearchQuery(q Query) ([]*Variant, error) {
	return c.Search(q.Names)
}

// Name returns the display name of the family.  This is the localized name
// for the catalog locale if one is available, and the primary family name
// otherwise.
func (f *Family) Name() string {
	if name, ok := f.names.Match(f.locale, language.AmericanEnglish); ok {
		return name
	}
	return f.name
}

// Names returns the localized names of the family.
func (f *Family) Names() LocalizedNames {
	return f.names
}

// Catalog returns the catalog which contains the family.
func (f *Family) Catalog() *Catalog {
	return f.catalog
}

// Index returns the position of the family in its catalog.
func (f *Family) Index() int {
	return f.index
}

// Len returns the number of variants in the family.
func (f *Family) Len() int {
	return len(f.variants)
}

// Variant returns the variant with the given index, in enumeration order.
// Negative indices count from the end.
func (f *Family) Variant(i int) (*Variant, error) {
	idx, err := resolveIndex(i, len(f.variants))
	if err != nil {
		return nil, err
	}
	return f.variants[idx], nil
}

// Variants returns all variants of the family, in enumeration order.
func (f *Family) Variants() []*Variant {
	return slices.Clone(f.variants)
}

func (f *Family) String() string {
	return f.Name()
}

func resolveIndex(i, n int) (int, error) {
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, &IndexError{Index: i, Len: n}
	}
	return idx, nil
}
