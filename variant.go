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
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"seehuhn.de/go/fontmatch/optional"
	"seehuhn.de/go/sfnt/os2"
)

// Record describes one installed font file.
// Records are produced by the code which enumerates the fonts of a system,
// and are turned into a Catalog by FromRecords.
type Record struct {
	// FamilyName is the name used to group variants into families.
	FamilyName string

	// FamilyNames optionally gives localized versions of the family name.
	// These can be used to look up the family, in addition to FamilyName.
	FamilyNames map[language.Tag]string

	// Name distinguishes the variant within its family, for example
	// "Bold Italic".
	Name string

	// Weight is the weight class of the font.  The value 0 is replaced by
	// os2.WeightNormal.
	Weight os2.Weight

	Style Style

	// Width is the width class of the font, from os2.WidthUltraCondensed
	// to os2.WidthUltraExpanded.
	Width optional.Value[os2.Width]

	// OpticalSize is the point size the design is optimized for.
	OpticalSize optional.Value[uint]

	// Slant is the slant angle in degrees, counterclockwise from vertical.
	// Fonts leaning to the right have negative values.
	Slant optional.Value[int]

	// FilePath is the location of the font file.
	FilePath string

	// Info contains informational strings read from the font file.
	Info Information
}

// Variant is one font file within a family.
//
// Variants are owned by a Catalog and are immutable.  The zero Variant is
// not useful; Variants are only obtained from a Catalog.
type Variant struct {
	family *Family
	index  int

	name        string
	weight      os2.Weight
	style       Style
	width       optional.Value[os2.Width]
	opticalSize optional.Value[uint]
	slant       optional.Value[int]
	filePath    string
	info        Information
}

func newVariant(rec *Record) *Variant {
	weight := rec.Weight
	if weight == 0 {
		weight = os2.WeightNormal
	}
	return &Variant{
		name:        rec.Name,
		weight:      weight,
		style:       rec.Style,
		width:       rec.Width,
		opticalSize: rec.OpticalSize,
		slant:       rec.Slant,
		filePath:    rec.FilePath,
		info:        rec.Info,
	}
}

// Family returns the family the variant belongs to.
func (v *Variant) Family() *Family {
	return v.family
}

// FamilyName returns the display name of the variant's family.
func (v *Variant) FamilyName() string {
	return v.family.Name()
}

// Index returns the position of the variant within its family.
func (v *Variant) Index() int {
	return v.index
}

// Name returns the name of the variant within its family.
func (v *Variant) Name() string {
	return v.name
}

// Weight returns the weight class of the variant.
func (v *Variant) Weight() os2.Weight {
	return v.weight
}

// Style returns the slant classification of the variant.
func (v *Variant) Style() Style {
	return v.style
}

// IsItalic returns true if the variant is italic or oblique.
func (v *Variant) IsItalic() bool {
	return v.style.IsSlanted()
}

// Width returns the width class of the variant, if known.
func (v *Variant) Width() (os2.Width, bool) {
	return v.width.Get()
}

// OpticalSize returns the optical size of the variant in points, if known.
func (v *Variant) OpticalSize() (uint, bool) {
	return v.opticalSize.Get()
}

// Slant returns the slant angle of the variant in degrees, if known.
func (v *Variant) Slant() (int, bool) {
	return v.slant.Get()
}

// FilePath returns the location of the font file.
func (v *Variant) FilePath() string {
	return v.filePath
}

// Info returns the informational strings of the variant.
func (v *Variant) Info() Information {
	return v.info
}

// FullName returns the full name of the variant.  If the font does not
// provide a full name, the name is formed from the family and variant names.
func (v *Variant) FullName() string {
	if name, ok := v.info.Get(FullName); ok && name != "" {
		return name
	}
	if v.name == "" {
		return v.FamilyName()
	}
	return v.FamilyName() + " " + v.name
}

func (v *Variant) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (weight %d, %s", v.FullName(), v.weight, v.style)
	if w, ok := v.width.Get(); ok {
		fmt.Fprintf(&b, ", width %d", w)
	}
	if sz, ok := v.opticalSize.Get(); ok {
		fmt.Fprintf(&b, ", %dpt", sz)
	}
	b.WriteString(")")
	return b.String()
}
