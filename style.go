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
)

// Style is the slant classification of a font variant.
// The numeric values agree with DirectWrite's DWRITE_FONT_STYLE.
type Style uint8

// These are the possible values of Style.
const (
	Normal  Style = iota // upright glyphs
	Oblique              // slanted versions of the upright glyphs
	Italic               // separately designed, slanted glyphs
)

// ParseStyle converts a style name to a Style.
// The comparison ignores case, and "regular" and "upright" are accepted as
// names for Normal.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "regular", "upright":
		return Normal, nil
	case "oblique":
		return Oblique, nil
	case "italic":
		return Italic, nil
	}
	return 0, fmt.Errorf("unknown font style %q", s)
}

func (s Style) String() string {
	switch s {
	case Normal:
		return "normal"
	case Oblique:
		return "oblique"
	case Italic:
		return "italic"
	default:
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
}

// IsSlanted returns true for the oblique and italic styles.
func (s Style) IsSlanted() bool {
	return s != Normal
}
