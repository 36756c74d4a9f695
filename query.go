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

	"seehuhn.de/go/fontmatch/optional"
	"seehuhn.de/go/sfnt/os2"
)

// Query describes which font variant a caller is looking for.
// All fields are optional; unset fields do not influence the ranking.
// The zero Query matches every variant equally well.
type Query struct {
	Weight      optional.Value[os2.Weight]
	Style       optional.Value[Style]
	Width       optional.Value[os2.Width]
	OpticalSize optional.Value[uint]
	Slant       optional.Value[int]

	// Italic, if set, asks for a slanted (true) or an upright (false)
	// variant, without distinguishing between italic and oblique.
	// Italic is ignored if Style is set.
	Italic optional.Value[bool]

	// Names holds exact-string filters for Catalog.SearchQuery.
	// These are never used for scoring.
	Names map[InfoKey]string
}

// IsEmpty returns true if the query does not constrain any style axis.
func (q Query) IsEmpty() bool {
	return !q.Weight.IsSet() && !q.Style.IsSet() && !q.Width.IsSet() &&
		!q.OpticalSize.IsSet() && !q.Slant.IsSet() && !q.Italic.IsSet()
}

func (q Query) String() string {
	var parts []string
	if w, ok := q.Weight.Get(); ok {
		parts = append(parts, fmt.Sprintf("weight=%d", w))
	}
	if s, ok := q.Style.Get(); ok {
		parts = append(parts, "style="+s.String())
	} else if it, ok := q.Italic.Get(); ok {
		parts = append(parts, fmt.Sprintf("italic=%t", it))
	}
	if w, ok := q.Width.Get(); ok {
		parts = append(parts, fmt.Sprintf("width=%d", w))
	}
	if sz, ok := q.OpticalSize.Get(); ok {
		parts = append(parts, fmt.Sprintf("optical_size=%d", sz))
	}
	if s, ok := q.Slant.Get(); ok {
		parts = append(parts, fmt.Sprintf("slant=%d", s))
	}
	for _, key := range AllInfoKeys {
		if val, ok := q.Names[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", key, val))
		}
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " ")
}
