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

package manifest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt/os2"
)

var weightNames = map[string]os2.Weight{
	"thin":       100,
	"hairline":   100,
	"extralight": 200,
	"ultralight": 200,
	"light":      300,
	"normal":     os2.WeightNormal,
	"regular":    os2.WeightNormal,
	"book":       os2.WeightNormal,
	"medium":     os2.WeightMedium,
	"semibold":   600,
	"demibold":   600,
	"bold":       os2.WeightBold,
	"extrabold":  os2.WeightExtraBold,
	"ultrabold":  os2.WeightExtraBold,
	"black":      900,
	"heavy":      900,
}

var widthNames = map[string]os2.Width{
	"ultracondensed": os2.WidthUltraCondensed,
	"extracondensed": os2.WidthExtraCondensed,
	"condensed":      os2.WidthCondensed,
	"semicondensed":  os2.WidthSemiCondensed,
	"normal":         os2.WidthNormal,
	"medium":         os2.WidthNormal,
	"semiexpanded":   os2.WidthSemiExpanded,
	"expanded":       os2.WidthExpanded,
	"extraexpanded":  os2.WidthExtraExpanded,
	"ultraexpanded":  os2.WidthUltraExpanded,
}

var errNotInteger = errors.New("not an integer")

// ParseWeight converts a weight given as a number or as a name like
// "semibold" to an os2.Weight.
func ParseWeight(s string) (os2.Weight, error) {
	return parseWeight(s)
}

// ParseWidth converts a width class given as a number between 1 and 9 or
// as a name like "condensed" to an os2.Width.
func ParseWidth(s string) (os2.Width, error) {
	return parseWidth(s)
}

func parseWeight(v any) (os2.Weight, error) {
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			v = n
		} else {
			if w, ok := weightNames[normalizeName(s)]; ok {
				return w, nil
			}
			return 0, fmt.Errorf("invalid weight %q", s)
		}
	}
	n, err := toInt(v)
	if err != nil || n < 0 || n > math.MaxUint16 {
		return 0, fmt.Errorf("invalid weight %v", v)
	}
	return os2.Weight(n), nil
}

func parseWidth(v any) (os2.Width, error) {
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			v = n
		} else {
			if w, ok := widthNames[normalizeName(s)]; ok {
				return w, nil
			}
			return 0, fmt.Errorf("invalid width %q", s)
		}
	}
	n, err := toInt(v)
	if err != nil || n < int(os2.WidthUltraCondensed) || n > int(os2.WidthUltraExpanded) {
		return 0, fmt.Errorf("invalid width %v", v)
	}
	return os2.Width(n), nil
}

// toInt converts the numeric types produced by the JSON, TOML and YAML
// decoders to int.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		if x > math.MaxInt32 {
			return 0, errNotInteger
		}
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			return 0, errNotInteger
		}
		return int(x), nil
	default:
		return 0, errNotInteger
	}
}

// normalizeName lower-cases s and removes spaces, hyphens and underscores,
// so that "Semi-Bold", "semi bold" and "SemiBold" are all the same.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
