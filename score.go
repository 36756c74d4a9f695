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
	"seehuhn.de/go/sfnt/os2"
)

// Costs used by Score.  One unit of distance corresponds to a weight
// difference of one.
const (
	// StyleMismatchPenalty is the distance between different styles.
	// This exceeds the largest possible weight difference, so that a
	// requested style always takes precedence over weight.
	StyleMismatchPenalty = 1000

	// WidthStepCost is the distance between adjacent width classes.
	WidthStepCost = 100

	// OpticalSizeCost is the distance per point of optical size.
	OpticalSizeCost = 10

	// SlantCost is the distance per degree of slant angle.
	SlantCost = 10
)

const (
	minWeight = 1
	maxWeight = 1000

	maxOpticalSize = 1<<16 - 1

	minSlant = -90
	maxSlant = 90
)

// Score computes the distance between a query and a font variant.
// The result is non-negative, and 0 means that the variant matches every
// axis constrained by the query.  Axes which the query leaves unset
// contribute nothing, and neither do width, optical size or slant when the
// variant does not record a value.
//
// Query values outside the valid range of an axis are clamped to the range,
// so that for example a weight of 5000 selects the heaviest variant.
// Optical sizes are limited to 65535 points and slant angles to the range
// -90 to 90 degrees.
func Score(q Query, v *Variant) int {
	d := 0

	if w, ok := q.Weight.Get(); ok {
		d += absDiff(clamp(int(w), minWeight, maxWeight),
			clamp(int(v.weight), minWeight, maxWeight))
	}

	if s, ok := q.Style.Get(); ok {
		d += styleDistance(s, v.style)
	} else if italic, ok := q.Italic.Get(); ok {
		if italic != v.style.IsSlanted() {
			d += StyleMismatchPenalty
		}
	}

	if qw, ok := q.Width.Get(); ok {
		if vw, ok := v.width.Get(); ok {
			d += absDiff(clampWidth(qw), clampWidth(vw)) * WidthStepCost
		}
	}

	if qs, ok := q.OpticalSize.Get(); ok {
		if vs, ok := v.opticalSize.Get(); ok {
			d += absDiff(clampOpticalSize(qs), clampOpticalSize(vs)) * OpticalSizeCost
		}
	}

	if qa, ok := q.Slant.Get(); ok {
		if va, ok := v.slant.Get(); ok {
			d += absDiff(clamp(qa, minSlant, maxSlant),
				clamp(va, minSlant, maxSlant)) * SlantCost
		}
	}

	return d
}

func styleDistance(want, have Style) int {
	switch want {
	case Normal, Oblique, Italic:
		if want == have {
			return 0
		}
		return StyleMismatchPenalty
	default:
		panic("unexpected font style " + want.String())
	}
}

func clampWidth(w os2.Width) int {
	return clamp(int(w), int(os2.WidthUltraCondensed), int(os2.WidthUltraExpanded))
}

func clampOpticalSize(sz uint) int {
	return int(min(sz, maxOpticalSize))
}

func clamp(x, lo, hi int) int {
	return min(max(x, lo), hi)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
