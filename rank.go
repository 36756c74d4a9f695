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
	"cmp"
	"slices"
)

// Match is a variant together with its distance from a query.
type Match struct {
	Variant *Variant
	Score   int
}

// Rank scores the variants against q and sorts them by increasing score.
// Variants with equal scores keep their relative order.
func Rank(variants []*Variant, q Query) []Match {
	res := make([]Match, len(variants))
	for i, v := range variants {
		res[i] = Match{Variant: v, Score: Score(q, v)}
	}
	slices.SortStableFunc(res, func(a, b Match) int {
		return cmp.Compare(a.Score, b.Score)
	})
	return res
}

// Rank returns all variants of the family, ordered by how well they match q.
func (f *Family) Rank(q Query) []Match {
	return Rank(f.variants, q)
}

// BestMatch returns the variant which best matches q.  If several variants
// are equally good, the one which comes first in enumeration order is used.
// ErrEmptyFamily is returned if the family has no variants.
func (f *Family) BestMatch(q Query) (*Variant, error) {
	var best *Variant
	bestScore := 0
	for _, v := range f.variants {
		score := Score(q, v)
		if best == nil || score < bestScore {
			best = v
			bestScore = score
		}
	}
	if best == nil {
		return nil, ErrEmptyFamily
	}
	return best, nil
}

// MatchingVariants returns all variants of the family, in order of how well
// they match q.  The best match comes first.  No variant is left out.
func (f *Family) MatchingVariants(q Query) []*Variant {
	ranked := f.Rank(q)
	res := make([]*Variant, len(ranked))
	for i, m := range ranked {
		res[i] = m.Variant
	}
	return res
}

// MatchesWithin returns the ranked variants whose score is at most
// maxScore.
func (f *Family) MatchesWithin(q Query, maxScore int) []Match {
	ranked := f.Rank(q)
	n := slices.IndexFunc(ranked, func(m Match) bool {
		return m.Score > maxScore
	})
	if n < 0 {
		return ranked
	}
	return ranked[:n]
}
