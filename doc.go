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

// Package fontmatch selects font files by family name and style.
//
// The package does not find fonts on its own.  Some other piece of code,
// typically using the font enumeration facilities of the operating system,
// produces a list of [Record] values, one per font file.  [FromRecords]
// turns this list into a read-only [Catalog]:
//
//	c := fontmatch.FromRecords(records, nil)
//	family, err := c.LookupFamily("Arial")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A [Query] describes the wanted variant.  All fields of a query are
// optional:
//
//	q := fontmatch.Query{
//	    Weight: optional.New(os2.WeightBold),
//	    Style:  optional.New(fontmatch.Italic),
//	}
//	v, err := family.BestMatch(q)
//
// [Family.MatchingVariants] returns all variants of a family, best match
// first.  Variants are ranked by [Score], a weighted sum of the
// differences on the axes the query constrains.  Weight differences count
// one unit per weight step, while a style mismatch costs
// [StyleMismatchPenalty], more than any weight difference.  Ties are broken
// by the order in which the records were given to [FromRecords].
//
// [Catalog.SearchByName] and [Catalog.Search] find variants anywhere in the
// catalog by the exact value of name fields like the full name or the
// PostScript name.
//
// Catalogs never change after construction, and all methods can be used
// concurrently.  Programs which need to react to newly installed fonts
// build a new catalog and install it in a [Store].
package fontmatch
