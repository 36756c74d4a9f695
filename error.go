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
	"errors"
	"strconv"
)

var (
	// ErrEmptyFamily is returned when a best match is requested from a
	// family without variants.
	ErrEmptyFamily = errors.New("font family has no variants")

	// ErrNoFilters is returned by Catalog.Search if no filter conditions
	// are given.
	ErrNoFilters = errors.New("no filter conditions given")
)

// FamilyNotFoundError is returned when a family name is not in the catalog.
type FamilyNotFoundError struct {
	Name string
}

func (err *FamilyNotFoundError) Error() string {
	return "unknown font family " + strconv.Quote(err.Name)
}

// IsFamilyNotFound returns true if err is, or wraps, a FamilyNotFoundError.
func IsFamilyNotFound(err error) bool {
	var e *FamilyNotFoundError
	return errors.As(err, &e)
}

// IndexError indicates an out of range variant or family index.
type IndexError struct {
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return "index " + strconv.Itoa(err.Index) + " out of range [0, " +
		strconv.Itoa(err.Len) + ")"
}

// UnsearchableKeyError is returned when a name search uses an information
// key which cannot be searched for.
type UnsearchableKeyError struct {
	Key InfoKey
}

func (err *UnsearchableKeyError) Error() string {
	return strconv.Quote(err.Key.String()) + " cannot be used for name searches"
}
