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

// Package optional implements values which may be absent.
//
// Font metadata frequently has fields which only some font formats provide,
// for example the width class or the optical size.  For these fields a zero
// value can be meaningful, so absence needs to be recorded separately.
package optional

import "fmt"

// Value represents a value of type T which may or may not be set.
// The zero Value is unset.
type Value[T comparable] struct {
	isSet bool
	val   T
}

// New creates a new Value which is set to v.
func New[T comparable](v T) Value[T] {
	var x Value[T]
	x.Set(v)
	return x
}

// Get returns the value and whether it is set.
func (x Value[T]) Get() (T, bool) {
	return x.val, x.isSet
}

// IsSet reports whether the value is set.
func (x Value[T]) IsSet() bool {
	return x.isSet
}

// Or returns the value if it is set, and def otherwise.
func (x Value[T]) Or(def T) T {
	if !x.isSet {
		return def
	}
	return x.val
}

// Set sets the value.
func (x *Value[T]) Set(v T) {
	x.isSet = true
	x.val = v
}

// Clear clears the value.
func (x *Value[T]) Clear() {
	var zero T
	x.isSet = false
	x.val = zero
}

// Equal compares two Values for equality.
// Two unset values are equal.
func (x Value[T]) Equal(other Value[T]) bool {
	return x.isSet == other.isSet && x.val == other.val
}

// String formats the value, using "unset" for absent values.
func (x Value[T]) String() string {
	if !x.isSet {
		return "unset"
	}
	return fmt.Sprint(x.val)
}
