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

package optional

import "testing"

func TestZeroValue(t *testing.T) {
	var x Value[int]
	if _, ok := x.Get(); ok {
		t.Error("zero value should not be set")
	}
	if x.IsSet() {
		t.Error("zero value should not be set")
	}
	if x.Or(7) != 7 {
		t.Error("Or should return the default for unset values")
	}
}

// TestSetZero checks that a value of 0 is distinguishable from no value.
func TestSetZero(t *testing.T) {
	x := New(0)
	v, ok := x.Get()
	if !ok {
		t.Error("should be set")
	}
	if v != 0 {
		t.Errorf("wrong value %d", v)
	}
	if x.Or(7) != 0 {
		t.Error("Or should return the stored value")
	}
}

func TestClear(t *testing.T) {
	x := New("x")
	x.Clear()
	if _, ok := x.Get(); ok {
		t.Error("should not be set after clear")
	}
	if x.val != "" {
		t.Error("clear should reset the stored value")
	}
}

func TestEqual(t *testing.T) {
	var unset1, unset2 Value[bool]
	true1 := New(true)
	true2 := New(true)
	false1 := New(false)

	if !unset1.Equal(unset2) {
		t.Error("two unset values should be equal")
	}
	if !true1.Equal(true2) {
		t.Error("two true values should be equal")
	}
	if unset1.Equal(false1) {
		t.Error("unset and false should not be equal")
	}
	if true1.Equal(false1) {
		t.Error("true and false should not be equal")
	}
}

func TestString(t *testing.T) {
	var x Value[uint]
	if s := x.String(); s != "unset" {
		t.Errorf("wrong string %q", s)
	}
	x.Set(12)
	if s := x.String(); s != "12" {
		t.Errorf("wrong string %q", s)
	}
}
