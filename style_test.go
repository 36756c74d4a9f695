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

import "testing"

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in   string
		want Style
	}{
		{"normal", Normal},
		{"Regular", Normal},
		{"upright", Normal},
		{"OBLIQUE", Oblique},
		{" italic", Italic},
	}
	for _, c := range cases {
		got, err := ParseStyle(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: expected %s, got %s", c.in, c.want, got)
		}
	}

	if _, err := ParseStyle("slanted"); err == nil {
		t.Error("unknown style accepted")
	}
}

func TestStyleString(t *testing.T) {
	for _, s := range []Style{Normal, Oblique, Italic} {
		parsed, err := ParseStyle(s.String())
		if err != nil || parsed != s {
			t.Errorf("%d: round trip gave %s, %v", s, parsed, err)
		}
	}
	if Style(5).String() != "Style(5)" {
		t.Errorf("wrong string for invalid style: %q", Style(5).String())
	}
	if Normal.IsSlanted() || !Oblique.IsSlanted() || !Italic.IsSlanted() {
		t.Error("IsSlanted is wrong")
	}
	if Normal != 0 || Oblique != 1 || Italic != 2 {
		t.Error("style values do not follow DWRITE_FONT_STYLE")
	}
}
