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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/optional"
	"seehuhn.de/go/sfnt/os2"
)

const testTOML = `
[[font]]
family = "Arial"
name = "Regular"
path = "/fonts/arial.ttf"

[[font]]
family = "Arial"
name = "Bold Italic"
weight = "bold"
style = "italic"
width = 5
slant = -12
path = "/fonts/arialbi.ttf"

[font.info]
full_name = "Arial Bold Italic"
postscript_name = "Arial-BoldItalicMT"

[[font]]
family = "Meiryo"
family_names = { ja = "メイリオ", en-US = "Meiryo" }
name = "Regular"
weight = 400
width = "semi-condensed"
optical_size = 12
path = "/fonts/meiryo.ttc"
`

const testJSON = `{
  "font": [
    {"family": "Arial", "name": "Regular", "path": "/fonts/arial.ttf"},
    {
      "family": "Arial", "name": "Bold Italic", "weight": "bold",
      "style": "italic", "width": 5, "slant": -12,
      "path": "/fonts/arialbi.ttf",
      "info": {
        "full_name": "Arial Bold Italic",
        "postscript_name": "Arial-BoldItalicMT"
      }
    },
    {
      "family": "Meiryo", "family_names": {"ja": "メイリオ", "en-US": "Meiryo"},
      "name": "Regular", "weight": 400, "width": "semi-condensed",
      "optical_size": 12, "path": "/fonts/meiryo.ttc"
    }
  ]
}`

const testYAML = `
font:
  - family: Arial
    name: Regular
    path: /fonts/arial.ttf
  - family: Arial
    name: Bold Italic
    weight: bold
    style: italic
    width: 5
    slant: -12
    path: /fonts/arialbi.ttf
    info:
      full_name: Arial Bold Italic
      postscript_name: Arial-BoldItalicMT
  - family: Meiryo
    family_names:
      ja: メイリオ
      en-US: Meiryo
    name: Regular
    weight: 400
    width: semi-condensed
    optical_size: 12
    path: /fonts/meiryo.ttc
`

// summary is a comparable digest of a record.
type summary struct {
	Family      string
	Name        string
	Weight      os2.Weight
	Style       fontmatch.Style
	Width       int // 0 if unset
	OpticalSize string
	Slant       string
	Path        string
	Info        map[fontmatch.InfoKey]string
	Names       int
}

func summarize(recs []fontmatch.Record) []summary {
	var res []summary
	for _, rec := range recs {
		width, _ := rec.Width.Get()
		res = append(res, summary{
			Family:      rec.FamilyName,
			Name:        rec.Name,
			Weight:      rec.Weight,
			Style:       rec.Style,
			Width:       int(width),
			OpticalSize: rec.OpticalSize.String(),
			Slant:       rec.Slant.String(),
			Path:        rec.FilePath,
			Info:        rec.Info.Map(),
			Names:       len(rec.FamilyNames),
		})
	}
	return res
}

func TestDecode(t *testing.T) {
	want := []summary{
		{
			Family: "Arial", Name: "Regular",
			OpticalSize: "unset", Slant: "unset",
			Path: "/fonts/arial.ttf",
			Info: map[fontmatch.InfoKey]string{},
		},
		{
			Family: "Arial", Name: "Bold Italic",
			Weight: os2.WeightBold, Style: fontmatch.Italic,
			Width: 5, OpticalSize: "unset", Slant: "-12",
			Path: "/fonts/arialbi.ttf",
			Info: map[fontmatch.InfoKey]string{
				fontmatch.FullName:       "Arial Bold Italic",
				fontmatch.PostScriptName: "Arial-BoldItalicMT",
			},
		},
		{
			Family: "Meiryo", Name: "Regular",
			Weight: 400,
			Width:  4, OpticalSize: "12", Slant: "unset",
			Path:  "/fonts/meiryo.ttc",
			Info:  map[fontmatch.InfoKey]string{},
			Names: 2,
		},
	}

	cases := []struct {
		format Format
		input  string
	}{
		{TOML, testTOML},
		{JSON, testJSON},
		{YAML, testYAML},
	}
	for _, c := range cases {
		t.Run(c.format.String(), func(t *testing.T) {
			recs, warnings, err := Decode(strings.NewReader(c.input), c.format)
			if err != nil {
				t.Fatal(err)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if d := cmp.Diff(want, summarize(recs)); d != "" {
				t.Errorf("wrong records (-want +got):\n%s", d)
			}
			if name := recs[2].FamilyNames[language.Japanese]; name != "メイリオ" {
				t.Errorf("wrong Japanese name %q", name)
			}
		})
	}
}

func TestDecodeCatalog(t *testing.T) {
	recs, _, err := Decode(strings.NewReader(testYAML), YAML)
	if err != nil {
		t.Fatal(err)
	}
	c := fontmatch.FromRecords(recs, &fontmatch.Options{Locale: language.Japanese})
	f, err := c.LookupFamily("メイリオ")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "メイリオ" {
		t.Errorf("wrong family name %q", f.Name())
	}

	f, _ = c.LookupFamily("arial")
	v, err := f.BestMatch(fontmatch.Query{Italic: optional.New(true)})
	if err != nil {
		t.Fatal(err)
	}
	if v.FilePath() != "/fonts/arialbi.ttf" {
		t.Errorf("wrong best match %s", v)
	}
}

func TestDecodeWarnings(t *testing.T) {
	input := `
[[font]]
family = "X"
weight = 1200
colour = "red"
family_names = { "not a tag!" = "Y" }

[font.info]
colour = "red"
`
	recs, warnings, err := Decode(strings.NewReader(input), TOML)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Weight != 1200 {
		t.Fatalf("wrong records %v", recs)
	}
	// unknown key, missing path, bad tag, weight range, unknown info key
	if len(warnings) != 5 {
		t.Errorf("expected 5 warnings, got %d: %q", len(warnings), warnings)
	}
}

// TestDecodeWarningOrder checks that warnings come out in the same order
// every time.
func TestDecodeWarningOrder(t *testing.T) {
	input := `
[[font]]
family = "X"
path = "x.ttf"
family_names = { "zz!" = "Z", "aa!" = "A", "mm!" = "M" }

[font.info]
zeta = "1"
alpha = "2"
mid = "3"
`
	want := []string{
		`font entry 0: invalid language tag "aa!"`,
		`font entry 0: invalid language tag "mm!"`,
		`font entry 0: invalid language tag "zz!"`,
		`font entry 0: "alpha" isn't a known font information key`,
		`font entry 0: "mid" isn't a known font information key`,
		`font entry 0: "zeta" isn't a known font information key`,
	}
	for range 10 {
		_, warnings, err := Decode(strings.NewReader(input), TOML)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, warnings); d != "" {
			t.Fatalf("wrong warnings (-want +got):\n%s", d)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		entry int
	}{
		{"no family", `{"font": [{"name": "x"}]}`, 0},
		{"bad style", `{"font": [{"family": "A"}, {"family": "A", "style": "slanted"}]}`, 1},
		{"bad weight", `{"font": [{"family": "A", "weight": true}]}`, 0},
		{"fractional weight", `{"font": [{"family": "A", "weight": 400.5}]}`, 0},
		{"bad width", `{"font": [{"family": "A", "width": 12}]}`, 0},
		{"bad width name", `{"font": [{"family": "A", "width": "narrowish"}]}`, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(c.input), JSON)
			var mErr *Error
			if !errors.As(err, &mErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if mErr.Entry != c.entry {
				t.Errorf("expected entry %d, got %d", c.entry, mErr.Entry)
			}
		})
	}

	if _, _, err := Decode(strings.NewReader("{"), JSON); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, _, err := Decode(strings.NewReader(""), Format(0)); err == nil {
		t.Error("missing format accepted")
	}
}

func TestParseWeight(t *testing.T) {
	cases := []struct {
		in   string
		want os2.Weight
	}{
		{"100", 100},
		{" 650 ", 650},
		{"Bold", os2.WeightBold},
		{"semi-bold", 600},
		{"Extra Light", 200},
		{"regular", os2.WeightNormal},
		{"black", 900},
	}
	for _, c := range cases {
		got, err := ParseWeight(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestParseWidth(t *testing.T) {
	cases := []struct {
		in   string
		want os2.Width
	}{
		{"1", os2.WidthUltraCondensed},
		{"condensed", os2.WidthCondensed},
		{"Semi_Expanded", os2.WidthSemiExpanded},
		{"ultra-expanded", os2.WidthUltraExpanded},
	}
	for _, c := range cases {
		got, err := ParseWidth(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: expected %d, got %d", c.in, c.want, got)
		}
	}
	for _, in := range []string{"0", "10", "wide"} {
		if _, err := ParseWidth(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"fonts.json":      JSON,
		"/etc/fonts.TOML": TOML,
		"fonts.yaml":      YAML,
		"fonts.yml":       YAML,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("fonts.conf"); err == nil {
		t.Error("unknown extension accepted")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fonts.yaml")
	input := `
font:
  - family: Go
    path: goregular.ttf
  - family: Go
    weight: bold
    path: gofont:gobold
  - family: Go
    style: italic
    path: /abs/goitalic.ttf
`
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	recs, _, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, rec := range recs {
		paths = append(paths, rec.FilePath)
	}
	want := []string{filepath.Join(dir, "goregular.ttf"), "gofont:gobold", "/abs/goitalic.ttf"}
	if d := cmp.Diff(want, paths); d != "" {
		t.Errorf("wrong paths (-want +got):\n%s", d)
	}

	c, _, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 || c.NumVariants() != 3 {
		t.Errorf("wrong catalog size %d/%d", c.Len(), c.NumVariants())
	}

	if _, _, err := ReadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
