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

// Package gofont provides the Go font family as a font catalog.
//
// The fonts are compiled into the binary, so the catalog is always
// available, even on systems without any installed fonts.  The file path of
// every variant has the form "gofont:<name>"; use [Open] to get the font
// data for such a path.
package gofont

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/optional"
	"seehuhn.de/go/sfnt"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular         Font = iota // Go Regular
	Bold                        // Go Bold
	BoldItalic                  // Go Bold Italic
	Italic                      // Go Italic
	Medium                      // Go Medium
	MediumItalic                // Go Medium Italic
	Smallcaps                   // Go Smallcaps
	SmallcapsItalic             // Go Smallcaps Italic
	Mono                        // Go Mono
	MonoBold                    // Go Mono Bold
	MonoBoldItalic              // Go Mono Bold Italic
	MonoItalic                  // Go Mono Italic
)

// PathPrefix is the prefix of the file paths of the Go fonts.
const PathPrefix = "gofont:"

type fontData struct {
	family string
	name   string
	key    string
	ttf    []byte
}

var fonts = map[Font]*fontData{
	Regular:         {"Go", "Regular", "goregular", goregular.TTF},
	Bold:            {"Go", "Bold", "gobold", gobold.TTF},
	BoldItalic:      {"Go", "Bold Italic", "gobolditalic", gobolditalic.TTF},
	Italic:          {"Go", "Italic", "goitalic", goitalic.TTF},
	Medium:          {"Go", "Medium", "gomedium", gomedium.TTF},
	MediumItalic:    {"Go", "Medium Italic", "gomediumitalic", gomediumitalic.TTF},
	Smallcaps:       {"Go Smallcaps", "Regular", "gosmallcaps", gosmallcaps.TTF},
	SmallcapsItalic: {"Go Smallcaps", "Italic", "gosmallcapsitalic", gosmallcapsitalic.TTF},
	Mono:            {"Go Mono", "Regular", "gomono", gomono.TTF},
	MonoBold:        {"Go Mono", "Bold", "gomonobold", gomonobold.TTF},
	MonoBoldItalic:  {"Go Mono", "Bold Italic", "gomonobolditalic", gomonobolditalic.TTF},
	MonoItalic:      {"Go Mono", "Italic", "gomonoitalic", gomonoitalic.TTF},
}

// All contains all the Go font family fonts available in this package,
// in catalog order.
var All = []Font{
	Regular,
	Italic,
	Medium,
	MediumItalic,
	Bold,
	BoldItalic,
	Mono,
	MonoItalic,
	MonoBold,
	MonoBoldItalic,
	Smallcaps,
	SmallcapsItalic,
}

func (f Font) String() string {
	d, ok := fonts[f]
	if !ok {
		return fmt.Sprintf("gofont.Font(%d)", int(f))
	}
	return d.family + " " + d.name
}

// Path returns the file path used for the font in catalogs.
func (f Font) Path() string {
	d, ok := fonts[f]
	if !ok {
		return ""
	}
	return PathPrefix + d.key
}

// TTF returns the TrueType data of the font.
func (f Font) TTF() ([]byte, error) {
	d, ok := fonts[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}
	return d.ttf, nil
}

// Open returns the font data for a path returned by [Font.Path].
func Open(path string) ([]byte, error) {
	key, ok := strings.CutPrefix(path, PathPrefix)
	if ok {
		for _, f := range All {
			if fonts[f].key == key {
				return fonts[f].ttf, nil
			}
		}
	}
	return nil, fmt.Errorf("gofont: %q is not a Go font path", path)
}

// Records returns one record for each of the Go fonts, in the order given
// by [All].  The font files are parsed only once; the returned slice is a
// fresh copy which the caller may modify.
func Records() ([]fontmatch.Record, error) {
	recs, err := loadRecords()
	if err != nil {
		return nil, err
	}
	return slices.Clone(recs), nil
}

// Catalog returns a catalog containing the Go fonts.
func Catalog(opt *fontmatch.Options) (*fontmatch.Catalog, error) {
	recs, err := loadRecords()
	if err != nil {
		return nil, err
	}
	return fontmatch.FromRecords(recs, opt), nil
}

var loadRecords = sync.OnceValues(func() ([]fontmatch.Record, error) {
	recs := make([]fontmatch.Record, 0, len(All))
	for _, f := range All {
		rec, err := f.record()
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
})

func (f Font) record() (fontmatch.Record, error) {
	d := fonts[f]
	info, err := sfnt.Read(bytes.NewReader(d.ttf))
	if err != nil {
		return fontmatch.Record{}, fmt.Errorf("gofont: %s: %w", f, err)
	}

	rec := fontmatch.Record{
		FamilyName: d.family,
		Name:       d.name,
		Weight:     info.Weight,
		FilePath:   f.Path(),
	}
	if info.Width != 0 {
		rec.Width = optional.New(info.Width)
	}
	switch {
	case info.IsOblique:
		rec.Style = fontmatch.Oblique
	case info.IsItalic, info.ItalicAngle != 0:
		rec.Style = fontmatch.Italic
	}
	if info.ItalicAngle != 0 {
		rec.Slant = optional.New(int(math.Round(info.ItalicAngle)))
	}

	m := map[fontmatch.InfoKey]string{
		fontmatch.Win32FamilyNames:       d.family,
		fontmatch.TypographicFamilyNames: d.family,
		fontmatch.FullName:               f.String(),
		fontmatch.PostScriptName:         info.PostScriptName(),
		fontmatch.Versions:               info.Version.String(),
	}
	if info.Copyright != "" {
		m[fontmatch.Copyright] = info.Copyright
	}
	if info.Trademark != "" {
		m[fontmatch.Trademark] = info.Trademark
	}
	rec.Info = fontmatch.NewInformation(m)

	return rec, nil
}
