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

// Package manifest reads font catalogs from manifest files.
//
// A manifest lists font files together with their family name and style
// properties.  Manifests can be written in JSON, TOML or YAML.  In TOML, a
// manifest looks like this:
//
//	[[font]]
//	family = "Arial"
//	name = "Bold Italic"
//	weight = "bold"
//	style = "italic"
//	width = 5
//	path = "/usr/share/fonts/arialbi.ttf"
//
//	[font.info]
//	full_name = "Arial Bold Italic"
//	postscript_name = "Arial-BoldItalicMT"
//
// The order of the entries determines the order of families and variants
// in the resulting catalog.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/optional"
)

// Format is the file format of a manifest.
type Format int

// These are the supported manifest formats.
const (
	JSON Format = iota + 1
	TOML
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath determines the manifest format from a file name extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("manifest: cannot determine format of %q", path)
}

// Error describes a problem with one entry of a manifest.
type Error struct {
	Entry  int // index of the entry in the font list
	Reason string
}

func (err *Error) Error() string {
	return fmt.Sprintf("manifest: font entry %d: %s", err.Entry, err.Reason)
}

type manifest struct {
	Font []entry `json:"font" toml:"font" yaml:"font"`
}

type entry struct {
	Family      string            `json:"family" toml:"family" yaml:"family"`
	FamilyNames map[string]string `json:"family_names" toml:"family_names" yaml:"family_names"`
	Name        string            `json:"name" toml:"name" yaml:"name"`
	Weight      any               `json:"weight" toml:"weight" yaml:"weight"`
	Style       string            `json:"style" toml:"style" yaml:"style"`
	Width       any               `json:"width" toml:"width" yaml:"width"`
	OpticalSize *uint             `json:"optical_size" toml:"optical_size" yaml:"optical_size"`
	Slant       *int              `json:"slant" toml:"slant" yaml:"slant"`
	Path        string            `json:"path" toml:"path" yaml:"path"`
	Info        map[string]string `json:"info" toml:"info" yaml:"info"`
}

// Decode reads a manifest from r.
//
// Problems which only affect part of an entry, like an unknown information
// key, are reported in the returned list of warnings.  Entries without a
// family name or with an invalid weight, width or style make Decode fail
// with an *Error.
func Decode(r io.Reader, format Format) ([]fontmatch.Record, []string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var m manifest
	var warnings []string
	switch format {
	case JSON:
		err = json.Unmarshal(data, &m)
	case TOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &m)
		if err == nil {
			for _, key := range md.Undecoded() {
				warnings = append(warnings, fmt.Sprintf("unknown key %q", key.String()))
			}
		}
	case YAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, nil, fmt.Errorf("manifest: unsupported format %s", format)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: %s: %w", format, err)
	}

	recs := make([]fontmatch.Record, 0, len(m.Font))
	for i := range m.Font {
		rec, ww, err := m.Font[i].record(i)
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, rec)
		warnings = append(warnings, ww...)
	}
	return recs, warnings, nil
}

func (e *entry) record(idx int) (fontmatch.Record, []string, error) {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings,
			fmt.Sprintf("font entry %d: ", idx)+fmt.Sprintf(format, args...))
	}

	rec := fontmatch.Record{
		FamilyName: strings.TrimSpace(e.Family),
		Name:       e.Name,
		FilePath:   e.Path,
	}
	if rec.FamilyName == "" {
		return rec, nil, &Error{Entry: idx, Reason: "missing family name"}
	}
	if rec.FilePath == "" {
		warn("missing path")
	}

	if len(e.FamilyNames) > 0 {
		rec.FamilyNames = make(map[language.Tag]string, len(e.FamilyNames))
		for _, tagString := range slices.Sorted(maps.Keys(e.FamilyNames)) {
			name := e.FamilyNames[tagString]
			tag, err := language.Parse(tagString)
			if err != nil {
				warn("invalid language tag %q", tagString)
				continue
			}
			rec.FamilyNames[tag] = name
		}
	}

	if e.Weight != nil {
		w, err := parseWeight(e.Weight)
		if err != nil {
			return rec, nil, &Error{Entry: idx, Reason: err.Error()}
		}
		if w < 1 || w > 1000 {
			warn("weight %d outside the range 1 to 1000", w)
		}
		rec.Weight = w
	}

	if e.Style != "" {
		s, err := fontmatch.ParseStyle(e.Style)
		if err != nil {
			return rec, nil, &Error{Entry: idx, Reason: err.Error()}
		}
		rec.Style = s
	}

	if e.Width != nil {
		w, err := parseWidth(e.Width)
		if err != nil {
			return rec, nil, &Error{Entry: idx, Reason: err.Error()}
		}
		rec.Width = optional.New(w)
	}

	if e.OpticalSize != nil {
		rec.OpticalSize = optional.New(*e.OpticalSize)
	}
	if e.Slant != nil {
		rec.Slant = optional.New(*e.Slant)
	}

	if len(e.Info) > 0 {
		info := make(map[fontmatch.InfoKey]string, len(e.Info))
		for _, name := range slices.Sorted(maps.Keys(e.Info)) {
			key, err := fontmatch.ParseInfoKey(name)
			if err != nil {
				warn("%v", err)
				continue
			}
			info[key] = e.Info[name]
		}
		rec.Info = fontmatch.NewInformation(info)
	}

	return rec, warnings, nil
}

// ReadFile reads the manifest stored in the named file.  The format is
// determined by the file name extension.  Relative font paths are
// interpreted relative to the directory containing the manifest.
func ReadFile(path string) ([]fontmatch.Record, []string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer fd.Close()

	recs, warnings, err := Decode(fd, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range recs {
		p := recs[i].FilePath
		if p == "" || filepath.IsAbs(p) || strings.Contains(p, ":") {
			continue
		}
		recs[i].FilePath = filepath.Join(dir, p)
	}
	return recs, warnings, nil
}

// Load reads the manifest stored in the named file and builds a catalog.
func Load(path string, opt *fontmatch.Options) (*fontmatch.Catalog, []string, error) {
	recs, warnings, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return fontmatch.FromRecords(recs, opt), warnings, nil
}
