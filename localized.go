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
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// LocalizedName is a string together with the language it is written in.
type LocalizedName struct {
	Lang language.Tag
	Text string
}

// LocalizedNames is an immutable list of localized versions of a name.
type LocalizedNames struct {
	names   []LocalizedName
	matcher language.Matcher
}

// NewLocalizedNames creates a LocalizedNames value from a map.
// Entries with an empty text are ignored.  The entries are stored in the
// order of their BCP 47 tags, so that the result does not depend on map
// iteration order.
func NewLocalizedNames(m map[language.Tag]string) LocalizedNames {
	var names []LocalizedName
	for tag, text := range m {
		if text == "" {
			continue
		}
		names = append(names, LocalizedName{Lang: tag, Text: text})
	}
	return newLocalizedNames(names)
}

func newLocalizedNames(names []LocalizedName) LocalizedNames {
	if len(names) == 0 {
		return LocalizedNames{}
	}
	slices.SortStableFunc(names, func(a, b LocalizedName) int {
		return strings.Compare(a.Lang.String(), b.Lang.String())
	})
	tags := make([]language.Tag, len(names))
	for i, n := range names {
		tags[i] = n.Lang
	}
	return LocalizedNames{
		names:   names,
		matcher: language.NewMatcher(tags),
	}
}

// Len returns the number of localized versions.
func (ln LocalizedNames) Len() int {
	return len(ln.names)
}

// All returns a copy of the localized versions, ordered by language tag.
func (ln LocalizedNames) All() []LocalizedName {
	return slices.Clone(ln.names)
}

// Match returns the version which best fits the preferred languages,
// listed in order of preference.  The second return value is false if none
// of the versions is a reasonable match.
func (ln LocalizedNames) Match(prefs ...language.Tag) (string, bool) {
	if len(ln.names) == 0 || len(prefs) == 0 {
		return "", false
	}
	_, idx, conf := ln.matcher.Match(prefs...)
	if conf == language.No {
		return "", false
	}
	return ln.names[idx].Text, true
}

// Best returns the version which best fits the preferred languages.
// If no version matches, the American English version is used, and
// if this does not exist either, the first version in tag order.
// An empty string is returned if there are no versions at all.
func (ln LocalizedNames) Best(prefs ...language.Tag) string {
	if len(ln.names) == 0 {
		return ""
	}
	if text, ok := ln.Match(prefs...); ok {
		return text
	}
	if text, ok := ln.Match(language.AmericanEnglish); ok {
		return text
	}
	return ln.names[0].Text
}
