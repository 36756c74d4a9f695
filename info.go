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
	"fmt"
	"iter"
	"slices"
	"strings"
)

// InfoKey identifies one of the informational strings stored in a font.
//
// The numeric values agree with DirectWrite's
// DWRITE_INFORMATIONAL_STRING_ID, so that keys can be passed through from
// platform code unchanged.
// https://learn.microsoft.com/en-us/windows/win32/api/dwrite/ne-dwrite-dwrite_informational_string_id
type InfoKey uint8

// These are the known information keys.
const (
	Copyright InfoKey = iota + 1
	Versions
	Trademark
	Manufacturer
	Designer
	DesignerURL
	Description
	VendorURL
	LicenseDescription
	LicenseInfoURL
	Win32FamilyNames
	Win32SubfamilyNames
	TypographicFamilyNames
	TypographicSubfamilyNames
	SampleText
	FullName
	PostScriptName
	PostScriptCIDName
	WeightStretchStyleFamilyName
	DesignScriptLanguageTag
	SupportedScriptLanguageTag

	numInfoKeys = int(SupportedScriptLanguageTag)
)

// keyNames lists the canonical name of every key, indexed by key-1.
var keyNames = [numInfoKeys]string{
	"copyright",
	"versions",
	"trademark",
	"manufacturer",
	"designer",
	"designer_url",
	"description",
	"vendor_url",
	"license_description",
	"license_info_url",
	"win32_family_names",
	"win32_subfamily_names",
	"typographic_family_names",
	"typographic_subfamily_names",
	"sample_text",
	"full_name",
	"postscript_name",
	"postscript_cid_name",
	"weight_stretch_style_family_name",
	"design_script_language_tag",
	"supported_script_language_tag",
}

// keyAliases holds older names used by DirectWrite for the same strings.
var keyAliases = map[string]InfoKey{
	"preferred_family_names":    TypographicFamilyNames,
	"preferred_subfamily_names": TypographicSubfamilyNames,
	"wws_family_name":           WeightStretchStyleFamilyName,
}

// AllInfoKeys lists every InfoKey in numeric order.
var AllInfoKeys = func() []InfoKey {
	res := make([]InfoKey, numInfoKeys)
	for i := range res {
		res[i] = InfoKey(i + 1)
	}
	return res
}()

// ParseInfoKey converts the name of an information key to an InfoKey.
func ParseInfoKey(name string) (InfoKey, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return InfoKey(i + 1), nil
		}
	}
	if key, ok := keyAliases[name]; ok {
		return key, nil
	}
	return 0, fmt.Errorf("%q isn't a known font information key", name)
}

// IsValid returns true if k is one of the known information keys.
func (k InfoKey) IsValid() bool {
	return k >= 1 && int(k) <= numInfoKeys
}

func (k InfoKey) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("InfoKey(%d)", uint8(k))
	}
	return keyNames[k-1]
}

// Searchable returns true if the key can be used for a catalog-wide name
// search.  These are the keys for which DirectWrite defines a font property
// id.
func (k InfoKey) Searchable() bool {
	switch k {
	case Win32FamilyNames, TypographicFamilyNames, FullName, PostScriptName,
		WeightStretchStyleFamilyName, DesignScriptLanguageTag,
		SupportedScriptLanguageTag:
		return true
	default:
		return false
	}
}

// Information holds the informational strings of a font variant.
// Every key is either absent or maps to a string.
//
// Information values are immutable.  The zero value contains no strings.
type Information struct {
	present uint32
	vals    [numInfoKeys]string
}

// NewInformation creates an Information value from a map.
// Invalid keys are ignored.  Empty strings are stored as present values.
func NewInformation(m map[InfoKey]string) Information {
	var info Information
	for key, val := range m {
		if !key.IsValid() {
			continue
		}
		info.present |= 1 << (key - 1)
		info.vals[key-1] = val
	}
	return info
}

// Get returns the string for the given key and whether it is present.
func (info Information) Get(key InfoKey) (string, bool) {
	if !info.Has(key) {
		return "", false
	}
	return info.vals[key-1], true
}

// Has returns true if the string for the given key is present.
func (info Information) Has(key InfoKey) bool {
	return key.IsValid() && info.present&(1<<(key-1)) != 0
}

// Len returns the number of keys present.
func (info Information) Len() int {
	n := 0
	for bits := info.present; bits != 0; bits &= bits - 1 {
		n++
	}
	return n
}

// Keys returns the keys which are present, sorted by name.
func (info Information) Keys() []InfoKey {
	var keys []InfoKey
	for _, key := range AllInfoKeys {
		if info.Has(key) {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b InfoKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// All iterates over the present keys and their strings, in numeric key
// order.
func (info Information) All() iter.Seq2[InfoKey, string] {
	return func(yield func(InfoKey, string) bool) {
		for _, key := range AllInfoKeys {
			if !info.Has(key) {
				continue
			}
			if !yield(key, info.vals[key-1]) {
				return
			}
		}
	}
}

// Map returns a copy of the information as a map.
func (info Information) Map() map[InfoKey]string {
	res := make(map[InfoKey]string, info.Len())
	for key, val := range info.All() {
		res[key] = val
	}
	return res
}
