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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLicensify(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go":          "package a\n",
		"b.go":          header + "package b\n",
		"c.go":          "// Package c is odd.\npackage c\n",
		"notes.txt":     "package notes\n",
		"_skip/d.go":    "package d\n",
		"sub/e_test.go": "package sub\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	n, err := licensify(dir, true, &out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("expected 3 files without header, got %d:\n%s", n, out.String())
	}
	body, _ := os.ReadFile(filepath.Join(dir, "a.go"))
	if string(body) != "package a\n" {
		t.Error("dry run modified a file")
	}

	out.Reset()
	if _, err := licensify(dir, false, &out); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.go", "sub/e_test.go"} {
		body, _ := os.ReadFile(filepath.Join(dir, name))
		if !strings.HasPrefix(string(body), header+"package ") {
			t.Errorf("%s: header not added", name)
		}
	}
	body, _ = os.ReadFile(filepath.Join(dir, "_skip/d.go"))
	if string(body) != "package d\n" {
		t.Error("skipped directory was modified")
	}
	if !strings.Contains(out.String(), "ATTENTION") {
		t.Errorf("c.go not reported:\n%s", out.String())
	}

	// After the update, only c.go lacks the header.
	n, err = licensify(dir, true, &bytes.Buffer{})
	if err != nil || n != 1 {
		t.Errorf("expected 1 remaining file, got %d, %v", n, err)
	}
}
