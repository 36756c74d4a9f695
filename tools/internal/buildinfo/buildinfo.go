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

// Package buildinfo reports version information embedded by the Go
// toolchain into the fontmatch tools.
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Info describes the build of a tool.
type Info struct {
	Tool      string
	Module    string
	Version   string // module version, or a VCS revision for local builds
	GoVersion string
	Modified  bool
}

// Read collects the build information for the named tool.  Fields which
// the toolchain did not record are left empty.
func Read(tool string) Info {
	res := Info{Tool: tool}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return res
	}
	res.Module = info.Main.Path
	res.GoVersion = info.GoVersion

	version := info.Main.Version
	if version != "" && version != "(devel)" {
		res.Version = version
		return res
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			res.Version = s.Value
		case "vcs.modified":
			res.Modified = s.Value == "true"
		}
	}
	if len(res.Version) > 8 {
		res.Version = res.Version[:8]
	}
	return res
}

// Short returns a one-line version string, e.g.
// "fontmatch (seehuhn.de/go/fontmatch v0.1.0)".
func (info Info) Short() string {
	if info.Module == "" || info.Version == "" {
		return info.Tool
	}
	version := info.Version
	if info.Modified {
		version += "+dirty"
	}
	return info.Tool + " (" + info.Module + " " + version + ")"
}

// WriteTo prints the version string followed by the Go version.
func (info Info) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, info.Short())
	if err != nil || info.GoVersion == "" {
		return int64(n), err
	}
	m, err := fmt.Fprintln(w, "built with", info.GoVersion)
	return int64(n + m), err
}
