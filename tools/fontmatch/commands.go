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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/manifest"
	"seehuhn.de/go/fontmatch/tools/internal/buildinfo"
)

func (a *app) familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "list the font families in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			for _, f := range c.Families() {
				t.row(f.Index(), f.Name(), f.Len())
			}
			return t.flush()
		},
	}
}

func (a *app) variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants FAMILY",
		Short: "list the variants of a font family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.family(args[0])
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			for _, v := range f.Variants() {
				t.row(v.Index(), v.Name(), int(v.Weight()), v.Style(), widthString(v), v.FilePath())
			}
			return t.flush()
		},
	}
}

func (a *app) matchCmd() *cobra.Command {
	var (
		weight      string
		style       string
		width       string
		opticalSize uint
		slant       int
		italic      bool
		all         bool
		maxScore    int
	)
	cmd := &cobra.Command{
		Use:   "match FAMILY",
		Short: "find the variant of a family which best matches a style",
		Long: `Match ranks the variants of a font family by how well they match the
given weight, style, width, optical size and slant.  Without --all or
--max-score only the best match is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var q fontmatch.Query
			flags := cmd.Flags()
			if flags.Changed("weight") {
				w, err := manifest.ParseWeight(weight)
				if err != nil {
					return err
				}
				q.Weight.Set(w)
			}
			if flags.Changed("style") {
				s, err := fontmatch.ParseStyle(style)
				if err != nil {
					return err
				}
				q.Style.Set(s)
			}
			if flags.Changed("width") {
				w, err := manifest.ParseWidth(width)
				if err != nil {
					return err
				}
				q.Width.Set(w)
			}
			if flags.Changed("optical-size") {
				q.OpticalSize.Set(opticalSize)
			}
			if flags.Changed("slant") {
				q.Slant.Set(slant)
			}
			if flags.Changed("italic") {
				q.Italic.Set(italic)
			}

			f, err := a.family(args[0])
			if err != nil {
				return err
			}
			a.log.Debugw("matching", "family", f.Name(), "query", q.String())

			t := newTable(cmd.OutOrStdout())
			if !all && !flags.Changed("max-score") {
				v, err := f.BestMatch(q)
				if err != nil {
					return err
				}
				t.row(v.Index(), v.FullName(), v.FilePath())
				return t.flush()
			}

			limit := math.MaxInt
			if flags.Changed("max-score") {
				limit = maxScore
			}
			for _, m := range f.MatchesWithin(q, limit) {
				v := m.Variant
				t.row(m.Score, v.Index(), v.FullName(), v.FilePath())
			}
			return t.flush()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&weight, "weight", "w", "", "font weight, as a number or a name like \"bold\"")
	flags.StringVarP(&style, "style", "s", "", "font style: normal, oblique or italic")
	flags.StringVar(&width, "width", "", "width class, 1-9 or a name like \"condensed\"")
	flags.UintVar(&opticalSize, "optical-size", 0, "optical size in points")
	flags.IntVar(&slant, "slant", 0, "slant angle in degrees")
	flags.BoolVarP(&italic, "italic", "i", false, "select a slanted (italic or oblique) variant")
	flags.BoolVarP(&all, "all", "a", false, "list all variants with their scores")
	flags.IntVar(&maxScore, "max-score", 0, "list the variants with at most this score")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search KEY=VALUE...",
		Short: "find variants by name",
		Long: `Search lists all variants for which every given information string
has exactly the given value.  Searchable keys are win32_family_names,
typographic_family_names, full_name, postscript_name,
weight_stretch_style_family_name, design_script_language_tag and
supported_script_language_tag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := make(map[fontmatch.InfoKey]string, len(args))
			for _, arg := range args {
				name, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid search condition %q, expected KEY=VALUE", arg)
				}
				key, err := fontmatch.ParseInfoKey(name)
				if err != nil {
					return err
				}
				filters[key] = value
			}

			c, err := a.catalog()
			if err != nil {
				return err
			}
			res, err := c.Search(filters)
			if err != nil {
				return err
			}
			t := newTable(cmd.OutOrStdout())
			for _, v := range res {
				t.row(v.FamilyName(), v.Index(), v.FullName(), v.FilePath())
			}
			return t.flush()
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FAMILY INDEX",
		Short: "show the properties of one font variant",
		Long: `Info shows the style properties and the information strings of a
font variant.  Negative indices count from the end of the family; put
"--" before the arguments to use them, as in "fontmatch info -- Arial -1".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid variant index %q", args[1])
			}
			f, err := a.family(args[0])
			if err != nil {
				return err
			}
			v, err := f.Variant(idx)
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.row("family", v.FamilyName())
			t.row("name", v.Name())
			t.row("weight", int(v.Weight()))
			t.row("style", v.Style())
			t.row("width", widthString(v))
			if sz, ok := v.OpticalSize(); ok {
				t.row("optical_size", sz)
			}
			if s, ok := v.Slant(); ok {
				t.row("slant", s)
			}
			t.row("path", v.FilePath())
			info := v.Info()
			for _, key := range info.Keys() {
				val, _ := info.Get(key)
				t.row(key, val)
			}
			return t.flush()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := buildinfo.Read("fontmatch").WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
