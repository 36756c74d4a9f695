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

// Fontmatch selects fonts from a catalog by family name and style.
//
// By default the catalog contains the Go fonts.  A different catalog can be
// read from a manifest file, given with the --manifest flag or the
// FONTMATCH_MANIFEST environment variable.
//
// Usage:
//
//	fontmatch families
//	fontmatch variants FAMILY
//	fontmatch match FAMILY [--weight W] [--style S] [--width W] [--all]
//	fontmatch search KEY=VALUE...
//	fontmatch info FAMILY INDEX
//	fontmatch watch --manifest FILE
//	fontmatch version
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/gofont"
	"seehuhn.de/go/fontmatch/manifest"
	"seehuhn.de/go/fontmatch/tools/internal/buildinfo"
	"seehuhn.de/go/fontmatch/tools/internal/profile"
)

const manifestEnv = "FONTMATCH_MANIFEST"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command line given by args.  Profiles are written and
// the log is flushed even if the command fails.
func execute(args []string, out, errOut io.Writer) error {
	a := &app{}
	cmd := a.rootCmd(errOut)
	cmd.SetOut(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return errors.Join(err, a.finish())
}

// app holds the state shared by all subcommands.
type app struct {
	manifest   string
	locale     string
	verbose    bool
	cpuprofile string
	memprofile string

	log         *zap.SugaredLogger
	stopProfile func() error
}

func (a *app) rootCmd(errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "fontmatch",
		Short: "select fonts by family name and style",
		Long: buildinfo.Read("fontmatch").Short() + `

Fontmatch looks up font families in a catalog and ranks their variants
by how well they match a requested weight, style and width.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(errOut, a.verbose)
			stop, err := profile.Start(a.cpuprofile, a.memprofile)
			if err != nil {
				return err
			}
			a.stopProfile = stop
			return nil
		},
	}
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.manifest, "manifest", "m", os.Getenv(manifestEnv),
		"read the font catalog from `file` (default: the Go fonts, or $"+manifestEnv+")")
	flags.StringVar(&a.locale, "locale", "", "BCP 47 `language` tag for family names")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging information")
	flags.StringVar(&a.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&a.memprofile, "memprofile", "", "write memory profile to `file`")

	root.AddCommand(
		a.familiesCmd(),
		a.variantsCmd(),
		a.matchCmd(),
		a.searchCmd(),
		a.infoCmd(),
		a.watchCmd(),
		versionCmd(),
	)
	return root
}

// finish stops profiling and flushes the log.
func (a *app) finish() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.stopProfile == nil {
		return nil
	}
	stop := a.stopProfile
	a.stopProfile = nil
	return stop()
}

func newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func (a *app) options() (*fontmatch.Options, error) {
	if a.locale == "" {
		return nil, nil
	}
	tag, err := language.Parse(a.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", a.locale, err)
	}
	return &fontmatch.Options{Locale: tag}, nil
}

// catalog loads the catalog selected on the command line.
func (a *app) catalog() (*fontmatch.Catalog, error) {
	opt, err := a.options()
	if err != nil {
		return nil, err
	}
	if a.manifest == "" {
		a.log.Debugw("using the Go fonts")
		return gofont.Catalog(opt)
	}

	c, warnings, err := manifest.Load(a.manifest, opt)
	if err != nil {
		return nil, err
	}
	for _, msg := range warnings {
		a.log.Warnw(msg, "manifest", a.manifest)
	}
	a.log.Debugw("catalog loaded",
		"manifest", a.manifest,
		"families", c.Len(),
		"variants", c.NumVariants())
	return c, nil
}

// family loads the catalog and looks up a family by name.
func (a *app) family(name string) (*fontmatch.Family, error) {
	c, err := a.catalog()
	if err != nil {
		return nil, err
	}
	return c.LookupFamily(name)
}
