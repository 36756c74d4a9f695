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
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"seehuhn.de/go/fontmatch"
	"seehuhn.de/go/fontmatch/manifest"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "reload the manifest whenever it changes",
		Long: `Watch keeps a catalog in sync with the manifest file and prints a line
every time the catalog is reloaded.  Press Ctrl-C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.manifest == "" {
				return errors.New("watch needs a manifest file")
			}
			opt, err := a.options()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			store := &fontmatch.Store{}
			w := manifest.NewWatcher(a.manifest, store, &manifest.WatcherOptions{
				Catalog: opt,
				Logger:  a.log,
				OnReload: func(c *fontmatch.Catalog, err error) {
					if err != nil {
						fmt.Fprintln(out, "reload failed:", err)
						return
					}
					fmt.Fprintf(out, "%d families, %d variants\n", c.Len(), c.NumVariants())
				},
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.Run(ctx)
		},
	}
}
