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
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"seehuhn.de/go/fontmatch"
)

// DefaultDebounce is the time a Watcher waits for a burst of file system
// events to end before reloading the manifest.
const DefaultDebounce = 250 * time.Millisecond

// WatcherOptions control the behaviour of a Watcher.
type WatcherOptions struct {
	// Catalog is passed to fontmatch.FromRecords.
	Catalog *fontmatch.Options

	// Logger receives reload events.  If this is nil, nothing is logged.
	Logger *zap.SugaredLogger

	// Debounce is the quiet period required before a reload.
	// Zero means DefaultDebounce.
	Debounce time.Duration

	// OnReload, if not nil, is called after every reload attempt.  On
	// success, cat is the newly installed catalog and err is nil.  On
	// failure, cat is nil and the store is left unchanged.
	OnReload func(cat *fontmatch.Catalog, err error)
}

// A Watcher keeps the catalog in a fontmatch.Store in sync with a
// manifest file.
type Watcher struct {
	path  string
	store *fontmatch.Store
	opt   WatcherOptions
	log   *zap.SugaredLogger
}

// NewWatcher creates a Watcher for the manifest at path.  The catalog is
// not loaded until Reload or Run is called.
func NewWatcher(path string, store *fontmatch.Store, opt *WatcherOptions) *Watcher {
	w := &Watcher{
		path:  filepath.Clean(path),
		store: store,
	}
	if opt != nil {
		w.opt = *opt
	}
	if w.opt.Debounce <= 0 {
		w.opt.Debounce = DefaultDebounce
	}
	w.log = w.opt.Logger
	if w.log == nil {
		w.log = zap.NewNop().Sugar()
	}
	return w
}

// Reload reads the manifest and installs the new catalog in the store.
// If the manifest cannot be read, the store keeps the previous catalog.
func (w *Watcher) Reload() error {
	cat, warnings, err := Load(w.path, w.opt.Catalog)
	if err != nil {
		w.log.Errorw("manifest reload failed", "path", w.path, "error", err)
		if w.opt.OnReload != nil {
			w.opt.OnReload(nil, err)
		}
		return err
	}
	for _, msg := range warnings {
		w.log.Warnw("manifest problem", "path", w.path, "warning", msg)
	}

	w.store.Swap(cat)
	w.log.Infow("font catalog reloaded",
		"path", w.path,
		"families", cat.Len(),
		"variants", cat.NumVariants())
	if w.opt.OnReload != nil {
		w.opt.OnReload(cat, nil)
	}
	return nil
}

// Run loads the manifest and then reloads it whenever the file changes.
// Run blocks until ctx is cancelled.  Failed reloads are logged and do not
// stop the watcher.
//
// The directory containing the manifest is watched instead of the file
// itself, so that editors which replace the file by renaming are handled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("manifest: cannot create file watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("manifest: cannot watch %s: %w", dir, err)
	}
	w.log.Debugw("watching manifest", "path", w.path)

	_ = w.Reload()

	timer := time.NewTimer(w.opt.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debugw("manifest changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.opt.Debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("file watcher error", "error", err)

		case <-timer.C:
			_ = w.Reload()
		}
	}
}
