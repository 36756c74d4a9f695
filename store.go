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

import "sync/atomic"

// Store holds the current catalog of a program whose set of installed fonts
// can change.  A refreshed catalog is built separately and then replaces
// the old one in a single step.  Variants obtained from an old catalog stay
// valid.
//
// It is safe to use a Store concurrently from multiple goroutines.
// The zero Store holds no catalog.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore returns a Store holding c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current catalog, or nil if no catalog has been stored.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Swap installs c as the current catalog and returns the previous one.
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.current.Swap(c)
}
