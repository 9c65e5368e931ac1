// This file is part of corsim0.
//
// corsim0 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corsim0 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with corsim0.  If not, see <https://www.gnu.org/licenses/>.

package bitpattern

// Entry in a Table. The Allow and Exclude fields are pattern lists as used by
// GuardedMatch().
type Entry[T Coded, R any] struct {
	Allow   string
	Exclude string
	Handler func(T) R
}

// Table is a prioritised, first-match list of entries. If no entry matches
// then the Terminal function is used.
//
// The order of entries is significant. Entries should be listed from the most
// specific pattern to the least specific.
type Table[T Coded, R any] struct {
	Entries  []Entry[T, R]
	Terminal func(T) R
}

// Lookup returns the index of the first entry that matches the value. Returns
// -1 if no entry matches.
func (tab *Table[T, R]) Lookup(value T) int {
	for i, e := range tab.Entries {
		if GuardedMatch(value, e.Allow, e.Exclude) {
			return i
		}
	}
	return -1
}

// Dispatch the value to the handler of the first matching entry, or to the
// Terminal function if there is no match.
func (tab *Table[T, R]) Dispatch(value T) R {
	if i := tab.Lookup(value); i >= 0 {
		return tab.Entries[i].Handler(value)
	}
	return tab.Terminal(value)
}
