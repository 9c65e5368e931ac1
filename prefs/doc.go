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

// Package prefs facilitates the storage of preferential values in the
// corsim0 system. It is intended to be used by the packages that need to
// store values between sessions, the hardware configuration for example.
//
// Preference values are typed (Bool, Int, String) and can be registered with
// a Disk instance under a key. The Disk type loads and saves the values to a
// file on disk. Many Disk instances can share the same file.
//
// Values can also be specified on the command line with the
// PushCommandLineStack() function. Command line values take priority over
// values in the preferences file but are never saved.
package prefs
