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

// Package translate formats user facing messages for the locale of the host
// environment. Numbers in particular are grouped according to the locale, so
// that a cycle count of 1234567 is presented as "1,234,567" for an English
// speaking user.
//
// The package level From() function uses the locale of the host. The
// NewPrinter() function can be used to create a printer for a specific
// locale.
package translate
