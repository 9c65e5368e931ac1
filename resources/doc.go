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

// Package resources prepares paths for corsim0 resources, such as the
// preferences file.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. On Linux systems this would be something like:
//
//	/home/user/.config/corsim0/
//
// For other builds the base path is in the current working directory:
//
//	.corsim0
package resources
