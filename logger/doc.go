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

// Package logger is the logging package for corsim0. Log entries are tagged
// with the name of the component that created them and are stored in a
// bounded list. Adjacent entries that are identical are collapsed and shown
// with a repeat count.
//
// Every request to log is accompanied by a Permission. The Allow value says
// that the log entry should always be made. The Gate type can be used for
// logging that is switched on and off at runtime, instruction tracing for
// example.
//
// There is a central logger that can be accessed through the package level
// functions. Independent loggers can be created with NewLogger().
package logger
