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

package translate

import (
	"github.com/jeandeaual/go-locale"
	"github.com/jetsetilly/corsim0/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// the locale used when the host locale can not be determined
const fallbackLocale = "en-US"

// Printer formats messages for a single locale.
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPrinter returns a Printer for the first of the locales that can be
// parsed. If none of the locales can be used the fallback locale is used.
func NewPrinter(locales ...string) *Printer {
	tag := language.AmericanEnglish
	for _, l := range locales {
		t, err := language.Parse(l)
		if err == nil {
			tag = t
			break
		}
	}
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Locale returns the locale being used by the printer.
func (p *Printer) Locale() string {
	return p.tag.String()
}

// From an en-US Sprintf() format, translate to string.
func (p *Printer) From(key message.Reference, args ...any) string {
	return p.printer.Sprintf(key, args...)
}

var host *Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "translate", "locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallbackLocale}
	}

	host = NewPrinter(locales...)
}

// From an en-US Sprintf() format, translate to string using the locale of the
// host.
func From(key message.Reference, args ...any) string {
	return host.From(key, args...)
}

// Locale returns the locale of the host as used by From().
func Locale() string {
	return host.Locale()
}
