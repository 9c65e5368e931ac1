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

package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/corsim0/statsview"
	"github.com/jetsetilly/corsim0/test"
)

func TestURL(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(statsview.URL(), "http://"+statsview.Address))
	test.ExpectSuccess(t, strings.HasSuffix(statsview.URL(), statsview.Path))
}
