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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

var launched sync.Mutex

// Launch starts the stats server in its own goroutine. Only one server can
// run at a time. The returned function stops the server and allows another
// to be launched.
func Launch(output io.Writer) func() {
	if !launched.TryLock() {
		fmt.Fprintln(output, "! stats server already running")
		return func() {}
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()
	fmt.Fprintf(output, "stats server available at %s\n", URL())

	var once sync.Once
	return func() {
		once.Do(func() {
			mgr.Stop()
			launched.Unlock()
		})
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
