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

package monitor

import (
	"fmt"

	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware/arm"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// InvalidExpression is returned when a numeric argument can not be evaluated.
const InvalidExpression = "monitor: invalid expression (%s): %v"

// registerNames returns the predeclared names available to expressions
func registerNames(r arm.Registers) starlark.StringDict {
	pred := starlark.StringDict{}
	for n, v := range r.R {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeUint(uint(v))
	}
	pred["sp"] = starlark.MakeUint(uint(r.SP()))
	pred["msp"] = starlark.MakeUint(uint(r.MSP))
	pred["psp"] = starlark.MakeUint(uint(r.PSP))
	pred["lr"] = starlark.MakeUint(uint(r.LR))
	pred["pc"] = starlark.MakeUint(uint(r.PC))
	pred["vtor"] = starlark.MakeUint(uint(r.VTOR))
	return pred
}

// evaluate the expression to a 32bit value. Negative values and values
// larger than 32bits are truncated.
func evaluate(expr string, r arm.Registers) (uint32, error) {
	thread := starlark.Thread{Name: "monitor"}
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, registerNames(r))
	if err != nil {
		return 0, curated.Errorf(InvalidExpression, expr, err)
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		return 0, curated.Errorf(InvalidExpression, expr, "not an integer")
	}

	if v, ok := rc.Int64(); ok {
		return uint32(v), nil
	}
	if v, ok := rc.Uint64(); ok {
		return uint32(v), nil
	}

	return 0, curated.Errorf(InvalidExpression, expr, "out of range")
}
