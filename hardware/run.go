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

package hardware

// It can be expensive to call the continueCheck() function for every
// instruction so it is only called once every PerformanceBrake instructions.
const PerformanceBrake = 100

// Result of a call to Run().
type Result struct {
	// number of instructions completed and the number of cycles they took
	Steps  int
	Cycles uint64

	// the reason the CPU halted. will be nil if the run ended for any other
	// reason
	Fault error

	// whether the run ended because the step limit was reached
	Limited bool
}

// Run the machine until the CPU halts, the step limit in the preferences is
// reached or the continueCheck() function returns false.
//
// The continueCheck() function can be nil. Any error returned by the function
// ends the run and is returned by Run().
func (m *Machine) Run(continueCheck func() (bool, error)) (Result, error) {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	var res Result

	limit := m.Prefs.StepLimit.Get().(int)
	performanceFilter := 0

	for {
		if limit > 0 && res.Steps >= limit {
			res.Limited = true
			return res, nil
		}

		cycles := m.Step()
		if cycles == 0 {
			res.Fault = m.CPU.Fault()
			return res, nil
		}

		res.Steps++
		res.Cycles += uint64(cycles)

		performanceFilter++
		if performanceFilter >= PerformanceBrake {
			performanceFilter = 0
			ok, err := continueCheck()
			if err != nil {
				return res, err
			}
			if !ok {
				return res, nil
			}
		}
	}
}
