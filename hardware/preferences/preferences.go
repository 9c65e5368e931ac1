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

// Package preferences holds the preferences that define the emulated machine.
// The preferences are stored on disk with the prefs package and can be
// overridden on the command line with the prefs command line stack.
package preferences

import (
	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware/arm/architecture"
	"github.com/jetsetilly/corsim0/logger"
	"github.com/jetsetilly/corsim0/prefs"
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// memory map. the ROM contains the vector table and the program image
	ROMOrigin prefs.Int
	ROMSize   prefs.Int
	RAMOrigin prefs.Int
	RAMSize   prefs.Int

	// whether to log every instruction executed by the CPU
	Trace prefs.Bool

	// the maximum number of instructions to execute in a single run. a value
	// of zero means there is no limit
	StepLimit prefs.Int

	// TraceGate follows the value of Trace and can be given to the CPU as the
	// permission for the instruction trace
	TraceGate logger.Gate
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty then prefs.DefaultPrefsFile is used.
//
// A missing preferences file is not an error. The file is created with the
// default values.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Trace.SetHookPost(func(v prefs.Value) error {
		p.TraceGate.Open = v.(bool)
		return nil
	})

	p.SetDefaults()

	if path == "" {
		path = prefs.DefaultPrefsFile
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.rom.origin", &p.ROMOrigin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.rom.size", &p.ROMSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.ram.origin", &p.RAMOrigin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.ram.size", &p.RAMSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("corsim0.stepLimit", &p.StepLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. The default memory map
// is the memory map of the CortexM0 architecture.
func (p *Preferences) SetDefaults() {
	mmap := architecture.NewMap(architecture.CortexM0)
	p.ROMOrigin.Set(mmap.ROMOrigin)
	p.ROMSize.Set(mmap.ROMSize)
	p.RAMOrigin.Set(mmap.RAMOrigin)
	p.RAMSize.Set(mmap.RAMSize)
	p.Trace.Set(false)
	p.StepLimit.Set(0)
}

// Map returns the architecture map with the memory layout replaced by the
// values in the preferences.
func (p *Preferences) Map() architecture.Map {
	mmap := architecture.NewMap(architecture.CortexM0)
	mmap.ROMOrigin = uint32(p.ROMOrigin.Get().(int))
	mmap.ROMSize = uint32(p.ROMSize.Get().(int))
	mmap.RAMOrigin = uint32(p.RAMOrigin.Get().(int))
	mmap.RAMSize = uint32(p.RAMSize.Get().(int))
	return mmap
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
