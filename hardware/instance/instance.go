// This file is part of Helios.
//
// Helios is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Helios is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Helios.  If not, see <https://www.gnu.org/licenses/>.

// Package instance defines those parts of the emulation that might change
// from instance to instance of the console type, but are not the console
// itself.
//
// Particularly useful when running more than one instance of the emulation
// in parallel.
package instance

import (
	"github.com/heliosemu/helios/hardware/preferences"
	"github.com/heliosemu/helios/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main        Label = ""
	Performance Label = "performance"
	Testing     Label = "testing"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the console type, but are not the console
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. can be shared with other
	// running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance
// type.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created. Providing a non-nil value allows the preferences of more than one
// console instance to be synchronised.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance makes log entries, other instances run quietly. a nil instance is
// tolerated and never logs.
func (ins *Instance) AllowLogging() bool {
	return ins != nil && ins.Label == Main
}
