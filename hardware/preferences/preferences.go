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

// Package preferences collates the preference values used by the console
// hardware and its presentation layers.
package preferences

import (
	"github.com/heliosemu/helios/prefs"
	"github.com/heliosemu/helios/resources"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise CPU registers to a random state after reset
	RandomState prefs.Bool

	// whether the audio engine synthesizes at all
	AudioEnabled prefs.Bool

	// the gain applied to each channel at the mix stage
	AudioGain prefs.Float

	// the pixel scaling of the playmode window
	VideoScale prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.enabled", &p.AudioEnabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.gain", &p.AudioGain)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.scale", &p.VideoScale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.AudioEnabled.Set(true)
	p.AudioGain.Set(0.25)
	p.VideoScale.Set(2)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
