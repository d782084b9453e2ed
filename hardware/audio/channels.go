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

package audio

import (
	"fmt"
	"math"
)

// the waveform generator assigned to each channel is fixed in hardware.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
	waveNoise
)

func (w waveform) String() string {
	switch w {
	case waveSine:
		return "sine"
	case waveSquare:
		return "square"
	case waveTriangle:
		return "triangle"
	case waveNoise:
		return "noise"
	}
	return "unknown"
}

// the six note bits of a sound event are offset such that note value zero is
// A0. the highest addressable note is therefore C#6.
const firstNote = 21

// frequency of a MIDI note number in twelve tone equal temperament, tuned to
// 440Hz at A4.
func frequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// channel is a single voice of the audio engine. the waveform is fixed per
// channel; the note is whatever the most recent sound event selected.
type channel struct {
	waveform waveform

	// a channel that has never received an event produces zero amplitude
	active bool

	// the most recent note and its frequency
	note int
	freq float64

	// phase runs through one period of the waveform in the range 0.0 to
	// 1.0. step is the per-sample increment for the current note
	phase float64
	step  float64

	// shift register for the noise channel. must never be zero or the
	// register locks
	noise uint16
}

func (ch *channel) String() string {
	if !ch.active {
		return fmt.Sprintf("%s (off)", ch.waveform)
	}
	return fmt.Sprintf("%s %.2fHz (note %d)", ch.waveform, ch.freq, ch.note)
}

// setNote changes the pitch of the channel and marks it active. phase is
// carried over from the old note so that a change mid-period does not click.
func (ch *channel) setNote(note int) {
	ch.active = true
	ch.note = note
	ch.freq = frequency(note)
	ch.step = ch.freq / SampleRate
}

// sample returns the next value of the channel in the range -1.0 to 1.0 and
// advances the generator by one sample period.
func (ch *channel) sample() float32 {
	if !ch.active {
		return 0
	}

	var v float32

	switch ch.waveform {
	case waveSine:
		v = float32(math.Sin(2 * math.Pi * ch.phase))
	case waveSquare:
		if ch.phase < 0.5 {
			v = 1.0
		} else {
			v = -1.0
		}
	case waveTriangle:
		v = float32(1.0 - 4.0*math.Abs(ch.phase-0.5))
	case waveNoise:
		// the noise register shifts once per sample and is not pitched by
		// the note. taps at bits 0 and 1 give the maximal length sequence
		if ch.noise&0x01 == 0x01 {
			v = 1.0
		} else {
			v = -1.0
		}
		fb := (ch.noise ^ (ch.noise >> 1)) & 0x01
		ch.noise = (ch.noise >> 1) | (fb << 14)
	}

	ch.phase += ch.step
	if ch.phase >= 1.0 {
		ch.phase -= 1.0
	}

	return v
}
