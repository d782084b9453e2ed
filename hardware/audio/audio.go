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

// Package audio implements the four voice synthesiser of the machine. Each
// voice has a fixed waveform generator (sine, square, triangle, noise) and
// is pitched by sound events that the running program emits with the SND
// instruction.
//
// The engine does not run in real time. Step() synthesises exactly enough
// samples to cover the clock cycles the CPU has just consumed and pushes
// them to whatever AudioMixer is attached. Playback, WAV capture and
// checksumming are all mixer implementations elsewhere in the project.
package audio

import (
	"fmt"
	"strings"

	"github.com/heliosemu/helios/hardware/audio/mix"
	"github.com/heliosemu/helios/hardware/clocks"
	"github.com/heliosemu/helios/hardware/instance"
)

// SampleRate of the synthesised PCM stream in hertz.
const SampleRate = 44100

// EventSource is the subset of the memory bus that the engine consumes sound
// events from.
type EventSource interface {
	// the producer cursor for the event ring
	EventCursor() int

	// the event at the given ring offset and the offset of the following
	// slot
	ReadEvent(cursor int) (uint8, int)
}

// AudioMixer implementations consume the engine's sample stream.
//
// The slice given to SetAudio is reused by the engine between calls. Mixers
// that need the samples after returning must copy them.
type AudioMixer interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// Engine is the audio synthesiser. One instance per console.
type Engine struct {
	instance *instance.Instance
	src      EventSource

	// channel 0 is sine, 1 is square, 2 is triangle and 3 is noise. fixed
	// at creation
	channels [4]channel

	// the consumer cursor for the event ring. chases the producer cursor
	// of the event source
	cursor int

	// the fraction of a sample left over from the previous Step
	remainder float64

	// the addition of a mixer is not required
	mixer AudioMixer

	// sample buffer reused between Step calls
	buffer []int16
}

// NewEngine is the preferred method of initialisation for the audio Engine.
//
// A nil instance is tolerated and results in an engine that is always
// enabled, at the default gain, with an unrandomised noise register.
func NewEngine(ins *instance.Instance, src EventSource) *Engine {
	eng := &Engine{
		instance: ins,
		src:      src,
	}
	eng.channels[0].waveform = waveSine
	eng.channels[1].waveform = waveSquare
	eng.channels[2].waveform = waveTriangle
	eng.channels[3].waveform = waveNoise
	eng.Reset()
	return eng
}

// SetMixer attaches an AudioMixer implementation to the engine, replacing
// any previous mixer.
func (eng *Engine) SetMixer(mixer AudioMixer) {
	eng.mixer = mixer
}

// Reset the engine to its power-on state. Every channel falls silent and
// pending sound events are discarded.
func (eng *Engine) Reset() {
	for i := range eng.channels {
		w := eng.channels[i].waveform
		eng.channels[i] = channel{waveform: w}
	}
	eng.cursor = 0
	eng.remainder = 0

	// the noise register locks if it ever reaches zero so the seed is never
	// less than one.
	//
	// checking for instance == nil because it's possible for NewEngine to be
	// called with a nil instance (test packages)
	seed := uint16(1)
	if eng.instance != nil && eng.instance.Prefs.RandomState.Get().(bool) {
		seed = uint16(eng.instance.Random.Intn(0x7ffe) + 1)
	}
	eng.channels[3].noise = seed
}

func (eng *Engine) String() string {
	s := strings.Builder{}
	for i := range eng.channels {
		if i > 0 {
			s.WriteString("  ")
		}
		s.WriteString(fmt.Sprintf("ch%d: %s", i, eng.channels[i].String()))
	}
	return s.String()
}

// Step the engine forward by the given number of clock cycles. Pending sound
// events are applied in write order and then enough samples are synthesised
// to cover the elapsed time, any fraction of a sample carrying over to the
// next call.
//
// The synthesised samples are pushed to the attached mixer, if there is one.
func (eng *Engine) Step(cycles int) error {
	// drain the event ring before synthesis. an event always lands on the
	// samples that follow it, never on the samples for cycles already
	// stepped
	for eng.cursor != eng.src.EventCursor() {
		var ev uint8
		ev, eng.cursor = eng.src.ReadEvent(eng.cursor)
		eng.channels[(ev>>6)&0x03].setNote(int(ev&0x3f) + firstNote)
	}

	n := float64(cycles)*SampleRate/clocks.ClockHz + eng.remainder
	numSamples := int(n)
	eng.remainder = n - float64(numSamples)

	if numSamples == 0 {
		return nil
	}

	enabled := true
	gain := float32(0.25)
	if eng.instance != nil {
		enabled = eng.instance.Prefs.AudioEnabled.Get().(bool)
		gain = float32(eng.instance.Prefs.AudioGain.Get().(float64))
	}

	if cap(eng.buffer) < numSamples {
		eng.buffer = make([]int16, numSamples)
	}
	samples := eng.buffer[:numSamples]

	// the generators run even when audio is disabled so that toggling the
	// preference does not shift the waveforms
	for i := range samples {
		v0 := eng.channels[0].sample() * gain
		v1 := eng.channels[1].sample() * gain
		v2 := eng.channels[2].sample() * gain
		v3 := eng.channels[3].sample() * gain
		if enabled {
			samples[i] = mix.Mono(v0, v1, v2, v3)
		} else {
			samples[i] = 0
		}
	}

	if eng.mixer != nil {
		return eng.mixer.SetAudio(samples)
	}

	return nil
}

// EndMixing tells the attached mixer that the sample stream has ended.
func (eng *Engine) EndMixing() error {
	if eng.mixer == nil {
		return nil
	}
	return eng.mixer.EndMixing()
}
