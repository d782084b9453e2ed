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

package audio_test

import (
	"testing"

	"github.com/heliosemu/helios/hardware/audio"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/hardware/memory"
	"github.com/heliosemu/helios/hardware/preferences"
	"github.com/heliosemu/helios/random"
	"github.com/heliosemu/helios/test"
)

// mixer records everything the engine pushes to it.
type mixer struct {
	samples []int16
	ended   bool
}

func (mx *mixer) SetAudio(samples []int16) error {
	mx.samples = append(mx.samples, samples...)
	return nil
}

func (mx *mixer) EndMixing() error {
	mx.ended = true
	return nil
}

// testInstance builds an instance without touching the preferences on disk.
func testInstance(t *testing.T) *instance.Instance {
	t.Helper()
	prefs := &preferences.Preferences{}
	prefs.SetDefaults()
	return &instance.Instance{
		Label:  instance.Testing,
		Random: random.NewRandom(),
		Prefs:  prefs,
	}
}

func TestEventActivation(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	// channel 1 is the square wave. note value 5 is MIDI note 26
	test.ExpectSuccess(t, mem.WriteEvent(0b01000101))
	test.ExpectSuccess(t, eng.Step(10000))

	test.ExpectEquality(t, eng.String(),
		"ch0: sine (off)  ch1: square 36.71Hz (note 26)  ch2: triangle (off)  ch3: noise (off)")

	// 10000 cycles at 44100Hz sampling is exactly 441 samples. note 26 is
	// low enough that they all land in the positive half of the square
	// wave. at the default gain the level is 0.25 of full scale
	test.DemandEquality(t, len(mx.samples), 441)
	for _, s := range mx.samples {
		test.DemandEquality(t, s, int16(8191))
	}
}

func TestSustain(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	test.ExpectSuccess(t, mem.WriteEvent(0b01000101))
	test.ExpectSuccess(t, eng.Step(10000))

	// no further events. the channel sustains its note and the square wave
	// reaches the negative half of its period
	mx.samples = mx.samples[:0]
	test.ExpectSuccess(t, eng.Step(10000))

	var positive, negative int
	for _, s := range mx.samples {
		switch {
		case s > 0:
			positive++
		case s < 0:
			negative++
		}
	}
	test.ExpectInequality(t, positive, 0)
	test.ExpectInequality(t, negative, 0)
}

func TestSilence(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	// no channel has ever received an event so the stream is all zero
	test.ExpectSuccess(t, eng.Step(100000))
	test.DemandEquality(t, len(mx.samples), 4410)
	for _, s := range mx.samples {
		test.DemandEquality(t, s, int16(0))
	}

	test.ExpectEquality(t, eng.String(),
		"ch0: sine (off)  ch1: square (off)  ch2: triangle (off)  ch3: noise (off)")
}

func TestFractionalAccumulator(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	// 10 cycles is less than half a sample period. samples only emerge as
	// the fraction accumulates
	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, eng.Step(10))
	}
	test.ExpectEquality(t, len(mx.samples), 44)
}

func TestEventOrder(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)

	// two events for the same channel before any synthesis. the later
	// event wins
	test.ExpectSuccess(t, mem.WriteEvent(0b00000000))
	test.ExpectSuccess(t, mem.WriteEvent(0b00110000))
	test.ExpectSuccess(t, eng.Step(1))

	test.ExpectEquality(t, eng.String(),
		"ch0: sine 440.00Hz (note 69)  ch1: square (off)  ch2: triangle (off)  ch3: noise (off)")
}

func TestTriangleChannel(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	test.ExpectSuccess(t, mem.WriteEvent(0b10110000))
	test.ExpectSuccess(t, eng.Step(10000))

	// the triangle starts at the bottom of its ramp
	test.ExpectEquality(t, mx.samples[0], int16(-8191))

	// and is near the top half a period later. note 69 is 440Hz, which is
	// a fraction over 100 samples per period at 44100Hz
	test.ExpectEquality(t, mx.samples[50] > int16(8000), true)
}

func TestNoiseChannel(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	// the note on a noise event marks the channel active but does not
	// pitch it
	test.ExpectSuccess(t, mem.WriteEvent(0b11000000))
	test.ExpectSuccess(t, eng.Step(1000))
	test.DemandEquality(t, len(mx.samples), 44)

	// the shift register seed is 1 so the sequence is repeatable
	test.ExpectEquality(t, mx.samples[0], int16(8191))
	test.ExpectEquality(t, mx.samples[1], int16(-8191))
	test.ExpectEquality(t, mx.samples[2], int16(-8191))
}

func TestDisabledAudio(t *testing.T) {
	ins := testInstance(t)
	test.ExpectSuccess(t, ins.Prefs.AudioEnabled.Set(false))

	mem := memory.NewBus()
	eng := audio.NewEngine(ins, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	// the stream still flows when audio is disabled but every sample is
	// zero
	test.ExpectSuccess(t, mem.WriteEvent(0b01000101))
	test.ExpectSuccess(t, eng.Step(10000))
	test.DemandEquality(t, len(mx.samples), 441)
	for _, s := range mx.samples {
		test.DemandEquality(t, s, int16(0))
	}
}

func TestGainPreference(t *testing.T) {
	ins := testInstance(t)
	test.ExpectSuccess(t, ins.Prefs.AudioGain.Set(0.5))

	mem := memory.NewBus()
	eng := audio.NewEngine(ins, mem)
	mx := &mixer{}
	eng.SetMixer(mx)

	test.ExpectSuccess(t, mem.WriteEvent(0b01000101))
	test.ExpectSuccess(t, eng.Step(10000))
	test.DemandEquality(t, len(mx.samples), 441)
	test.ExpectEquality(t, mx.samples[0], int16(16383))
}

func TestReset(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)

	test.ExpectSuccess(t, mem.WriteEvent(0b00110000))
	test.ExpectSuccess(t, eng.Step(100))
	test.ExpectEquality(t, eng.String(),
		"ch0: sine 440.00Hz (note 69)  ch1: square (off)  ch2: triangle (off)  ch3: noise (off)")

	// reset silences every channel. the bus rewinds its ring cursor with
	// the rest of the machine
	eng.Reset()
	mem.Reset()
	test.ExpectEquality(t, eng.String(),
		"ch0: sine (off)  ch1: square (off)  ch2: triangle (off)  ch3: noise (off)")
}

func TestEndMixing(t *testing.T) {
	mem := memory.NewBus()
	eng := audio.NewEngine(nil, mem)

	// no mixer attached is not an error
	test.ExpectSuccess(t, eng.EndMixing())

	mx := &mixer{}
	eng.SetMixer(mx)
	test.ExpectSuccess(t, eng.EndMixing())
	test.ExpectEquality(t, mx.ended, true)
}
