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

package sdlplay

import (
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/audio"

	"github.com/veandco/go-sdl2/sdl"
)

// the sample count requested of the audio device.
const bufferLength = 512

// if the queue grows past this many bytes (half a second of 16-bit mono)
// the emulation is running ahead of the device. the queue is cleared rather
// than letting latency accumulate.
const maxQueuedBytes = audio.SampleRate

// sound queues the audio engine's sample stream on an SDL audio device.
// Implements the audio.AudioMixer interface.
type sound struct {
	id     sdl.AudioDeviceID
	spec   sdl.AudioSpec
	queue  []byte
	closed bool
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: audio: %v", err)
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// SetAudio implements the audio.AudioMixer interface.
func (snd *sound) SetAudio(samples []int16) error {
	if snd.closed {
		return nil
	}

	if sdl.GetQueuedAudioSize(snd.id) > maxQueuedBytes {
		sdl.ClearQueuedAudio(snd.id)
	}

	// the sample slice is reused by the audio engine so the conversion
	// cannot alias it. the queue buffer is reused between calls
	snd.queue = snd.queue[:0]
	for _, s := range samples {
		snd.queue = append(snd.queue, byte(s), byte(s>>8))
	}

	err := sdl.QueueAudio(snd.id, snd.queue)
	if err != nil {
		return curated.Errorf("sdlplay: audio: %v", err)
	}

	return nil
}

// EndMixing implements the audio.AudioMixer interface.
func (snd *sound) EndMixing() error {
	snd.close()
	return nil
}

// close the audio device. Safe to call more than once.
func (snd *sound) close() {
	if snd.closed {
		return
	}
	snd.closed = true
	sdl.CloseAudioDevice(snd.id)
}
