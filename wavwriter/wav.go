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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and written to disk
// on EndMixing(). It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/audio"
	"github.com/heliosemu/helios/logger"
)

// WavWriter implements the audio.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, audio.SampleRate),
	}

	return aw, nil
}

// SetAudio implements the audio.AudioMixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}

	return nil
}

// EndMixing implements the audio.AudioMixer interface. The buffered samples
// are encoded and written out.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// one channel of 16bit PCM at the audio engine's sample rate
	enc := wav.NewEncoder(f, audio.SampleRate, 16, 1, 1)

	buf := goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  audio.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(&buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
