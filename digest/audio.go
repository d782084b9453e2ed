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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the exact length of the audio buffer isn't important, it only bounds how
// many samples are folded into the digest at a time. the space at the head
// holds the previous digest value so that fingerprints chain across folds.
const (
	audioBufferStart  = sha1.Size
	audioBufferLength = audioBufferStart + 2048
)

// Audio is an implementation of the audio.AudioMixer interface. It computes
// a SHA-1 value over the PCM stream. It does not play the samples anywhere.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Attach the result to the audio engine with SetMixer().
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]byte, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface. Samples not yet folded are
// dropped and the chain restarts from zero.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the audio.AudioMixer interface. Samples are stored
// little-endian and folded into the digest whenever the buffer fills.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		v := uint16(s)
		dig.buffer[dig.bufferCt] = uint8(v)
		dig.buffer[dig.bufferCt+1] = uint8(v >> 8)
		dig.bufferCt += 2

		if dig.bufferCt >= audioBufferLength {
			dig.fold()
		}
	}

	return nil
}

// EndMixing implements the audio.AudioMixer interface. Samples still in the
// buffer are folded into the digest.
func (dig *Audio) EndMixing() error {
	dig.fold()
	return nil
}

func (dig *Audio) fold() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
