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

// Package digest contains implementations of the video.PixelRenderer and
// audio.AudioMixer interfaces that fingerprint the frame and sample streams
// rather than displaying or playing them. If a hash differs from a
// previously recorded value then the emulation's output has changed. This is
// the basis for regression testing.
//
// The use of SHA-1 is fine for this application because this is not a
// cryptographic task.
package digest

// Digest implementations compute a running hash of an emulation output
// stream.
type Digest interface {
	Hash() string
	ResetDigest()
}
