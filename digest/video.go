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

	"github.com/heliosemu/helios/hardware/video"
)

// Video is an implementation of the video.PixelRenderer interface. It
// computes a SHA-1 value over every frame as it is sealed. It does not
// display the frame anywhere.
type Video struct {
	digest   [sha1.Size]byte
	frame    []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type. Add
// the result to the display engine with AddPixelRenderer().
func NewVideo() *Video {
	return &Video{
		// room at the head of the buffer for the previous frame's digest
		frame: make([]byte, sha1.Size+video.PresentWidth*video.PresentHeight),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Frame returns the frame number of the most recently hashed frame.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// NewFrame implements the video.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) {
	dig.frameNum = frameNum
}

// SetPixels implements the video.PixelRenderer interface. Frame hashes are
// chained. the previous digest value is hashed in with the new frame's
// pixels, so the final value fingerprints the whole sequence of frames and
// not just the last one.
func (dig *Video) SetPixels(idx []uint8) {
	copy(dig.frame, dig.digest[:])
	copy(dig.frame[sha1.Size:], idx)
	dig.digest = sha1.Sum(dig.frame)
}
