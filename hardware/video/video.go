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

package video

import (
	"fmt"

	"github.com/heliosemu/helios/hardware/memory/memorymap"
)

// Dimensions of the frame encoded in one half of the video area and of the
// expanded frame returned by Present.
const (
	FrameWidth    = 64
	FrameHeight   = 64
	PresentWidth  = 256
	PresentHeight = 256

	// every frame pixel becomes a square of this many presentation pixels
	// along each side
	scale = PresentWidth / FrameWidth
)

// the size in bytes of one half of the video area.
const halfSize = memorymap.VideoSize / 2

// VideoRegion is the subset of the memory bus that the engine snapshots
// sealed frames from.
type VideoRegion interface {
	Read(address uint16) (uint8, error)
}

// PixelRenderer implementations display, or otherwise work with, the frames
// sealed by the display engine. For example digest.Video.
type PixelRenderer interface {
	// NewFrame is called as a frame is sealed, before SetPixels
	NewFrame(frameNum int)

	// SetPixels receives the sealed frame at presentation size, one palette
	// value per byte, row major. the slice is reused between frames
	SetPixels(idx []uint8)
}

// Engine is the display engine. It watches writes into the video area of the
// bus and maintains the stable frame that the presentation layer shows.
type Engine struct {
	mem VideoRegion

	// which half of the video area the running program is writing into. 0
	// is half A at the area origin, 1 is half B above it
	back int

	// stable copy of the most recently sealed half
	front [halfSize]uint8

	// the front copy expanded to presentation size
	pixels [PresentWidth * PresentHeight]uint8

	// the number of frames sealed since power on
	frameNum int

	renderers []PixelRenderer
}

// NewEngine is the preferred method of initialisation for the display
// Engine. The engine sees nothing until it is also attached to the bus as
// the video monitor.
func NewEngine(mem VideoRegion) *Engine {
	return &Engine{mem: mem}
}

// AddPixelRenderer registers an (additional) implementation of
// PixelRenderer. Renderers are notified of every sealed frame in the order
// they were added.
func (eng *Engine) AddPixelRenderer(r PixelRenderer) {
	eng.renderers = append(eng.renderers, r)
}

// Reset the engine to its power-on state. Half A becomes the back half, the
// seal count returns to zero and the stable frame goes black. The contents
// of the video area itself belong to the bus and are left alone.
func (eng *Engine) Reset() {
	eng.back = 0
	eng.frameNum = 0
	for i := range eng.front {
		eng.front[i] = 0
	}
	for i := range eng.pixels {
		eng.pixels[i] = 0
	}
}

func (eng *Engine) String() string {
	half := "A"
	if eng.back != 0 {
		half = "B"
	}
	return fmt.Sprintf("frame %d  writing half %s", eng.frameNum, half)
}

// Frame returns the number of frames sealed since power on.
func (eng *Engine) Frame() int {
	return eng.frameNum
}

// VideoWrite implements the memory.VideoMonitor interface. A write to the
// final byte of the back half seals the frame; every other write is left to
// accumulate in the bus until then.
func (eng *Engine) VideoWrite(address uint16, data uint8) {
	offset := int(address ^ memorymap.OriginVideo)
	if offset/halfSize != eng.back || offset%halfSize != halfSize-1 {
		return
	}
	eng.seal()
}

// seal snapshots the back half, swaps the half roles and notifies the
// attached renderers.
func (eng *Engine) seal() {
	base := memorymap.OriginVideo + uint16(eng.back*halfSize)
	for i := 0; i < halfSize; i++ {
		// the bus in this machine cannot fail a read
		v, _ := eng.mem.Read(base + uint16(i))
		eng.front[i] = v
	}

	eng.frameNum++
	eng.back = 1 - eng.back
	eng.expand()

	for _, r := range eng.renderers {
		r.NewFrame(eng.frameNum)
		r.SetPixels(eng.pixels[:])
	}
}

// expand the front copy into the presentation frame.
func (eng *Engine) expand() {
	for p := 0; p < FrameWidth*FrameHeight; p++ {
		bit := 3 * p
		b := bit >> 3

		v := uint16(eng.front[b])
		if b+1 < halfSize {
			v |= uint16(eng.front[b+1]) << 8
		}
		idx := uint8(v>>(bit&0x07)) & 0x07

		x := (p % FrameWidth) * scale
		y := (p / FrameWidth) * scale
		for dy := 0; dy < scale; dy++ {
			row := (y+dy)*PresentWidth + x
			for dx := 0; dx < scale; dx++ {
				eng.pixels[row+dx] = idx
			}
		}
	}
}

// Present returns the most recently sealed frame at presentation size, one
// palette value per byte, row major. The slice must not be modified and its
// contents are stable only until the next seal.
//
// Present never blocks and never waits for a seal. Before the first seal of
// a run the frame is all black.
func (eng *Engine) Present() []uint8 {
	return eng.pixels[:]
}
