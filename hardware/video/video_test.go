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

package video_test

import (
	"image/color"
	"testing"

	"github.com/heliosemu/helios/hardware/memory"
	"github.com/heliosemu/helios/hardware/video"
	"github.com/heliosemu/helios/test"
)

func newTestEngine(t *testing.T) (*memory.Bus, *video.Engine) {
	t.Helper()
	mem := memory.NewBus()
	eng := video.NewEngine(mem)
	mem.AttachVideo(eng)
	return mem, eng
}

func TestSealAndPresent(t *testing.T) {
	mem, eng := newTestEngine(t)

	// a write of palette value 3 at the start of the back half is not
	// visible before the frame is sealed
	test.ExpectSuccess(t, mem.Write(0xf000, 0x03))
	test.ExpectEquality(t, eng.Frame(), 0)
	test.ExpectEquality(t, eng.Present()[0], uint8(0))

	// writing the final byte of the back half seals the frame
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 1)

	// pixel (0,0) expands to a 4x4 block of presentation pixels
	pix := eng.Present()
	test.ExpectEquality(t, pix[0], uint8(3))
	test.ExpectEquality(t, pix[3], uint8(3))
	test.ExpectEquality(t, pix[3*256+3], uint8(3))
	test.ExpectEquality(t, pix[4], uint8(0))
	test.ExpectEquality(t, pix[4*256], uint8(0))
}

func TestDoubleBufferDiscipline(t *testing.T) {
	mem, eng := newTestEngine(t)

	// the end of half B does not seal while the back half is A
	test.ExpectSuccess(t, mem.Write(0xfbff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 0)

	// seal half A. half B becomes the back half
	test.ExpectSuccess(t, mem.Write(0xf000, 0x01))
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 1)
	test.ExpectEquality(t, eng.Present()[0], uint8(1))

	// writes into half B accumulate without disturbing the stable frame
	test.ExpectSuccess(t, mem.Write(0xf600, 0x02))
	test.ExpectEquality(t, eng.Present()[0], uint8(1))

	// the end of half A no longer seals
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 1)

	// sealing half B swaps the roles back again
	test.ExpectSuccess(t, mem.Write(0xfbff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 2)
	test.ExpectEquality(t, eng.Present()[0], uint8(2))
}

func TestPackedPixels(t *testing.T) {
	mem, eng := newTestEngine(t)

	// 0xdb holds pixel values 3 and 3 and the low two bits of a third
	// pixel that straddles into the next byte
	test.ExpectSuccess(t, mem.Write(0xf000, 0xdb))
	test.ExpectSuccess(t, mem.Write(0xf001, 0x01))
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))

	pix := eng.Present()
	test.ExpectEquality(t, pix[0], uint8(3))  // pixel 0
	test.ExpectEquality(t, pix[4], uint8(3))  // pixel 1
	test.ExpectEquality(t, pix[8], uint8(7))  // pixel 2, straddling
	test.ExpectEquality(t, pix[12], uint8(0)) // pixel 3
}

func TestFullFrame(t *testing.T) {
	mem, eng := newTestEngine(t)

	// fill the whole back half. the final write doubles as the seal
	for a := 0xf000; a <= 0xf5ff; a++ {
		test.DemandSuccess(t, mem.Write(uint16(a), 0xff))
	}
	test.ExpectEquality(t, eng.Frame(), 1)

	for _, p := range eng.Present() {
		test.DemandEquality(t, p, uint8(7))
	}
}

type renderer struct {
	frames []int
	pixel0 []uint8
}

func (r *renderer) NewFrame(frameNum int) {
	r.frames = append(r.frames, frameNum)
}

func (r *renderer) SetPixels(idx []uint8) {
	r.pixel0 = append(r.pixel0, idx[0])
}

func TestPixelRenderer(t *testing.T) {
	mem, eng := newTestEngine(t)
	r := &renderer{}
	eng.AddPixelRenderer(r)

	test.ExpectSuccess(t, mem.Write(0xf000, 0x04))
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))
	test.ExpectSuccess(t, mem.Write(0xf600, 0x05))
	test.ExpectSuccess(t, mem.Write(0xfbff, 0x00))

	test.DemandEquality(t, len(r.frames), 2)
	test.ExpectEquality(t, r.frames[0], 1)
	test.ExpectEquality(t, r.frames[1], 2)
	test.ExpectEquality(t, r.pixel0[0], uint8(4))
	test.ExpectEquality(t, r.pixel0[1], uint8(5))
}

func TestReset(t *testing.T) {
	mem, eng := newTestEngine(t)

	test.ExpectSuccess(t, mem.Write(0xf000, 0x07))
	test.ExpectSuccess(t, mem.Write(0xf5ff, 0x00))
	test.ExpectEquality(t, eng.Frame(), 1)
	test.ExpectEquality(t, eng.Present()[0], uint8(7))
	test.ExpectEquality(t, eng.String(), "frame 1  writing half B")

	eng.Reset()
	test.ExpectEquality(t, eng.Frame(), 0)
	test.ExpectEquality(t, eng.Present()[0], uint8(0))
	test.ExpectEquality(t, eng.String(), "frame 0  writing half A")
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, video.Palette[0], color.RGBA{0, 0, 0, 255})
	test.ExpectEquality(t, video.Palette[3], color.RGBA{0, 255, 0, 255})
	test.ExpectEquality(t, video.Palette[6], color.RGBA{192, 192, 192, 255})
	test.ExpectEquality(t, video.Palette[7], color.RGBA{255, 255, 255, 255})
}
