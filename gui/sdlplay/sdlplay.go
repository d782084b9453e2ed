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

// Package sdlplay is the SDL presentation layer for playmode. It opens a
// window showing the display engine's stable frame and queues the audio
// engine's sample stream on an SDL audio device.
//
// The package contains no domain logic. It paces the machine against the
// wall clock in 60Hz batches of CPU cycles and shows the most recently
// sealed frame at the presentation cap. A program that seals frames faster
// than the cap loses nothing, the skipped frames simply are not shown.
package sdlplay

import (
	"fmt"
	"time"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware"
	"github.com/heliosemu/helios/hardware/clocks"
	"github.com/heliosemu/helios/hardware/cpu"
	"github.com/heliosemu/helios/hardware/video"
	"github.com/heliosemu/helios/logger"
	"github.com/heliosemu/helios/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture.
const pixelDepth = 4

// the rate at which the machine is advanced. each tick runs a batch of
// ClockHz/ticksPerSecond cycles.
const ticksPerSecond = 60

// SdlPlay is the SDL implementation of the playmode window. It implements
// the video.PixelRenderer interface.
type SdlPlay struct {
	hel *hardware.Helios
	snd *sound

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the most recently sealed frame converted through the palette. copied
	// to the texture at presentation time
	pixels []byte

	// a seal has happened since the last presentation
	dirty bool

	// limit presentations to the FPSCap
	lmtr *limiter.FpsLimiter

	// frame count and time of the last window title update
	titleFrame int
	titleTime  time.Time
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. A scale value of 0 or less means the video.scale preference.
//
// Registers itself as a pixel renderer on the display engine and attaches
// an SDL audio device to the audio engine.
func NewSdlPlay(hel *hardware.Helios, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		hel:    hel,
		pixels: make([]byte, video.PresentWidth*video.PresentHeight*pixelDepth),
		lmtr:   limiter.NewFPSLimiter(clocks.FPSCap),
	}

	if scale <= 0 {
		scale = hel.Instance.Prefs.VideoScale.Get().(int)
	}
	if scale < 1 {
		scale = 1
	}

	// preset alpha channel. the value never changes
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Helios",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(video.PresentWidth*scale), int32(video.PresentHeight*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is presentation sized. the renderer scales it to the
	// window when it is copied
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.PresentWidth, video.PresentHeight)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = newSound()
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	hel.Video.AddPixelRenderer(scr)
	hel.Audio.SetMixer(scr.snd)

	return scr, nil
}

// NewFrame implements the video.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(frameNum int) {
}

// SetPixels implements the video.PixelRenderer interface. The palette
// conversion happens here, at seal rate, so that presentation is a straight
// texture update.
func (scr *SdlPlay) SetPixels(idx []uint8) {
	for i, v := range idx {
		col := video.Palette[v&0x07]
		p := i * pixelDepth
		scr.pixels[p] = col.R
		scr.pixels[p+1] = col.G
		scr.pixels[p+2] = col.B
	}
	scr.dirty = true
}

// Run the machine against the wall clock until the program ends or the
// window is closed.
//
// A crashed CPU does not close the window. The last frame stays up for
// inspection and the fault is returned once the window is closed.
func (scr *SdlPlay) Run() error {
	defer scr.Destroy()

	// show the initial black frame so the window is not garbage before the
	// first seal
	if err := scr.render(); err != nil {
		return err
	}

	tick := time.NewTicker(time.Second / ticksPerSecond)
	defer tick.Stop()

	const cyclesPerTick = clocks.ClockHz / ticksPerSecond
	target := scr.hel.Cycles()

	var runErr error
	reported := false

	running := true
	for running {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		if runErr == nil && scr.hel.CPU.State() == cpu.Running {
			target += cyclesPerTick
			for scr.hel.CPU.State() == cpu.Running && scr.hel.Cycles() < target {
				if err := scr.hel.Step(); err != nil {
					runErr = err
					break
				}
			}
		} else if !reported {
			reported = true
			if runErr != nil {
				logger.Logf(logger.Allow, "sdlplay", "%v", runErr)
			} else {
				logger.Logf(logger.Allow, "sdlplay", "program %s", scr.hel.CPU.State())
			}
		}

		if scr.dirty && scr.lmtr.HasWaited() {
			scr.dirty = false
			if err := scr.render(); err != nil {
				return err
			}
		}

		scr.updateTitle()

		<-tick.C
	}

	if err := scr.hel.End(); err != nil && runErr == nil {
		runErr = err
	}

	return runErr
}

// render copies the pixel array to the screen.
func (scr *SdlPlay) render() error {
	err := scr.texture.Update(nil, scr.pixels, video.PresentWidth*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// updateTitle refreshes the frame rate shown in the window title, once a
// second.
func (scr *SdlPlay) updateTitle() {
	if time.Since(scr.titleTime) < time.Second {
		return
	}

	frame := scr.hel.Video.Frame()
	fps := frame - scr.titleFrame
	scr.titleFrame = frame
	scr.titleTime = time.Now()

	name := "Helios"
	if scr.hel.Loader.HasLoaded() {
		name = fmt.Sprintf("Helios (%s)", scr.hel.Loader.ShortName())
	}
	scr.window.SetTitle(fmt.Sprintf("%s %d fps", name, fps))
}

// Destroy releases all SDL resources. Safe to call more than once.
func (scr *SdlPlay) Destroy() {
	scr.snd.close()

	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}

	sdl.Quit()
}
