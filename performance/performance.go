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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/govern"
	"github.com/heliosemu/helios/hardware"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/romloader"
)

// sentinal error returned by the Run() loop when the measurement period has
// elapsed.
var timedOut = errors.New("performance timed out")

// leadtime gives the machine a chance to settle before measurement begins.
const leadtime = 2 * time.Second

// Check the performance of the emulator using the supplied program.
//
// The emulation runs uncapped for the specified duration and will create a
// cpu profile, a memory profile, or both, as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, loader romloader.Loader, duration string) error {
	ins, err := instance.NewInstance(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	ins.Label = instance.Performance

	hel, err := hardware.NewHelios(ins)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = hel.AttachProgram(loader)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// markers taken when the leadtime concludes and measurement begins
	var measureStart time.Time
	var startFrame int
	var startCycles int64

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals
		// false to indicate that the leadtime has concluded and measurement
		// should start; signals true when the duration has expired.
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadtime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check the timerChan every PerformanceBrake CPU instructions.
		// checking a channel is relatively expensive and would otherwise
		// dominate the very loop being measured
		performanceBrake := 0

		return hel.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return govern.Ending, timedOut
					}

					// leadtime has concluded. measurement begins now
					measureStart = time.Now()
					startFrame = hel.Video.Frame()
					startCycles = hel.Cycles()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	if measureStart.IsZero() {
		return curated.Errorf("performance: program ended before the measurement period began")
	}

	// a program that halts mid-measurement is reported over the time it
	// actually ran for
	elapsed := time.Since(measureStart).Seconds()

	numFrames := hel.Video.Frame() - startFrame
	numCycles := hel.Cycles() - startCycles

	fps := CalcFPS(numFrames, elapsed)
	hz, accuracy := CalcClock(numCycles, elapsed)

	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, elapsed)))
	output.Write([]byte(fmt.Sprintf("%.2f MHz (%.1f%% of ideal clock)\n", hz/1e6, accuracy)))

	return nil
}
