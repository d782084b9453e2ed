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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new FpsLimiter can be created with:
//
//	lmtr := limiter.NewFPSLimiter(30)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		renderImage()
//	}
package limiter

import (
	"time"
)

// FpsLimiter will trigger at the requested rate.
type FpsLimiter struct {
	framesPerSecond int
	tick            *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		tick:            time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}
	return lim
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	lim.framesPerSecond = framesPerSecond
	lim.tick.Reset(time.Second / time.Duration(framesPerSecond))
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick.C
}

// HasWaited returns true if a trigger was pending, false if the caller is
// running ahead of the limit. It never blocks.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick.C:
		return true
	default:
		return false
	}
}
