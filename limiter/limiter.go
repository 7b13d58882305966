// This file is part of Tasedit.
//
// Tasedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tasedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tasedit.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter converts the passing of real time into a count of
// simulation steps that are owed. The count is fractional and accumulates over
// successive calls to Accumulate(). Whole steps are removed with Consume().
//
// The number of owed steps is clamped so that a stall in the host (a slow
// frame, the window being dragged, a debugger breakpoint) doesn't result in a
// long burst of simulation once the stall is over. Time that can't be
// converted into owed steps because of the clamp is recorded as dropped.
//
// The Limiter doesn't read the clock itself. The time is always supplied by
// the caller, which means that a Limiter can be driven by synthetic time in
// tests and in scripts.
package limiter

import (
	"time"
)

// DefaultMaxBacklog is the number of whole steps that can be owed before
// further time is dropped.
const DefaultMaxBacklog = 2.0

// Limiter accumulates owed simulation steps.
type Limiter struct {
	// the requested number of steps per second
	requested float64

	// upper limit of owed
	maxBacklog float64

	// number of steps owed. may be fractional
	owed float64

	// number of steps lost because of maxBacklog
	dropped float64

	// the time supplied to the most recent call to Accumulate()
	last    time.Time
	started bool

	// actual calculation
	actual         float64
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(maxBacklog float64) *Limiter {
	lmtr := &Limiter{}
	lmtr.SetMaxBacklog(maxBacklog)
	return lmtr
}

// SetMaxBacklog changes the maximum number of steps that can be owed. Values
// less than one are treated as one.
func (lmtr *Limiter) SetMaxBacklog(maxBacklog float64) {
	lmtr.maxBacklog = max(maxBacklog, 1.0)
	lmtr.owed = min(lmtr.owed, lmtr.maxBacklog)
}

// MaxBacklog returns the current maximum backlog.
func (lmtr *Limiter) MaxBacklog() float64 {
	return lmtr.maxBacklog
}

// set target rate. resets the actual rate measurement
func (lmtr *Limiter) setRate(rate float64, now time.Time) {
	lmtr.requested = rate
	lmtr.actualCtTarget = max(int(lmtr.requested)/2, 1)
	lmtr.actualCt = 0
	lmtr.actualRefTime = now
}

// Accumulate converts the time elapsed since the previous call into owed
// steps at the given rate (steps per second). The first call after
// initialisation or a Reset() only records the time.
//
// Returns the number of steps dropped by this call because of the backlog
// clamp.
func (lmtr *Limiter) Accumulate(now time.Time, rate float64) float64 {
	if rate != lmtr.requested {
		lmtr.setRate(rate, now)
	}

	if !lmtr.started {
		lmtr.started = true
		lmtr.last = now
		lmtr.actualRefTime = now
		return 0
	}

	// time going backwards is treated as no time at all
	elapsed := max(now.Sub(lmtr.last).Seconds(), 0)
	lmtr.last = now

	lmtr.owed += elapsed * rate

	var dropped float64
	if lmtr.owed > lmtr.maxBacklog {
		dropped = lmtr.owed - lmtr.maxBacklog
		lmtr.owed = lmtr.maxBacklog
		lmtr.dropped += dropped
	}

	return dropped
}

// Owed returns the number of steps owed.
func (lmtr *Limiter) Owed() float64 {
	return lmtr.owed
}

// Whole returns true if at least one whole step is owed.
func (lmtr *Limiter) Whole() bool {
	return lmtr.owed >= 1.0
}

// Consume removes one whole step from the owed count. Returns false if there
// is no whole step to consume.
func (lmtr *Limiter) Consume() bool {
	if !lmtr.Whole() {
		return false
	}
	lmtr.owed -= 1.0
	lmtr.measureActual()
	return true
}

// Dropped returns the total number of steps dropped since the Limiter was
// created or last Reset().
func (lmtr *Limiter) Dropped() float64 {
	return lmtr.dropped
}

// Reset clears the owed and dropped counts. The next call to Accumulate() will
// only record the time.
func (lmtr *Limiter) Reset() {
	lmtr.owed = 0
	lmtr.dropped = 0
	lmtr.started = false
	lmtr.actual = 0
	lmtr.actualCt = 0
}

// Requested returns the rate most recently supplied to Accumulate().
func (lmtr *Limiter) Requested() float64 {
	return lmtr.requested
}

// Actual returns the measured rate at which steps are being consumed. The
// measurement is taken in terms of the time supplied to Accumulate() and is
// updated roughly twice a second.
func (lmtr *Limiter) Actual() float64 {
	return lmtr.actual
}

// called every consumed step to calculate the actual rate being achieved
func (lmtr *Limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt < lmtr.actualCtTarget {
		return
	}

	d := lmtr.last.Sub(lmtr.actualRefTime).Seconds()
	if d <= 0 {
		return
	}

	lmtr.actual = float64(lmtr.actualCt) / d

	// remeasure every half second or so. if actual is low then remeasure
	// every step
	if lmtr.actual > 2 {
		lmtr.actualCtTarget = int(lmtr.actual) / 2
	} else {
		lmtr.actualCtTarget = 1
	}

	lmtr.actualRefTime = lmtr.last
	lmtr.actualCt = 0
}
