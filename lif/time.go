// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

// lif.Time contains the timing state for advancing a neuron.
// One tick = one synchronous clock edge of the state machine.
type Time struct {

	// accumulated amount of time the neuron has been running,
	// in simulation-time (not real world time), in seconds.
	Time float32

	// tick counter within the current run -- reset by Reset
	Tick int

	// total tick count -- increments continuously from whenever it was
	// last reset, across runs
	TickTot int

	// amount of time to increment per tick
	TimePerTick float32 `def:"0.001"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerTick = 0.001
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Tick = 0
	tm.TickTot = 0
	if tm.TimePerTick == 0 {
		tm.Defaults()
	}
}

// TickInc increments at the tick level
func (tm *Time) TickInc() {
	tm.Tick++
	tm.TickTot++
	tm.Time += tm.TimePerTick
}
