// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements a leaky integrate-and-fire (LIF) neuron as a
fixed-width synchronous state machine: each discrete tick integrates an
input stimulus into the membrane potential, applies a decay (leak),
compares against a firing threshold, emits a one-tick spike pulse on
crossing, and resets the membrane to a configured reset value.

All state is unsigned fixed-width integer arithmetic (configurable bit
width, 8 by default), matching digital hardware renditions of the LIF
model.  Arithmetic edge cases are handled by explicit saturation policy:
integration overflow saturates at the maximum representable value and
leak underflow clamps at 0 -- values never silently wrap, which would
otherwise change spike timing.

The tick update is a pure, total function over the valid domain: there
is no error path at runtime.  Configuration validity is checked once,
via Params.Validate, at construction.
*/
package lif

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// LeakModes are the different rules for computing the per-tick membrane decay
type LeakModes int

//go:generate stringer -type=LeakModes

var KiT_LeakModes = kit.Enums.AddEnum(LeakModesN, kit.NotBitFlag, nil)

func (ev LeakModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *LeakModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The leak modes
const (
	// ShiftLeak decays by a right-shift of the accumulated value:
	// leak(x) = x >> Shift -- proportional decay, cheap in hardware
	ShiftLeak LeakModes = iota

	// SubLeak decays by a fixed subtractive constant: leak(x) = min(Sub, x)
	// -- linear decay that reaches exactly 0
	SubLeak

	LeakModesN
)

// LeakParams specifies the per-tick membrane decay rule.
// The decay is a monotonic function of the pre-leak accumulated value,
// and never exceeds it, so the decayed result is never negative.
type LeakParams struct {

	// which decay rule to apply
	Mode LeakModes

	// right-shift amount for ShiftLeak -- decay = acc >> Shift
	Shift uint32 `def:"2" viewif:"Mode=ShiftLeak" min:"0" max:"31"`

	// subtractive decay amount for SubLeak -- capped at the accumulated value
	Sub uint32 `def:"8" viewif:"Mode=SubLeak"`
}

func (lk *LeakParams) Defaults() {
	lk.Mode = ShiftLeak
	lk.Shift = 2
	lk.Sub = 8
}

func (lk *LeakParams) Update() {
}

// Leak returns the decay amount for given pre-leak accumulated value.
// Result is always <= acc.
func (lk *LeakParams) Leak(acc uint64) uint64 {
	switch lk.Mode {
	case SubLeak:
		sub := uint64(lk.Sub)
		if sub > acc {
			return acc
		}
		return sub
	default:
		return acc >> lk.Shift
	}
}

// Params are the full set of leaky integrate-and-fire neuron parameters,
// fixed at construction: bit width, leak rule, firing threshold, and
// post-spike reset value.  Call Defaults then adjust, then Update to
// recompute derived values, and Validate to check the configuration.
type Params struct {

	// bit width W of the membrane potential and input stimulus -- both are
	// unsigned integers in [0, 2^W - 1]
	Bits uint32 `def:"8" min:"1" max:"32"`

	// membrane decay rule applied each tick, to the integrated value
	Leak LeakParams `view:"inline"`

	// firing threshold -- spike is emitted on any tick where the decayed
	// membrane value is >= Thr
	Thr uint32 `def:"200"`

	// membrane value assigned immediately after a spike -- excess charge
	// above threshold is discarded, not carried over.  Normally < Thr;
	// a Reset >= Thr deliberately produces spiking on consecutive ticks
	Reset uint32 `def:"0"`

	// maximum representable membrane value = 2^Bits - 1 -- computed by Update
	VmMax uint32 `inactive:"+" view:"-" json:"-" xml:"-"`
}

func (lp *Params) Defaults() {
	lp.Bits = 8
	lp.Leak.Defaults()
	lp.Thr = 200
	lp.Reset = 0
	lp.Update()
}

// Update must be called after any changes to parameters
func (lp *Params) Update() {
	lp.Leak.Update()
	if lp.Bits == 0 || lp.Bits > 32 {
		lp.VmMax = 0
		return
	}
	lp.VmMax = uint32(uint64(1)<<lp.Bits - 1)
}

// Validate checks the configuration once at construction time.
// An out-of-range configuration is an error here, not per-tick:
// the tick update itself is total and has no failure path.
func (lp *Params) Validate() error {
	if lp.Bits < 1 || lp.Bits > 32 {
		return fmt.Errorf("lif.Params: Bits must be in 1..32, got: %d", lp.Bits)
	}
	lp.Update()
	if lp.Thr > lp.VmMax {
		return fmt.Errorf("lif.Params: Thr %d exceeds max representable value %d", lp.Thr, lp.VmMax)
	}
	if lp.Reset > lp.VmMax {
		return fmt.Errorf("lif.Params: Reset %d exceeds max representable value %d", lp.Reset, lp.VmMax)
	}
	if lp.Leak.Shift > 31 {
		return fmt.Errorf("lif.Params: Leak.Shift must be in 0..31, got: %d", lp.Leak.Shift)
	}
	if lp.Leak.Mode == SubLeak && lp.Leak.Sub > lp.VmMax {
		return fmt.Errorf("lif.Params: Leak.Sub %d exceeds max representable value %d", lp.Leak.Sub, lp.VmMax)
	}
	return nil
}

// InitActs initializes the neuron state to its post-reset baseline:
// membrane at 0, no spike, inter-spike-interval tracking cleared.
func (lp *Params) InitActs(nrn *Neuron) {
	nrn.Inp = 0
	nrn.Integ = 0
	nrn.Vm = 0
	nrn.Spike = false
	nrn.SpikeCnt = 0
	nrn.ISI = -1
	nrn.ISIAvg = -1
}

// Tick advances the neuron by one discrete time step with given input
// stimulus: integrate, leak, saturate, threshold-compare, spike, reset.
// It consults no state beyond nrn.Vm, and the next tick observes exactly
// the Vm it produces.  inp values above VmMax are treated as VmMax.
func (lp *Params) Tick(nrn *Neuron, inp uint32) {
	if inp > lp.VmMax {
		inp = lp.VmMax
	}
	acc := uint64(nrn.Vm) + uint64(inp) // wide: cannot overflow for Bits <= 32
	dec := acc - lp.Leak.Leak(acc)
	if dec > uint64(lp.VmMax) {
		dec = uint64(lp.VmMax) // saturate, never wrap
	}
	nrn.Inp = inp
	if acc > uint64(lp.VmMax) {
		nrn.Integ = lp.VmMax
	} else {
		nrn.Integ = uint32(acc)
	}
	if dec >= uint64(lp.Thr) {
		nrn.Spike = true
		nrn.Vm = lp.Reset // full discard of charge above threshold
		nrn.SpikeCnt++
		lp.ISIFmSpike(nrn)
	} else {
		nrn.Spike = false
		nrn.Vm = uint32(dec)
		if nrn.ISI >= 0 {
			nrn.ISI++
		}
	}
}

// ISIFmSpike updates the inter-spike-interval tracking when a spike occurs.
// ISI restarts at 0 on every spike; ISIAvg integrates completed intervals
// and remains -1 until the second spike provides the first full interval.
func (lp *Params) ISIFmSpike(nrn *Neuron) {
	if nrn.ISI >= 0 {
		isi := float32(nrn.ISI + 1)
		if nrn.ISIAvg < 0 {
			nrn.ISIAvg = isi
		} else {
			nrn.ISIAvg += (isi - nrn.ISIAvg) / 2
		}
	}
	nrn.ISI = 0
}
