// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chip wraps the lif neuron in the pad-level interface of its
silicon rendition: an 8-bit dedicated input bus carrying the stimulus
current, an 8-bit dedicated output bus carrying the membrane potential,
and bit 7 of the bidirectional bus carrying the spike pulse, with an
active-low reset and an enable gate.

This is the thin adapter between the neuron state machine and an
external host driving the pads once per clock -- it adds no behavior
beyond reset, enable-hold, and output latching.
*/
package chip

import (
	"fmt"

	"github.com/emer/lif/lif"
)

// SpikeMask is the bidirectional-bus bit driven with the spike pulse
const SpikeMask byte = 1 << 7

// chip.Chip is the pad-level wrapper around one lif neuron.
// Inputs are sampled and outputs latched on each Step (rising clock edge).
type Chip struct {

	// neuron parameters -- bus widths fix Bits at 8
	Lif lif.Params `view:"inline"`

	// neuron state
	Nrn lif.Neuron `view:"inline"`

	// dedicated input bus: stimulus current for the next Step
	UIIn byte

	// active-low reset: while false, state and outputs are cleared
	RstN bool

	// enable: while false, state and outputs hold their values
	Ena bool

	// dedicated output bus: membrane potential after the last Step
	UoOut byte `inactive:"+"`

	// bidirectional bus outputs: bit 7 = spike pulse
	UioOut byte `inactive:"+"`

	// bidirectional bus output enables: spike bit is always driven
	UioOe byte `inactive:"+"`
}

// NewChip returns a new Chip with default parameters, held in reset
func NewChip() *Chip {
	ck := &Chip{}
	ck.Defaults()
	return ck
}

func (ck *Chip) Defaults() {
	ck.Lif.Defaults()
	ck.RstN = false
	ck.Ena = true
	ck.UioOe = SpikeMask
}

// Validate checks that the configuration fits the 8-bit pad buses
func (ck *Chip) Validate() error {
	if ck.Lif.Bits != 8 {
		return fmt.Errorf("chip.Chip: pad buses are 8 bits wide, Lif.Bits must be 8, got: %d", ck.Lif.Bits)
	}
	return ck.Lif.Validate()
}

// Reset clears the neuron state and output pads, as the reset pad does
func (ck *Chip) Reset() {
	ck.Lif.InitActs(&ck.Nrn)
	ck.UoOut = 0
	ck.UioOut = 0
	ck.UioOe = SpikeMask
}

// Step advances one clock edge: reset dominates, then the enable gate,
// then one neuron tick with the current UIIn, latching the outputs.
func (ck *Chip) Step() {
	if !ck.RstN {
		ck.Reset()
		return
	}
	if !ck.Ena {
		return
	}
	ck.Lif.Tick(&ck.Nrn, uint32(ck.UIIn))
	ck.UoOut = byte(ck.Nrn.Vm)
	if ck.Nrn.Spike {
		ck.UioOut = SpikeMask
	} else {
		ck.UioOut = 0
	}
	ck.UioOe = SpikeMask
}

// StepN advances n clock edges with the current pad inputs
func (ck *Chip) StepN(n int) {
	for i := 0; i < n; i++ {
		ck.Step()
	}
}

// Spike reports the spike pad from the last Step
func (ck *Chip) Spike() bool {
	return ck.UioOut&SpikeMask != 0
}
