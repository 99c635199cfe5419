// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "fmt"

// lif.Neuron holds all of the neuron state variables.
// Vm is the only state carried from tick to tick; everything else is
// recomputed or bookkeeping.  The unsigned integer fields stay within
// [0, 2^Bits - 1] per the saturation policy in Params.Tick.
type Neuron struct {

	// input stimulus consumed on the most recent tick (clamped to VmMax)
	Inp uint32

	// integrated value Vm + Inp on the most recent tick, saturated at VmMax
	Integ uint32

	// membrane potential -- accumulated charge after integrate, leak, and
	// threshold/reset.  The only state that persists across ticks
	Vm uint32

	// whether the neuron spiked on the most recent tick -- a one-tick pulse,
	// not a latch: recomputed every tick
	Spike bool

	// total number of spikes since InitActs
	SpikeCnt int32

	// current inter-spike interval -- ticks since last spike.  Starts at -1
	// when initialized, restarts at 0 on each spike
	ISI int32

	// average inter-spike interval -- -1 until two spikes have bounded an
	// interval, then a running average of completed intervals
	ISIAvg float32
}

// NeuronVars are the names of the logging / display accessible variables
var NeuronVars = []string{"Inp", "Integ", "Vm", "Spike", "SpikeCnt", "ISI", "ISIAvg"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
// as a float32 for logging / plotting.  Spike reads as 0 or 1.
// Note: fields are mixed integer types, so this is an explicit switch rather
// than the uniform-float32 unsafe offset access used for rate-coded neurons.
func (nrn *Neuron) VarByIndex(idx int) float32 {
	switch idx {
	case 0:
		return float32(nrn.Inp)
	case 1:
		return float32(nrn.Integ)
	case 2:
		return float32(nrn.Vm)
	case 3:
		if nrn.Spike {
			return 1
		}
		return 0
	case 4:
		return float32(nrn.SpikeCnt)
	case 5:
		return float32(nrn.ISI)
	case 6:
		return nrn.ISIAvg
	}
	return 0
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}
