// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif is the overall repository for a fixed-width integer leaky
integrate-and-fire (LIF) neuron implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* lif: the core neuron model -- a synchronous state machine that integrates
an unsigned input into the membrane potential each tick, applies an integer
leak (proportional shift-based or fixed subtractive), compares the decayed
value against a threshold, and emits a one-tick spike pulse with a reset of
the membrane to a fixed baseline.  All arithmetic saturates at the width
ceiling and clamps at zero -- values never wrap around.

* chip: the pad-level interface of the neuron as fabricated in silicon --
an 8-bit input bus, an 8-bit membrane output bus, a spike line on the
bidirectional bus, and active-low reset and enable controls, stepped one
clock at a time.

* examples: these actually compile into runnable programs.  examples/neuron
drives a single neuron with configurable stimulus waveforms and plots the
membrane and spike train; examples/fcurve sweeps the input level and plots
the resulting frequency-current curve.
*/
package lif
