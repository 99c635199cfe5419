// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import "testing"

func TestNeuronVars(t *testing.T) {
	lp := Params{}
	lp.Defaults()
	nrn := &Neuron{}
	lp.InitActs(nrn)
	lp.Tick(nrn, 60)

	cor := map[string]float32{
		"Inp":      60,
		"Integ":    60,
		"Vm":       45,
		"Spike":    0,
		"SpikeCnt": 0,
		"ISI":      -1,
		"ISIAvg":   -1,
	}
	for _, vnm := range nrn.VarNames() {
		vl, err := nrn.VarByName(vnm)
		if err != nil {
			t.Error(err)
			continue
		}
		if vl != cor[vnm] {
			t.Errorf("var err: %v: %v, cor: %v\n", vnm, vl, cor[vnm])
		}
	}
	if _, err := nrn.VarByName("Act"); err == nil {
		t.Errorf("var err: invalid name accepted\n")
	}

	lp.Tick(nrn, 255)
	if vl, _ := nrn.VarByName("Spike"); vl != 1 {
		t.Errorf("var err: Spike: %v, cor: 1\n", vl)
	}
}
