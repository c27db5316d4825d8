package core

import "testing"

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "State", Params: []Parameter{Uint64Param("generation", "Generation", 12)}},
		{Name: "Seeding", Params: []Parameter{FloatParam("density", "Density", 0.25)}},
	}}
	p, ok := snap.Lookup("density")
	if !ok || p.Value != "0.25" || p.Type != ParamTypeFloat {
		t.Fatalf("Lookup(density)=%+v, %v", p, ok)
	}
	p, ok = snap.Lookup("generation")
	if !ok || p.Value != "12" {
		t.Fatalf("Lookup(generation)=%+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
