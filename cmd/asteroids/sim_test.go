package main

import (
	"testing"
)

func TestSimulateIsReproducible(t *testing.T) {
	first, err := simulate("asteroids", 42, 2000)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}
	second, err := simulate("asteroids", 42, first.Record.Ticks)
	if err != nil {
		t.Fatalf("simulate() error: %v", err)
	}

	if first.Record != second.Record {
		t.Errorf("replay = %+v, expected %+v", second.Record, first.Record)
	}
	if first.Record.Ticks == 0 || first.Record.Ticks > 2000 {
		t.Errorf("ticks = %d, expected 1..2000", first.Record.Ticks)
	}
}

func TestSimulateUnknownGame(t *testing.T) {
	if _, err := simulate("pong", 1, 10); err == nil {
		t.Error("simulate() of an unknown game should fail")
	}
}
