package main

import (
	"testing"
	"time"
)

func TestTimerNormalize(t *testing.T) {
	timer := Timer{Duration: time.Second}

	timer.Current = 0
	if got := timer.Normalize(); got != 0 {
		t.Errorf("Normalize at 0 = %v, want 0", got)
	}

	timer.Current = time.Second / 4
	if got := timer.Normalize(); got != 0.25 {
		t.Errorf("Normalize at a quarter = %v, want 0.25", got)
	}

	timer.Current = 2 * time.Second
	if got := timer.Normalize(); got != 1 {
		t.Errorf("Normalize past the end = %v, want 1", got)
	}

	timer.Current = -time.Second
	if got := timer.Normalize(); got != 0 {
		t.Errorf("Normalize below zero = %v, want 0", got)
	}
}
