package main

import (
	"math"
	"testing"
)

func TestNewRandGenBurnsTenRounds(t *testing.T) {
	seeds := []uint64{1, 42, 0xDEADBEEF, math.MaxUint64}

	for _, seed := range seeds {
		want := RandGen{state: seed}
		for i := 0; i < 10; i++ {
			want.advance()
		}

		got := NewRandGen(seed)
		if got.state != want.state {
			t.Errorf("seed %d: state %d, want %d", seed, got.state, want.state)
		}
	}
}

func TestNextByteContract(t *testing.T) {
	r := NewRandGen(12345)

	for i := 0; i < 100; i++ {
		before := r.state
		b := r.NextByte()

		if want := uint8(before >> 32); b != want {
			t.Fatalf("draw %d: byte %d, want bits 32..39 of state (%d)", i, b, want)
		}
		if r.state == before {
			t.Fatalf("draw %d: state did not advance", i)
		}
	}
}

func TestRandGenDeterminism(t *testing.T) {
	a := NewRandGen(987654321)
	b := NewRandGen(987654321)

	for i := 0; i < 1000; i++ {
		if x, y := a.NextByte(), b.NextByte(); x != y {
			t.Fatalf("draw %d: same seed diverged, %d vs %d", i, x, y)
		}
	}
}

func TestNextByteBelowRange(t *testing.T) {
	limits := []uint8{1, 2, 3, 5, 8, 100, 255}

	for _, limit := range limits {
		r := NewRandGen(uint64(limit) * 7919)
		for i := 0; i < 1000; i++ {
			if b := r.NextByteBelow(limit); b >= limit {
				t.Fatalf("limit %d: got %d", limit, b)
			}
		}
	}
}

func TestNextByteBelowTwoIsFair(t *testing.T) {
	r := NewRandGen(0x0EADBEEFCAFEF00D)

	const draws = 100_000
	var ones int
	for i := 0; i < draws; i++ {
		if r.NextByteBelow(2) == 1 {
			ones++
		}
	}

	ratio := float64(ones) / draws
	if ratio < 0.49 || ratio > 0.51 {
		t.Errorf("ones ratio %.4f, want within 1%% of 0.5", ratio)
	}
}

func TestNextByteBelowZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NextByteBelow(0) did not panic")
		}
	}()

	r := NewRandGen(1)
	r.NextByteBelow(0)
}

func TestSeedStringRoundTrip(t *testing.T) {
	seeds := []uint64{0, 1, 0xABCDEF0123456789, math.MaxUint64}

	for _, seed := range seeds {
		str := SeedToString(seed)
		got, err := SeedFromString(str)
		if err != nil {
			t.Fatalf("seed %d: parse %q: %v", seed, str, err)
		}
		if got != seed {
			t.Errorf("round trip %d -> %q -> %d", seed, str, got)
		}
	}
}
