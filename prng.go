package main

import (
	"fmt"
	"strconv"
	"time"
)

// RandGen is a xorshift64 generator. The whole state is one word,
// shuffling is the only thing that draws from it.
type RandGen struct {
	state uint64
}

func NewRandGen(seed uint64) RandGen {
	r := RandGen{state: seed}
	// early outputs of a weak seed correlate with the seed itself,
	// burn a few rounds before handing the generator out
	for i := 0; i < 10; i++ {
		r.advance()
	}
	return r
}

func (r *RandGen) advance() {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
}

// NextByte returns bits 32..39 of the state, then advances.
func (r *RandGen) NextByte() uint8 {
	b := uint8(r.state >> 32)
	r.advance()
	return b
}

// NextByteBelow returns a byte in [0, limit) without modulo bias.
// limit 0 is a programming error.
func (r *RandGen) NextByteBelow(limit uint8) uint8 {
	if limit == 0 {
		panic("NextByteBelow: limit is 0")
	}

	// largest byte that still divides evenly into limit buckets
	moduloLimit := 255 - (255 % limit) - 1

	for {
		b := r.NextByte()
		if b <= moduloLimit {
			return b % limit
		}
	}
}

func NewSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func SeedToString(seed uint64) string {
	return fmt.Sprintf("%016X", seed)
}

func SeedFromString(str string) (uint64, error) {
	return strconv.ParseUint(str, 16, 64)
}
