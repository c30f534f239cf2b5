package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// LogicalKey is one of the eight gameplay keys.
type LogicalKey uint8

const (
	KeyW LogicalKey = iota
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight

	LogicalKeyCount
)

// KeyBits packs the down state of every logical key into one byte.
type KeyBits uint8

func (k LogicalKey) Bit() KeyBits {
	return 1 << k
}

// keyDirections maps each gameplay key to the direction it pushes a tile.
var keyDirections = [LogicalKeyCount]Direction{
	KeyW:          DirUp,
	KeyA:          DirLeft,
	KeyS:          DirDown,
	KeyD:          DirRight,
	KeyArrowUp:    DirUp,
	KeyArrowLeft:  DirLeft,
	KeyArrowDown:  DirDown,
	KeyArrowRight: DirRight,
}

// keyBindings are the physical keys behind the logical ones.
var keyBindings = [LogicalKeyCount]eb.Key{
	KeyW:          eb.KeyW,
	KeyA:          eb.KeyA,
	KeyS:          eb.KeyS,
	KeyD:          eb.KeyD,
	KeyArrowUp:    eb.KeyArrowUp,
	KeyArrowLeft:  eb.KeyArrowLeft,
	KeyArrowDown:  eb.KeyArrowDown,
	KeyArrowRight: eb.KeyArrowRight,
}

// Keyboard turns asynchronous key down notifications into single frame
// "just pressed" pulses.
//
// KeyDown may fire at any moment between frames and only ever sets bits
// in the accumulator. Step consumes the accumulator exactly once per
// frame and clears it, so a key held across many frames pulses once,
// and a press that lands between two frames is never lost.
type Keyboard struct {
	down     KeyBits
	prevDown KeyBits
	accum    KeyBits
	pressed  KeyBits
}

// KeyDown records that key was reported down since the last Step.
func (kb *Keyboard) KeyDown(key LogicalKey) {
	kb.accum |= key.Bit()
}

// Step rolls the snapshots over for a new frame.
func (kb *Keyboard) Step() {
	kb.prevDown = kb.down

	if kb.accum != 0 {
		kb.down = kb.accum
		kb.accum = 0
	} else {
		kb.down = 0
	}

	kb.pressed = kb.down &^ kb.prevDown
}

func (kb *Keyboard) JustPressed(key LogicalKey) bool {
	return kb.pressed&key.Bit() != 0
}

// PressedDirection decodes this frame's edge set into a single move.
// When several keys pulse on the same frame the first one in key order
// wins.
func (kb *Keyboard) PressedDirection() Direction {
	for key := LogicalKey(0); key < LogicalKeyCount; key++ {
		if kb.pressed&key.Bit() != 0 {
			return keyDirections[key]
		}
	}
	return DirNone
}

// PollKeys reports every held gameplay key to the keyboard. A held key
// keeps its accumulator bit set tick after tick, so it pulses only on
// its first frame.
func PollKeys(kb *Keyboard) {
	for key := LogicalKey(0); key < LogicalKeyCount; key++ {
		if eb.IsKeyPressed(keyBindings[key]) {
			kb.KeyDown(key)
		}
	}
}
