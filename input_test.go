package main

import "testing"

func TestKeyboardSinglePulse(t *testing.T) {
	var kb Keyboard

	kb.KeyDown(KeyW)
	kb.Step()

	if !kb.JustPressed(KeyW) {
		t.Fatal("press not visible on the frame after KeyDown")
	}
	if dir := kb.PressedDirection(); dir != DirUp {
		t.Fatalf("direction %v, want Up", dir)
	}

	kb.Step()

	if kb.JustPressed(KeyW) {
		t.Error("press visible for more than one frame")
	}
	if dir := kb.PressedDirection(); dir != DirNone {
		t.Errorf("direction %v, want None", dir)
	}
}

func TestKeyboardHeldKeyPulsesOnce(t *testing.T) {
	var kb Keyboard

	pulses := 0
	for frame := 0; frame < 30; frame++ {
		kb.KeyDown(KeyArrowDown)
		kb.Step()
		if kb.JustPressed(KeyArrowDown) {
			pulses++
		}
	}

	if pulses != 1 {
		t.Errorf("held key pulsed %d times, want 1", pulses)
	}
}

func TestKeyboardRepressAfterRelease(t *testing.T) {
	var kb Keyboard

	kb.KeyDown(KeyD)
	kb.Step()
	if !kb.JustPressed(KeyD) {
		t.Fatal("first press lost")
	}

	// released: no notification before this frame
	kb.Step()
	if kb.JustPressed(KeyD) {
		t.Fatal("phantom press on release frame")
	}

	kb.KeyDown(KeyD)
	kb.Step()
	if !kb.JustPressed(KeyD) {
		t.Error("second press lost")
	}
}

func TestKeyboardPressBetweenFramesIsKept(t *testing.T) {
	var kb Keyboard

	// a few empty frames pass
	kb.Step()
	kb.Step()

	// the notification lands between frames
	kb.KeyDown(KeyA)

	kb.Step()
	if !kb.JustPressed(KeyA) {
		t.Error("press that landed between frames was lost")
	}
}

func TestKeyboardEdgesArePerBit(t *testing.T) {
	var kb Keyboard

	kb.KeyDown(KeyW)
	kb.Step()

	// W stays held while A arrives
	kb.KeyDown(KeyW)
	kb.KeyDown(KeyA)
	kb.Step()

	if kb.JustPressed(KeyW) {
		t.Error("held W pulsed again")
	}
	if !kb.JustPressed(KeyA) {
		t.Error("fresh A did not pulse")
	}
	if dir := kb.PressedDirection(); dir != DirLeft {
		t.Errorf("direction %v, want Left", dir)
	}
}

func TestKeyboardSameFramePriority(t *testing.T) {
	tests := []struct {
		name string
		keys []LogicalKey
		want Direction
	}{
		{"w beats arrow left", []LogicalKey{KeyW, KeyArrowLeft}, DirUp},
		{"a beats arrow right", []LogicalKey{KeyArrowRight, KeyA}, DirLeft},
		{"s beats arrow up", []LogicalKey{KeyArrowUp, KeyS}, DirDown},
		{"arrows alone decode", []LogicalKey{KeyArrowRight}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kb Keyboard
			for _, key := range tt.keys {
				kb.KeyDown(key)
			}
			kb.Step()

			if dir := kb.PressedDirection(); dir != tt.want {
				t.Errorf("direction %v, want %v", dir, tt.want)
			}
		})
	}
}
