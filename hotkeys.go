package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1
	DumpColorTableKey   eb.Key = eb.KeyF10

	InstantSolveKey = eb.KeyF8

	NewRoundKey    eb.Key = eb.KeyR
	ReplayRoundKey eb.Key = eb.KeyT
	CopySeedKey    eb.Key = eb.KeyC
	PasteSeedKey   eb.Key = eb.KeyV
	ToggleMuteKey  eb.Key = eb.KeyM

	ScreenshotKey eb.Key = eb.KeyP
)
