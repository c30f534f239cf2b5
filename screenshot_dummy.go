//go:build !screenshot

package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

func RequestScreenshot() {
}

func TakeScreenshot(img *eb.Image) {
}
