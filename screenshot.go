//go:build screenshot

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func init() {
	ScreenshotEnabled = true

	DebugPutsPersist("screenshot", "true")
}

var screenshotPending bool

func RequestScreenshot() {
	screenshotPending = true
}

// TakeScreenshot saves the frame if a screenshot was requested.
// Call it at the end of Draw, after everything is rendered.
func TakeScreenshot(img *eb.Image) {
	if !screenshotPending {
		return
	}
	screenshotPending = false

	filename, err := saveScreenshot(img)
	if err != nil {
		ErrorLogger.Printf("failed to save screenshot: %v", err)
		return
	}

	InfoLogger.Printf("saved %s", filename)
}

func saveScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	entries, err := os.ReadDir(".")
	if err != nil {
		return "", err
	}

	var filename = fmt.Sprintf("pic-%s.png", timeStr)

	nameCounter := 1
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if entry.Name() == filename {
			nameCounter += 1
			filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
			// do it again!
			i = 0
		}
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, imageFromEbImage(img)); err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, buffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return filename, nil
}

// alpha is always opaque on screen frames so the premultiplied
// pixels can be copied straight over
func imageFromEbImage(img *eb.Image) *image.NRGBA {
	bounds := img.Bounds()

	pixels := make([]byte, 4*bounds.Dx()*bounds.Dy())
	img.ReadPixels(pixels)

	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	copy(out.Pix, pixels)

	return out
}
