package main

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DecoFace draws the tile digits and the quote card.
// ClearFace draws the debug console.
var (
	DecoFace  *ebt.GoTextFace
	ClearFace *ebt.GoTextFace
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			ErrorLogger.Fatalf("failed to load font : %v", err)
		}

		DecoFace = &ebt.GoTextFace{
			Source: faceSource,
			Size:   64,
		}
	}
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
		if err != nil {
			ErrorLogger.Fatalf("failed to load font : %v", err)
		}

		ClearFace = &ebt.GoTextFace{
			Source: faceSource,
			Size:   64,
		}
	}
}

func FontSize(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent
}

func FontLineSpacing(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
