package main

import (
	"image"
)

func RectWH(w, h int) image.Rectangle {
	return image.Rect(0, 0, w, h)
}

func RectToFRect(rect image.Rectangle) FRectangle {
	return FRect(
		f64(rect.Min.X), f64(rect.Min.Y),
		f64(rect.Max.X), f64(rect.Max.Y),
	)
}

func ImageSize(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func ImageSizeF(img image.Image) (float64, float64) {
	return f64(img.Bounds().Dx()), f64(img.Bounds().Dy())
}

func ImageSizeFPt(img image.Image) FPoint {
	bound := img.Bounds()
	return FPoint{f64(bound.Dx()), f64(bound.Dy())}
}
