package main

import (
	"fmt"
	"image/color"
	"math"

	css "github.com/mazznoer/csscolorparser"
)

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// ColorFromHSV converts hue (radians), saturation and value to a color.
func ColorFromHSV(hue, saturation, value float64) color.NRGBA {
	for hue < 0 {
		hue += math.Pi * 2
	}

	for hue > math.Pi*2 {
		hue -= math.Pi * 2
	}

	saturation = Clamp(saturation, 0, 1)
	value = Clamp(value, 0, 1)

	c := saturation * value
	h := hue / (60 * math.Pi / 180)
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))

	var r, g, b float64
	if h < 1 {
		r, g, b = c, x, 0
	} else if h < 2 {
		r, g, b = x, c, 0
	} else if h < 3 {
		r, g, b = 0, c, x
	} else if h < 4 {
		r, g, b = 0, x, c
	} else if h < 5 {
		r, g, b = x, 0, c
	} else {
		r, g, b = c, 0, x
	}

	m := value - c

	r, g, b = r+m, g+m, b+m

	r = Clamp(r, 0, 1)
	g = Clamp(g, 0, 1)
	b = Clamp(b, 0, 1)

	return color.NRGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func LerpColorRGB(c1, c2 color.Color, t float64) color.NRGBA {
	a := ColorToNRGBA(c1)
	b := ColorToNRGBA(c2)

	r := Lerp(f64(a.R), f64(b.R), t)
	g := Lerp(f64(a.G), f64(b.G), t)
	bl := Lerp(f64(a.B), f64(b.B), t)

	return color.NRGBA{uint8(r), uint8(g), uint8(bl), 255}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(math.Round(255 * c.R)),
		G: uint8(math.Round(255 * c.G)),
		B: uint8(math.Round(255 * c.B)),
		A: uint8(math.Round(255 * c.A)),
	}

	return nrgba, nil
}
