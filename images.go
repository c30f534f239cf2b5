package main

import (
	"image"
	"image/color"
	"math"
	"strconv"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TheTileSprite holds the 3x3 picture atlas. Cell n carries the patch
// of the picture tile n shows, cell 0 being the piece the empty slot
// hides until the win reveal.
var TheTileSprite Sprite

// TheQuoteImage is the card cross faded in over the board after a win.
var TheQuoteImage *eb.Image

var TheWindowIcon image.Image

const (
	AtlasCell = TileWidth
	AtlasSpan = AtlasCell * 3
)

func InitImages() {
	timer := NewProfTimer("InitImages")
	defer timer.Report()

	picture := renderPicture()

	TheTileSprite = Sprite{
		Image:  eb.NewImageFromImage(picture),
		Width:  AtlasCell,
		Height: AtlasCell,
		Count:  9,
	}
	stampTileDigits()

	TheQuoteImage = renderQuoteCard()

	TheWindowIcon = picture.SubImage(image.Rect(
		AtlasCell, AtlasCell, AtlasCell*2, AtlasCell*2,
	))
}

// renderPicture paints the puzzle picture: a diagonal sweep of hue with
// a few rings so neighboring tiles visibly continue each other.
func renderPicture() *image.NRGBA {
	img := image.NewNRGBA(RectWH(AtlasSpan, AtlasSpan))

	center := f64(AtlasSpan) * 0.5
	maxDist := math.Hypot(center, center)

	ringClrs := [2]color.NRGBA{
		ColorToNRGBA(ColorTable[ColorTileFill1]),
		ColorToNRGBA(ColorTable[ColorTileFill2]),
	}
	ringRadii := []float64{52, 96, 140}

	for y := 0; y < AtlasSpan; y++ {
		for x := 0; x < AtlasSpan; x++ {
			sweep := (f64(x) + f64(y)*0.5) / (AtlasSpan * 1.5)
			hue := math.Pi*1.15 + sweep*math.Pi*0.85

			dist := math.Hypot(f64(x)-center, f64(y)-center)
			norm := dist / maxDist

			clr := ColorFromHSV(
				hue,
				0.42+0.22*norm,
				0.92-0.38*norm*norm,
			)

			for ri, radius := range ringRadii {
				if d := math.Abs(dist - radius); d < 7 {
					clr = LerpColorRGB(clr, ringClrs[ri%2], 0.55*(1-d/7))
				}
			}

			img.SetNRGBA(x, y, clr)
		}
	}

	return img
}

// stampTileDigits puts the tile number on every cell of the atlas. The
// cell of the missing piece stays unmarked.
func stampTileDigits() {
	digitFace := &ebt.GoTextFace{
		Source: DecoFace.Source,
		Size:   30,
	}

	for v := 1; v < TheTileSprite.Count; v++ {
		cell := SpriteBounds(TheTileSprite, v)
		dst := SpriteSubImage(TheTileSprite, v)

		label := strconv.Itoa(v)

		// sub images keep the parent's coordinate space
		x := f64(cell.Min.X) + 9
		y := f64(cell.Min.Y) + 4

		shadowOp := &DrawTextOptions{}
		shadowOp.GeoM.Translate(x+2, y+2)
		shadowOp.ColorScale.ScaleWithColor(color.NRGBA{0, 0, 0, 140})
		DrawText(dst, label, digitFace, shadowOp)

		op := &DrawTextOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(ColorTable[ColorDigit])
		DrawText(dst, label, digitFace, op)
	}
}

func renderQuoteCard() *eb.Image {
	const cardW, cardH = 480, 360

	img := eb.NewImage(cardW, cardH)
	img.Fill(ColorTable[ColorQuoteBg])

	StrokeRect(img, FRectWH(cardW, cardH).Inset(10), 3, ColorTable[ColorQuoteText])

	headingFace := &ebt.GoTextFace{Source: DecoFace.Source, Size: 52}
	quoteFace := &ebt.GoTextFace{Source: DecoFace.Source, Size: 26}
	hintFace := &ebt.GoTextFace{Source: ClearFace.Source, Size: 19}

	hintClr := LerpColorRGB(
		ColorTable[ColorQuoteText],
		ColorTable[ColorQuoteBg],
		0.35,
	)

	drawCentered := func(text string, face *ebt.GoTextFace, centerY float64, clr color.Color) {
		lineSpacing := FontLineSpacing(face)
		w, h := ebt.Measure(text, face, lineSpacing)

		op := &DrawTextOptions{}
		op.GeoM.Translate(cardW*0.5-w*0.5, centerY-h*0.5)
		op.ColorScale.ScaleWithColor(clr)
		op.LayoutOptions.LineSpacing = lineSpacing

		DrawText(img, text, face, op)
	}

	drawCentered("SOLVED", headingFace, 84, ColorTable[ColorQuoteText])
	drawCentered(
		"Every picture is a puzzle,\nevery puzzle a picture.",
		quoteFace, 185, ColorTable[ColorQuoteText],
	)
	drawCentered("press R for a new round", hintFace, 305, hintClr)

	return img
}
