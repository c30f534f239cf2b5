package main

import (
	"fmt"
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an image holding a grid of equally sized cells.
type Sprite struct {
	*eb.Image

	Width, Height int

	Margin int

	Count int
}

func SpriteBounds(sprite Sprite, spriteN int) image.Rectangle {
	if spriteN < 0 || spriteN >= sprite.Count {
		panicMsg := fmt.Sprintf("index out of range [%d] with length %d", spriteN, sprite.Count)
		panic(panicMsg)
	}

	w := sprite.Width + sprite.Margin
	h := sprite.Height + sprite.Margin

	spriteW, spriteH := ImageSize(sprite)

	colCount := spriteW / w
	rowCount := spriteH / h

	// it makes no sense for col and row count to be zero
	colCount = max(colCount, 1)
	rowCount = max(rowCount, 1)
	_ = rowCount

	col := spriteN % colCount
	row := spriteN / colCount

	imageMin := sprite.Bounds().Min

	return image.Rectangle{
		Min: image.Pt(col*w, row*h).Add(imageMin),
		Max: image.Pt(col*w+sprite.Width, row*h+sprite.Height).Add(imageMin),
	}
}

func SpriteSubImage(sprite Sprite, spriteN int) *eb.Image {
	return sprite.SubImage(SpriteBounds(sprite, spriteN)).(*eb.Image)
}
