package main

import (
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// The tile geometry samples the atlas through normalized uv rects while
// digit stamping works in sprite cells. Both must agree on where each
// tile's patch of the picture lives.
func TestSpriteBoundsMatchesTileUV(t *testing.T) {
	sprite := Sprite{
		Image:  eb.NewImage(AtlasSpan, AtlasSpan),
		Width:  AtlasCell,
		Height: AtlasCell,
		Count:  9,
	}

	for v := uint8(0); v < 9; v++ {
		bounds := SpriteBounds(sprite, int(v))
		uv := tileUV(v)

		if got, want := f64(bounds.Min.X), uv.Min.X*AtlasSpan; got != want {
			t.Errorf("tile %d: bounds min x = %v, uv rect starts at %v", v, got, want)
		}
		if got, want := f64(bounds.Min.Y), uv.Min.Y*AtlasSpan; got != want {
			t.Errorf("tile %d: bounds min y = %v, uv rect starts at %v", v, got, want)
		}
		if got, want := f64(bounds.Max.X), uv.Max.X*AtlasSpan; got != want {
			t.Errorf("tile %d: bounds max x = %v, uv rect ends at %v", v, got, want)
		}
		if got, want := f64(bounds.Max.Y), uv.Max.Y*AtlasSpan; got != want {
			t.Errorf("tile %d: bounds max y = %v, uv rect ends at %v", v, got, want)
		}
	}
}

func TestSpriteBoundsRowMajor(t *testing.T) {
	sprite := Sprite{
		Image:  eb.NewImage(AtlasSpan, AtlasSpan),
		Width:  AtlasCell,
		Height: AtlasCell,
		Count:  9,
	}

	// cell 5 sits at row 1, col 2
	bounds := SpriteBounds(sprite, 5)

	if bounds.Min.X != 2*AtlasCell || bounds.Min.Y != 1*AtlasCell {
		t.Errorf("cell 5 at %v, want min (%d, %d)", bounds, 2*AtlasCell, AtlasCell)
	}
}

func TestSpriteBoundsOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SpriteBounds(9) on a 9 cell sprite did not panic")
		}
	}()

	sprite := Sprite{Count: 9}
	SpriteBounds(sprite, 9)
}

func TestRenderPictureCoversAtlas(t *testing.T) {
	picture := renderPicture()

	bounds := picture.Bounds()
	if bounds.Dx() != AtlasSpan || bounds.Dy() != AtlasSpan {
		t.Fatalf("picture is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), AtlasSpan, AtlasSpan)
	}

	// every pixel is painted, nothing is left transparent
	for _, pt := range []struct{ x, y int }{
		{0, 0},
		{AtlasSpan - 1, 0},
		{0, AtlasSpan - 1},
		{AtlasSpan - 1, AtlasSpan - 1},
		{AtlasSpan / 2, AtlasSpan / 2},
	} {
		_, _, _, a := picture.At(pt.x, pt.y).RGBA()
		if a != 0xffff {
			t.Errorf("pixel (%d, %d) is not opaque", pt.x, pt.y)
		}
	}
}
