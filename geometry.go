package main

import (
	"image/color"
)

// Board measurements in pixels. A cell advances by CellPitch: the tile
// itself, one border, one gap.
const (
	TileWidth   = 100
	TileBorder  = 8
	TileSpacing = 8

	CellPitch = TileWidth + TileBorder + TileSpacing

	BoardMargin = 30
	BoardSpan   = CellPitch*3 - TileSpacing

	ScreenWidth  = BoardSpan + BoardMargin*2
	ScreenHeight = BoardSpan + BoardMargin*2
)

// Vertex is one corner of a textured triangle. Lambda picks what the
// renderer shows: 0 the flat color, 1 the sampled texture, in between
// a mix of the two.
type Vertex struct {
	DstX, DstY             float32
	ColorR, ColorG, ColorB float32
	SrcX, SrcY             float32
	Lambda                 float32
}

// VertexBuffer accumulates the triangle list for one draw batch.
type VertexBuffer struct {
	Vertices []Vertex
}

func NewVertexBuffer(capacity int) *VertexBuffer {
	return &VertexBuffer{
		Vertices: make([]Vertex, 0, capacity),
	}
}

func (vb *VertexBuffer) Reset() {
	vb.Vertices = vb.Vertices[:0]
}

// AppendRect adds rect as two triangles sharing the main diagonal.
// uv is in normalized [0,1] image coordinates.
func (vb *VertexBuffer) AppendRect(rect FRectangle, clr color.Color, uv FRectangle, lambda float64) {
	r, g, b, _ := clr.RGBA()
	rf := f32(r) / 0xffff
	gf := f32(g) / 0xffff
	bf := f32(b) / 0xffff
	l := f32(lambda)

	v00 := Vertex{f32(rect.Min.X), f32(rect.Min.Y), rf, gf, bf, f32(uv.Min.X), f32(uv.Min.Y), l}
	v10 := Vertex{f32(rect.Max.X), f32(rect.Min.Y), rf, gf, bf, f32(uv.Max.X), f32(uv.Min.Y), l}
	v11 := Vertex{f32(rect.Max.X), f32(rect.Max.Y), rf, gf, bf, f32(uv.Max.X), f32(uv.Max.Y), l}
	v01 := Vertex{f32(rect.Min.X), f32(rect.Max.Y), rf, gf, bf, f32(uv.Min.X), f32(uv.Max.Y), l}

	vb.Vertices = append(vb.Vertices, v00, v10, v11, v00, v11, v01)
}

func (vb *VertexBuffer) AppendFlatRect(rect FRectangle, clr color.Color) {
	vb.AppendRect(rect, clr, FRectangle{}, 0)
}

func boardRect() FRectangle {
	return FRect(
		BoardMargin, BoardMargin,
		BoardMargin+BoardSpan, BoardMargin+BoardSpan,
	)
}

// tileBorderRect is the outer rect of the cell at row, col. The inner
// texture rect sits TileBorder/2 inside it.
func tileBorderRect(row, col int) FRectangle {
	x := f64(BoardMargin + col*CellPitch)
	y := f64(BoardMargin + row*CellPitch)

	return FRectWH(TileWidth+TileBorder, TileWidth+TileBorder).Add(FPt(x, y))
}

// tileUV picks the atlas sub rect by the tile's value, not by where the
// tile currently sits, so a tile carries its patch of the picture around.
func tileUV(value uint8) FRectangle {
	col := f64(value % 3)
	row := f64(value / 3)

	return FRect(col/3, row/3, (col+1)/3, (row+1)/3)
}

// travelDelta is the unit screen direction a pushed tile moves in.
var travelDelta = [DirectionCount]FPoint{
	DirNone:  {},
	DirUp:    {0, -1},
	DirLeft:  {-1, 0},
	DirDown:  {0, 1},
	DirRight: {1, 0},
}

// AppendBoardGeometry rebuilds the primary batch: board backing, every
// settled tile, the sliding tile at its interpolated position and the
// missing piece fading in once the puzzle is solved. Sampled against
// the tile atlas.
func (g *Game) AppendBoardGeometry(vb *VertexBuffer) {
	vb.Reset()

	vb.AppendFlatRect(boardRect().Inset(-TileSpacing), ColorTable[ColorBoardBg])

	// tile seams dissolve into the board as the win fade runs
	borderClr := LerpColorRGB(
		ColorTable[ColorTileBorder],
		ColorTable[ColorBoardBg],
		g.WonFraction(),
	)

	for i, v := range g.Grid {
		if v == 0 || v == g.animTile {
			continue
		}
		g.appendTile(vb, tileBorderRect(i/3, i%3), v, borderClr)
	}

	if g.animTile != 0 {
		i := g.Grid.indexOf(g.animTile)
		rect := tileBorderRect(i/3, i%3)

		back := (1 - g.TileFraction()) * CellPitch
		delta := travelDelta[g.animDir]
		rect = rect.Add(FPt(-delta.X*back, -delta.Y*back))

		g.appendTile(vb, rect, g.animTile, borderClr)
	}

	if g.won {
		i := g.Grid.emptyIndex()
		rect := tileBorderRect(i/3, i%3).Inset(TileBorder / 2)
		vb.AppendRect(rect, ColorTable[ColorBoardBg], tileUV(0), g.WonFraction())
	}
}

func (g *Game) appendTile(vb *VertexBuffer, borderRect FRectangle, value uint8, borderClr color.Color) {
	vb.AppendFlatRect(borderRect, borderClr)
	vb.AppendRect(
		borderRect.Inset(TileBorder/2),
		ColorTable[ColorBoardBg],
		tileUV(value),
		1,
	)
}

// AppendQuoteGeometry rebuilds the secondary batch: a single sheet over
// the board cross fading from the background into the quote image.
func (g *Game) AppendQuoteGeometry(vb *VertexBuffer) {
	vb.Reset()

	frac := g.QuoteFraction()
	if frac <= 0 {
		return
	}

	w := boardRect().Dx()
	h := w * g.QuoteSize.Y / g.QuoteSize.X
	center := FRectangleCenter(boardRect())
	rect := CenterFRectangle(FRectWH(w, h), center.X, center.Y)

	vb.AppendRect(rect, ColorTable[ColorQuoteBg], FRect(0, 0, 1, 1), frac)
}
