package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// crossfadeShaderCode blends the flat vertex color with the sampled
// texture by the vertex alpha: 0 flat, 1 textured.
const crossfadeShaderCode = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	flat := vec4(color.rgb, 1)
	sampled := imageSrc0At(srcPos)
	return mix(flat, sampled, color.a)
}
`

var crossfadeShader *eb.Shader

var TheRenderer struct {
	boardBuf    *VertexBuffer
	confettiBuf *VertexBuffer
	quoteBuf    *VertexBuffer

	verts   []eb.Vertex
	indices []uint16
}

func init() {
	shader, err := eb.NewShader([]byte(crossfadeShaderCode))
	if err != nil {
		ErrorLogger.Fatalf("failed to load the shader %v", err)
	}
	crossfadeShader = shader

	TheRenderer.boardBuf = NewVertexBuffer(512)
	TheRenderer.confettiBuf = NewVertexBuffer(512)
	TheRenderer.quoteBuf = NewVertexBuffer(8)
}

// DrawGame renders the whole frame in three batches: everything
// sampling the tile atlas, confetti added on top over the white pixel,
// then the quote sheet.
func DrawGame(dst *eb.Image, game *Game) {
	rd := &TheRenderer

	game.AppendBoardGeometry(rd.boardBuf)
	flushVertices(dst, rd.boardBuf, TheTileSprite.Image)

	game.AppendConfettiGeometry(rd.confettiBuf)
	BeginBlend(eb.BlendLighter)
	flushVertices(dst, rd.confettiBuf, WhiteImage)
	EndBlend()

	game.AppendQuoteGeometry(rd.quoteBuf)
	flushVertices(dst, rd.quoteBuf, TheQuoteImage)
}

// flushVertices hands one batch to the gpu, converting normalized uv to
// the source image's pixel space. The batch is empty afterwards.
func flushVertices(dst *eb.Image, vb *VertexBuffer, src *eb.Image) {
	if len(vb.Vertices) == 0 {
		return
	}

	rd := &TheRenderer

	srcMin := src.Bounds().Min
	srcW, srcH := ImageSizeF(src)

	rd.verts = rd.verts[:0]
	for _, v := range vb.Vertices {
		rd.verts = append(rd.verts, eb.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   f32(srcMin.X) + v.SrcX*f32(srcW),
			SrcY:   f32(srcMin.Y) + v.SrcY*f32(srcH),
			ColorR: v.ColorR,
			ColorG: v.ColorG,
			ColorB: v.ColorB,
			ColorA: v.Lambda,
		})
	}

	for len(rd.indices) < len(rd.verts) {
		rd.indices = append(rd.indices, uint16(len(rd.indices)))
	}

	op := &DrawTrianglesShaderOptions{}
	op.Images[0] = src

	DrawTrianglesShader(dst, rd.verts, rd.indices[:len(rd.verts)], crossfadeShader, op)

	vb.Reset()
}
