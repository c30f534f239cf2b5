package main

import (
	"image/color"
	"math"
	"time"
)

// Particle is one piece of win confetti, a falling flat colored square.
type Particle struct {
	Pos  FPoint
	Vel  FPoint
	Size float64
	Clr  color.NRGBA

	Life Timer
}

const (
	confettiCount   = 60
	particleGravity = 640 // px per second per second
)

// spawnConfetti bursts confetti from the board center. Draws come from
// the effects rng, the round rng stays reserved for shuffling.
func (g *Game) spawnConfetti() {
	palette := [4]color.NRGBA{
		ColorTable[ColorConfetti1],
		ColorTable[ColorConfetti2],
		ColorTable[ColorConfetti3],
		ColorTable[ColorConfetti4],
	}

	center := FRectangleCenter(boardRect())

	for i := 0; i < confettiCount; i++ {
		angle := f64(g.fxRng.NextByte()) / 255 * math.Pi * 2
		speed := 140 + f64(g.fxRng.NextByte())/255*260

		p := Particle{
			Pos: center,
			Vel: FPoint{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle)*speed - 220, // launch upward
			},
			Size: 5 + f64(g.fxRng.NextByteBelow(6)),
			Clr:  palette[g.fxRng.NextByteBelow(4)],
			Life: Timer{
				Duration: time.Millisecond * time.Duration(900+4*int(g.fxRng.NextByte())),
			},
		}

		g.particles = append(g.particles, p)
	}
}

func (g *Game) stepParticles(dt time.Duration) {
	if len(g.particles) == 0 {
		return
	}

	dtSec := dt.Seconds()

	alive := g.particles[:0]
	for i := range g.particles {
		p := g.particles[i]

		p.Life.Current += dt
		if p.Life.Current >= p.Life.Duration {
			continue
		}

		p.Vel.Y += particleGravity * dtSec
		p.Pos = p.Pos.Add(FPt(p.Vel.X*dtSec, p.Vel.Y*dtSec))

		alive = append(alive, p)
	}
	g.particles = alive
}

// AppendConfettiGeometry rebuilds the confetti batch. The quads are
// flat colored and flushed additively, so a piece fading to black
// fades out of the scene.
func (g *Game) AppendConfettiGeometry(vb *VertexBuffer) {
	vb.Reset()

	for i := range g.particles {
		p := &g.particles[i]

		clr := LerpColorRGB(p.Clr, color.NRGBA{0, 0, 0, 255}, p.Life.Normalize())
		rect := CenterFRectangle(FRectWH(p.Size, p.Size), p.Pos.X, p.Pos.Y)

		vb.AppendFlatRect(rect, clr)
	}
}
