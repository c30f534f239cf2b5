package main

import "time"

const (
	SlideDuration     = time.Millisecond * 150
	WinFadeDuration   = time.Second * 3
	QuoteFadeDuration = time.Second * 3
)

type GamePhase uint8

const (
	PhaseIdle GamePhase = iota
	PhaseSliding
	PhaseFadingWin
	PhaseFadingQuote
	PhaseSettled
)

func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSliding:
		return "Sliding"
	case PhaseFadingWin:
		return "FadingWin"
	case PhaseFadingQuote:
		return "FadingQuote"
	case PhaseSettled:
		return "Settled"
	}
	panic("UNREACHABLE")
}

// Game is one round of the puzzle: the grid, the keyboard edges, the
// animation clocks and the win confetti. It owns no scheduling, whoever
// drives the loop calls Step once per frame with the current time and
// rebuilds geometry on draw.
type Game struct {
	Grid     Grid
	Keyboard Keyboard

	// QuoteSize is the pixel size of the quote picture shown after a
	// win. Only its aspect ratio matters.
	QuoteSize FPoint

	seed  uint64
	rng   RandGen
	fxRng RandGen

	animTile   uint8 // value of the tile mid slide, 0 when none
	animDir    Direction
	slideStart time.Duration
	slideEnded bool

	won   bool
	wonAt time.Duration

	now time.Duration

	particles []Particle

	OnRound  func()
	OnSlide  func()
	OnReject func()
	OnWin    func()
}

func NewGame(seed uint64) *Game {
	g := new(Game)
	g.QuoteSize = FPt(BoardSpan, BoardSpan)
	g.NewRound(seed)
	return g
}

// NewRound deals a fresh board. The same seed always deals the same
// board.
func (g *Game) NewRound(seed uint64) {
	g.seed = seed
	g.rng = NewRandGen(seed)
	g.fxRng = NewRandGen(seed ^ 0x9E3779B97F4A7C15)

	g.Grid = NewGrid()
	Shuffle(&g.Grid, &g.rng)
	if g.Grid.IsSolved() {
		// the scripts never return the empty slot to the top left
		// corner, so one replay guarantees a scrambled board
		for _, dir := range shuffleScripts[0] {
			g.Grid.TryMove(dir)
		}
	}

	g.animTile = 0
	g.animDir = DirNone
	g.slideStart = -Years150
	g.slideEnded = false
	g.won = false
	g.wonAt = 0
	g.particles = g.particles[:0]

	InfoLogger.Printf("new round, seed %s", SeedToString(seed))

	if g.OnRound != nil {
		g.OnRound()
	}
}

func (g *Game) Seed() uint64 {
	return g.seed
}

// Step runs one logical frame: roll the keyboard over, attempt a move,
// latch the win and advance the confetti.
func (g *Game) Step(now time.Duration) {
	dt := now - g.now
	if dt < 0 {
		dt = 0
	}
	g.now = now

	g.Keyboard.Step()

	// the saturated slide still draws at its destination once, the
	// marker drops on the update after that
	if g.slideEnded {
		g.animTile = 0
		g.animDir = DirNone
		g.slideEnded = false
	}

	if !g.won {
		if dir := g.Keyboard.PressedDirection(); dir != DirNone {
			g.tryMove(dir)
		}

		if g.Grid.IsSolved() {
			g.won = true
			g.wonAt = now
			g.spawnConfetti()
			if g.OnWin != nil {
				g.OnWin()
			}
		}
	}

	g.slideEnded = g.animTile != 0 && g.TileFraction() >= 1

	g.stepParticles(dt)
}

func (g *Game) tryMove(dir Direction) {
	moved := g.Grid.TryMove(dir)

	if moved == 0 {
		// shoved into a wall: drop the slide marker, leave its clock
		g.animTile = 0
		g.animDir = DirNone
		if g.OnReject != nil {
			g.OnReject()
		}
		return
	}

	g.animTile = moved
	g.animDir = dir
	g.slideStart = g.now
	g.slideEnded = false
	if g.OnSlide != nil {
		g.OnSlide()
	}
}

// SolveNow is a dev helper that hands the round over, the win latches
// on the next Step.
func (g *Game) SolveNow() {
	if g.won {
		return
	}
	g.Grid = NewGrid()
	g.animTile = 0
	g.animDir = DirNone
}

func (g *Game) Won() bool {
	return g.won
}

func (g *Game) Particles() []Particle {
	return g.particles
}

// TileFraction is the progress of the current slide, 0 right after a
// move and saturating at 1 after SlideDuration.
func (g *Game) TileFraction() float64 {
	return Clamp(f64(g.now-g.slideStart)/f64(SlideDuration), 0, 1)
}

// WonFraction is the progress of the win reveal, 0 until the round is
// won and saturating at 1 after WinFadeDuration.
func (g *Game) WonFraction() float64 {
	if !g.won {
		return 0
	}
	return Clamp(f64(g.now-g.wonAt)/f64(WinFadeDuration), 0, 1)
}

// QuoteFraction is the fade of the quote picture. It starts ticking
// only once the win reveal has saturated.
func (g *Game) QuoteFraction() float64 {
	if !g.won {
		return 0
	}
	return Clamp(f64(g.now-g.wonAt-WinFadeDuration)/f64(QuoteFadeDuration), 0, 1)
}

func (g *Game) Phase() GamePhase {
	if !g.won {
		if g.animTile != 0 && g.TileFraction() < 1 {
			return PhaseSliding
		}
		return PhaseIdle
	}
	if g.WonFraction() < 1 {
		return PhaseFadingWin
	}
	if g.QuoteFraction() < 1 {
		return PhaseFadingQuote
	}
	return PhaseSettled
}
