package main

import "fmt"

// Direction a tile gets pushed in. The empty slot travels the opposite way.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight

	DirectionCount
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	}
	panic("UNREACHABLE")
}

// moveDelta points at the cell that slides into the empty slot,
// relative to the empty slot. Pushing a tile up means the tile
// below the empty slot moves, and so on.
var moveDelta = [DirectionCount]struct{ row, col int }{
	DirNone:  {0, 0},
	DirUp:    {1, 0},
	DirLeft:  {0, 1},
	DirDown:  {-1, 0},
	DirRight: {0, -1},
}

// Grid is the 3x3 tile arrangement in row major order, top left origin.
// Value 0 is the empty slot. The multiset of values is always {0..8}.
type Grid [9]uint8

var solvedGrid = Grid{0, 1, 2, 3, 4, 5, 6, 7, 8}

func NewGrid() Grid {
	return solvedGrid
}

func (g *Grid) IsSolved() bool {
	return *g == solvedGrid
}

// TryMove pushes the tile adjacent to the empty slot in dir.
// Returns the value of the tile that moved, or 0 when the move
// was rejected because it would shove a tile through a wall.
func (g *Grid) TryMove(dir Direction) uint8 {
	if dir == DirNone {
		return 0
	}

	empty := g.emptyIndex()
	row := empty/3 + moveDelta[dir].row
	col := empty%3 + moveDelta[dir].col

	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0
	}

	target := row*3 + col
	g[empty], g[target] = g[target], g[empty]

	return g[empty]
}

func (g *Grid) emptyIndex() int {
	return g.indexOf(0)
}

func (g *Grid) indexOf(v uint8) int {
	for i, cell := range g {
		if cell == v {
			return i
		}
	}
	panic("value not on the grid")
}

func (g *Grid) String() string {
	return fmt.Sprintf("%v %v %v / %v %v %v / %v %v %v",
		g[0], g[1], g[2], g[3], g[4], g[5], g[6], g[7], g[8])
}
