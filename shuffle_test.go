package main

import "testing"

func TestShuffleScriptsAreLegalFromSolved(t *testing.T) {
	for i, script := range shuffleScripts {
		g := NewGrid()

		for j, dir := range script {
			if moved := g.TryMove(dir); moved == 0 {
				t.Fatalf("script %d move %d (%v) rejected", i, j, dir)
			}
		}

		if g.IsSolved() {
			t.Errorf("script %d returned the grid to solved", i)
		}
		if g.emptyIndex() == 0 {
			t.Errorf("script %d left the empty slot in the top left corner", i)
		}
	}
}

func TestShuffleScriptsCoverAllDirections(t *testing.T) {
	for i, script := range shuffleScripts {
		var seen [DirectionCount]bool
		for _, dir := range script {
			seen[dir] = true
		}

		for dir := DirUp; dir <= DirRight; dir++ {
			if !seen[dir] {
				t.Errorf("script %d never pushes %v", i, dir)
			}
		}
		if len(script) != 150 {
			t.Errorf("script %d has %d moves, want 150", i, len(script))
		}
	}
}

func TestShuffleIsDeterministic(t *testing.T) {
	seeds := []uint64{1, 42, 0xFEEDFACE}

	for _, seed := range seeds {
		a, b := NewGrid(), NewGrid()

		rngA := NewRandGen(seed)
		Shuffle(&a, &rngA)
		rngB := NewRandGen(seed)
		Shuffle(&b, &rngB)

		if a != b {
			t.Errorf("seed %d: %v vs %v", seed, a.String(), b.String())
		}
	}
}

// A grid is reachable from solved iff the permutation parity of its cells
// matches the parity of the empty slot's taxicab distance from the top
// left corner. Every legal move flips both at once.
func TestShuffleKeepsGridSolvable(t *testing.T) {
	seeds := []uint64{3, 1234, 0xABCDEF, 99999999}

	for _, seed := range seeds {
		g := NewGrid()
		rng := NewRandGen(seed)
		Shuffle(&g, &rng)

		var seen [9]bool
		for _, v := range g {
			if v > 8 || seen[v] {
				t.Fatalf("seed %d: bad multiset %v", seed, g.String())
			}
			seen[v] = true
		}

		inversions := 0
		for i := 0; i < 9; i++ {
			for j := i + 1; j < 9; j++ {
				if g[i] > g[j] {
					inversions++
				}
			}
		}

		empty := g.emptyIndex()
		distance := empty/3 + empty%3

		if inversions%2 != distance%2 {
			t.Errorf("seed %d: unsolvable grid %v", seed, g.String())
		}
	}
}
