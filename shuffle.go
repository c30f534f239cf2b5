package main

import "fmt"

// Move scripts for shuffling, letters are tile push directions.
// Both scripts are legal move walks from the solved grid: they wander
// most of the board and end with the empty slot away from the top left
// corner. Legal moves only, so any replay leaves the grid solvable.
const shuffleScriptA = "" +
	"LLUURRDD" + "LLUURRDD" +
	"ULDR" + "ULDR" + "ULDR" +
	"LLURRULL" +
	"RDLU" + "RDLU" + "RDLU" +
	"RRDLLDRR" +
	"ULLDRR" + "ULLDRR" +
	"UULLDRRD" + "UULLDRRD" +
	"UULDDLUU" +
	"DDRRUULL" + "DDRRUULL" +
	"RDRD" +
	"LURD" + "LURD" + "LURD" +
	"ULDR" + "ULDR" +
	"LLUURDLDRRULURDDLU"

const shuffleScriptB = "" +
	"UULLDDRR" + "UULLDDRR" +
	"LURD" + "LURD" + "LURD" +
	"LLUURDDR" + "LLUURDDR" +
	"ULUL" +
	"DRURDLLU" + "DRURDLLU" +
	"RRDDLUUL" + "RRDDLUUL" +
	"DDRURD" +
	"ULLDRR" + "ULLDRR" +
	"UULLDRRD" + "UULLDRRD" +
	"ULDRLURD" + "ULDRLURD" + "ULDRLURD" +
	"LLUURRDLUDRU"

var shuffleScripts [2][]Direction

func init() {
	shuffleScripts[0] = parseMoveScript(shuffleScriptA)
	shuffleScripts[1] = parseMoveScript(shuffleScriptB)
}

func parseMoveScript(script string) []Direction {
	moves := make([]Direction, 0, len(script))
	for _, c := range script {
		switch c {
		case 'U':
			moves = append(moves, DirUp)
		case 'L':
			moves = append(moves, DirLeft)
		case 'D':
			moves = append(moves, DirDown)
		case 'R':
			moves = append(moves, DirRight)
		default:
			panic(fmt.Sprintf("bad letter %q in move script", c))
		}
	}
	return moves
}

// Shuffle scrambles the grid by replaying randomly picked move scripts
// ten times over. Ten coin flips between two whole scripts mix far better
// than ten random single moves would, and every step goes through TryMove,
// so a shuffled grid can always be played back to solved.
func Shuffle(g *Grid, rng *RandGen) {
	for i := 0; i < 10; i++ {
		script := shuffleScripts[rng.NextByteBelow(2)]
		for _, dir := range script {
			g.TryMove(dir)
		}
	}
}
