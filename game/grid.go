package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Grid is a single walker collecting points on a board. Each move collects
// the destination cell and zeroes it. The game ends after endTurn moves.
type Grid struct {
	board   Board
	pos     Point
	turn    int
	endTurn int
	score   int
}

// NewGrid generates a Height x Width board and a start cell from seed. The
// start cell is zeroed.
func NewGrid(seed uint64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	board := RandomBoard(rand.New(rand.NewSource(rng.Uint64())), Height, Width, 0, MaxPoint)
	start := board.randomPoint(rand.New(rand.NewSource(rng.Uint64())))
	board.set(start, 0)
	return &Grid{board: board, pos: start, endTurn: EndTurn}
}

// BuildGrid uses the board as given, including the start cell's value.
func BuildGrid(board Board, start Point, endTurn int) (*Grid, error) {
	if !board.Contains(start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d board", ErrInvalidBoard, start, board.height, board.width)
	}
	if endTurn < 0 {
		return nil, fmt.Errorf("%w: negative end turn %d", ErrInvalidBoard, endTurn)
	}
	return &Grid{board: board.Clone(), pos: start, endTurn: endTurn}, nil
}

func (g *Grid) IsDone() bool {
	return g.turn == g.endTurn
}

func (g *Grid) LegalActions() []Action {
	if g.IsDone() {
		return nil
	}
	actions := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		if g.board.Contains(a.apply(g.pos)) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (g *Grid) Advance(action Action) {
	if g.IsDone() {
		panic(fmt.Sprintf("advance %s after the last turn %d", action, g.endTurn))
	}
	next := action.apply(g.pos)
	if !g.board.Contains(next) {
		panic(fmt.Sprintf("move %s from %v leaves the board", action, g.pos))
	}
	g.pos = next
	g.score += g.board.collect(next)
	g.turn++
}

// Evaluate is the accumulated score.
func (g *Grid) Evaluate() int {
	return g.score
}

func (g *Grid) Score() int {
	return g.score
}

func (g *Grid) Turn() int       { return g.turn }
func (g *Grid) Position() Point { return g.pos }
func (g *Grid) Board() Board    { return g.board }

func (g *Grid) Clone() *Grid {
	c := *g
	c.board = g.board.Clone()
	return &c
}
