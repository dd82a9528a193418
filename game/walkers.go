package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

const WalkerCount = 3

// Walkers places WalkerCount walkers on a board that may contain negative
// cells. Walkers move greedily on their own; the only decision is where they
// start, which makes it a problem for local search.
type Walkers struct {
	initial Board // read-only, shared between clones
	board   Board
	starts  [WalkerCount]Point
	walkers [WalkerCount]Point
	turn    int
	endTurn int
	score   int
}

// NewWalkers generates a Height x Width board with cells in (-MaxPoint, MaxPoint)
// and random start positions from seed.
func NewWalkers(seed uint64) *Walkers {
	rng := rand.New(rand.NewSource(seed))
	board := RandomBoard(rng, Height, Width, 1-MaxPoint, MaxPoint)
	w := &Walkers{initial: board, endTurn: EndTurn}
	for i := range w.starts {
		w.starts[i] = board.randomPoint(rng)
	}
	w.reset()
	return w
}

func BuildWalkers(board Board, walkers [WalkerCount]Point, endTurn int) (*Walkers, error) {
	for _, p := range walkers {
		if !board.Contains(p) {
			return nil, fmt.Errorf("%w: walker %v outside %dx%d board", ErrInvalidBoard, p, board.height, board.width)
		}
	}
	if endTurn < 0 {
		return nil, fmt.Errorf("%w: negative end turn %d", ErrInvalidBoard, endTurn)
	}
	w := &Walkers{initial: board.Clone(), starts: walkers, endTurn: endTurn}
	w.reset()
	return w, nil
}

// reset restores the committed board, puts the walkers back on their start
// cells and zeroes those cells.
func (w *Walkers) reset() {
	w.board = w.initial.Clone()
	w.walkers = w.starts
	w.turn = 0
	w.score = 0
	for _, p := range w.walkers {
		w.board.set(p, 0)
	}
}

func (w *Walkers) Init(rng *rand.Rand) {
	for i := range w.starts {
		w.starts[i] = w.initial.randomPoint(rng)
	}
	w.reset()
}

func (w *Walkers) Transition(rng *rand.Rand) {
	i := rng.Intn(WalkerCount)
	w.starts[i] = w.initial.randomPoint(rng)
	w.reset()
}

func (w *Walkers) IsDone() bool {
	return w.turn == w.endTurn
}

// Step moves every walker to its best adjacent cell, the first in Actions
// order on ties, then collects the cells in walker order.
func (w *Walkers) Step() {
	if w.IsDone() {
		panic(fmt.Sprintf("step after the last turn %d", w.endTurn))
	}
	for i, p := range w.walkers {
		best, bestPoint := p, math.MinInt
		for _, a := range Actions {
			next := a.apply(p)
			if w.board.Contains(next) && w.board.At(next) > bestPoint {
				best, bestPoint = next, w.board.At(next)
			}
		}
		w.walkers[i] = best
	}
	for _, p := range w.walkers {
		w.score += w.board.collect(p)
	}
	w.turn++
}

func (w *Walkers) Score() int {
	return w.score
}

func (w *Walkers) Positions() [WalkerCount]Point {
	return w.walkers
}

// Starts is the solution being searched: where each walker begins.
func (w *Walkers) Starts() [WalkerCount]Point {
	return w.starts
}

func (w *Walkers) Clone() *Walkers {
	c := *w
	c.board = w.board.Clone()
	return &c
}
