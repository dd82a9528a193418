package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	Height  = 30
	Width   = 40
	EndTurn = 10
	// Cells are generated in [0, MaxPoint).
	MaxPoint = 10
)

var ErrInvalidBoard = errors.New("invalid board")

type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type Action uint8

const (
	Down Action = iota
	Up
	Right
	Left
)

// Actions lists every move in the order they are tried.
var Actions = [...]Action{Down, Up, Right, Left}

func (a Action) String() string {
	switch a {
	case Down:
		return "D"
	case Up:
		return "U"
	case Right:
		return "R"
	case Left:
		return "L"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

func (a Action) apply(p Point) Point {
	switch a {
	case Down:
		return Point{p.Row + 1, p.Col}
	case Up:
		return Point{p.Row - 1, p.Col}
	case Right:
		return Point{p.Row, p.Col + 1}
	case Left:
		return Point{p.Row, p.Col - 1}
	}
	panic(fmt.Sprintf("unknown action %d", uint8(a)))
}

// Board is a rectangular grid of point values stored row-major.
type Board struct {
	height int
	width  int
	points []int
}

// NewBoard copies rows into a Board. Rows must be non-empty and of equal length.
func NewBoard(rows [][]int) (Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Board{}, fmt.Errorf("%w: no cells", ErrInvalidBoard)
	}
	width := len(rows[0])
	points := make([]int, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(row), width)
		}
		points = append(points, row...)
	}
	return Board{height: len(rows), width: width, points: points}, nil
}

// RandomBoard fills a height x width board with values from [low, high).
func RandomBoard(rng *rand.Rand, height, width, low, high int) Board {
	points := make([]int, height*width)
	for i := range points {
		points[i] = low + rng.Intn(high-low)
	}
	return Board{height: height, width: width, points: points}
}

func (b Board) Height() int { return b.height }
func (b Board) Width() int  { return b.width }

func (b Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

func (b Board) At(p Point) int {
	return b.points[p.Row*b.width+p.Col]
}

func (b Board) set(p Point, value int) {
	b.points[p.Row*b.width+p.Col] = value
}

// collect returns the value at p and zeroes the cell.
func (b Board) collect(p Point) int {
	i := p.Row*b.width + p.Col
	v := b.points[i]
	b.points[i] = 0
	return v
}

func (b Board) Clone() Board {
	points := make([]int, len(b.points))
	copy(points, b.points)
	return Board{height: b.height, width: b.width, points: points}
}

func (b Board) randomPoint(rng *rand.Rand) Point {
	return Point{Row: rng.Intn(b.height), Col: rng.Intn(b.width)}
}
