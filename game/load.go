package game

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// LoadGrid parses a problem instance of the form
//
//	{"points": [[3, 1], [0, 5]], "start": [0, 0], "end_turn": 2}
//
// "end_turn" defaults to EndTurn.
func LoadGrid(data []byte) (*Grid, error) {
	root, board, err := parseBoard(data)
	if err != nil {
		return nil, err
	}
	start, err := parsePoint(root.Get("start"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse start: %w", err)
	}
	end, err := endTurn(root)
	if err != nil {
		return nil, err
	}
	return BuildGrid(board, start, end)
}

// LoadWalkers parses {"points": [...], "walkers": [[r, c], ...], "end_turn": n}.
func LoadWalkers(data []byte) (*Walkers, error) {
	root, board, err := parseBoard(data)
	if err != nil {
		return nil, err
	}
	walkersField := root.Get("walkers")
	if !walkersField.IsArray() {
		return nil, fmt.Errorf("%w: missing walkers", ErrInvalidBoard)
	}
	list := walkersField.Array()
	if len(list) != WalkerCount {
		return nil, fmt.Errorf("%w: got %d walkers, want %d", ErrInvalidBoard, len(list), WalkerCount)
	}
	var walkers [WalkerCount]Point
	for i, v := range list {
		if walkers[i], err = parsePoint(v); err != nil {
			return nil, fmt.Errorf("failed to parse walker %d: %w", i, err)
		}
	}
	end, err := endTurn(root)
	if err != nil {
		return nil, err
	}
	return BuildWalkers(board, walkers, end)
}

func parseBoard(data []byte) (gjson.Result, Board, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, Board{}, fmt.Errorf("%w: malformed json", ErrInvalidBoard)
	}
	root := gjson.ParseBytes(data)
	points := root.Get("points")
	if !points.IsArray() {
		return gjson.Result{}, Board{}, fmt.Errorf("%w: missing points", ErrInvalidBoard)
	}

	rows := [][]int{}
	for i, row := range points.Array() {
		if !row.IsArray() {
			return gjson.Result{}, Board{}, fmt.Errorf("%w: row %d is not an array", ErrInvalidBoard, i)
		}
		cells := []int{}
		for j, cell := range row.Array() {
			v, err := parseInt(cell)
			if err != nil {
				return gjson.Result{}, Board{}, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			cells = append(cells, v)
		}
		rows = append(rows, cells)
	}
	board, err := NewBoard(rows)
	if err != nil {
		return gjson.Result{}, Board{}, err
	}
	return root, board, nil
}

func parsePoint(v gjson.Result) (Point, error) {
	pair := v.Array()
	if !v.IsArray() || len(pair) != 2 {
		return Point{}, fmt.Errorf("%w: point %q is not a [row, col] pair", ErrInvalidBoard, v.Raw)
	}
	row, err := parseInt(pair[0])
	if err != nil {
		return Point{}, err
	}
	col, err := parseInt(pair[1])
	if err != nil {
		return Point{}, err
	}
	return Point{Row: row, Col: col}, nil
}

// parseInt accepts only JSON numbers without a fractional part.
func parseInt(v gjson.Result) (int, error) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidBoard, v.Raw)
	}
	return int(v.Int()), nil
}

func endTurn(root gjson.Result) (int, error) {
	v := root.Get("end_turn")
	if !v.Exists() {
		return EndTurn, nil
	}
	n, err := parseInt(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse end_turn: %w", err)
	}
	return n, nil
}
