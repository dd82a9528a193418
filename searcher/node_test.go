package searcher

import (
	"fmt"
	"testing"

	"gameai/game"

	"github.com/stretchr/testify/require"
)

// script is a hand-built search tree. Action i moves to children[i].
type script struct {
	score    int
	done     bool
	children []*script
}

func branch(score int, children ...*script) *script {
	return &script{score: score, children: children}
}

func leaf(score int) *script {
	return &script{score: score, done: true}
}

type mockState struct {
	at *script
}

func (m *mockState) IsDone() bool { return m.at.done }

func (m *mockState) LegalActions() []int {
	actions := make([]int, len(m.at.children))
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (m *mockState) Advance(action int) {
	if action < 0 || action >= len(m.at.children) {
		panic(fmt.Sprintf("illegal action %d", action))
	}
	m.at = m.at.children[action]
}

func (m *mockState) Evaluate() int { return m.at.score }

func (m *mockState) Clone() *mockState {
	c := *m
	return &c
}

func newGrid(t *testing.T, rows [][]int, start game.Point, endTurn int) *game.Grid {
	board, err := game.NewBoard(rows)
	require.NoError(t, err)
	g, err := game.BuildGrid(board, start, endTurn)
	require.NoError(t, err)
	return g
}

// squareGrid is the 2x2 board {(0,0):3, (0,1):1, (1,0):0, (1,1):5} with a
// two move horizon.
func squareGrid(t *testing.T) *game.Grid {
	return newGrid(t, [][]int{{3, 1}, {0, 5}}, game.Point{Row: 0, Col: 0}, 2)
}

func TestFrontier(t *testing.T) {
	t.Run("pops by descending score", func(t *testing.T) {
		f := frontier[int, *mockState]{}
		for i, score := range []int{3, 9, -1, 5} {
			f.push(node[int, *mockState]{score: score, first: i, hasFirst: true})
		}
		require.Equal(t, 9, f.best().score)

		got := []int{}
		for f.Len() > 0 {
			got = append(got, f.pop().score)
		}
		require.Equal(t, []int{9, 5, 3, -1}, got)
	})

	t.Run("expand records the root action only once", func(t *testing.T) {
		root := rootNode[int](&mockState{at: branch(0, branch(1, leaf(4)), leaf(2))})
		level1 := frontier[int, *mockState]{}
		expand(root, &level1)
		require.Equal(t, 2, level1.Len())

		first := level1.pop()
		require.Equal(t, 2, first.score)
		require.Equal(t, 1, first.first)
		second := level1.pop()
		require.Equal(t, 0, second.first)

		level2 := frontier[int, *mockState]{}
		expand(second, &level2)
		require.Equal(t, 4, level2.best().score)
		require.Equal(t, 0, level2.best().first, "Grandchildren inherit the root action")
	})

	t.Run("root node is a clone", func(t *testing.T) {
		state := &mockState{at: branch(0, leaf(1))}
		root := rootNode[int](state)
		root.state.Advance(0)
		require.Equal(t, 0, state.Evaluate(), "Advancing the root node must not touch the caller's state")
	})
}
