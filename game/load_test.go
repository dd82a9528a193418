package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGrid(t *testing.T) {
	t.Run("parses a full instance", func(t *testing.T) {
		g, err := LoadGrid([]byte(`{"points": [[3, 1], [0, 5]], "start": [0, 0], "end_turn": 2}`))
		require.NoError(t, err)
		require.Equal(t, smallGrid(t), g)
	})

	t.Run("defaults the end turn", func(t *testing.T) {
		g, err := LoadGrid([]byte(`{"points": [[3, 1]], "start": [0, 1]}`))
		require.NoError(t, err)
		require.Equal(t, EndTurn, g.endTurn)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		inputs := map[string]string{
			"malformed":     `{"points": [[1, 2]`,
			"no points":     `{"start": [0, 0]}`,
			"ragged":        `{"points": [[1, 2], [3]], "start": [0, 0]}`,
			"off board":     `{"points": [[1, 2]], "start": [4, 0]}`,
			"bad start":     `{"points": [[1, 2]], "start": [0]}`,
			"negative turn": `{"points": [[1, 2]], "start": [0, 0], "end_turn": -1}`,
			"text cell":     `{"points": [["x", 1], [0, 5]], "start": [0, 0]}`,
			"fractional":    `{"points": [[3.9, 1], [0, 5]], "start": [0, 0]}`,
			"text start":    `{"points": [[3, 1], [0, 5]], "start": ["a", 0]}`,
			"flat points":   `{"points": [1, 2, 3], "start": [0, 0]}`,
			"text end turn": `{"points": [[1, 2]], "start": [0, 0], "end_turn": "ten"}`,
			"object start":  `{"points": [[1, 2]], "start": {"row": 0, "col": 0}}`,
		}
		for name, input := range inputs {
			_, err := LoadGrid([]byte(input))
			require.ErrorIs(t, err, ErrInvalidBoard, name)
		}
	})
}

func TestLoadWalkers(t *testing.T) {
	w, err := LoadWalkers([]byte(`{
		"points": [[9, 1, 0], [2, 0, 6], [0, 8, 5]],
		"walkers": [[0, 0], [2, 2], [1, 1]],
		"end_turn": 1
	}`))
	require.NoError(t, err)
	require.Equal(t, smallWalkers(t, 1), w)

	_, err = LoadWalkers([]byte(`{"points": [[1]], "walkers": [[0, 0]]}`))
	require.ErrorIs(t, err, ErrInvalidBoard, "Walker count is fixed")

	_, err = LoadWalkers([]byte(`{"points": [[1]], "walkers": "all"}`))
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = LoadWalkers([]byte(`{"points": [[1, 2]], "walkers": [[0, 0], [0, 1], [0, true]]}`))
	require.ErrorIs(t, err, ErrInvalidBoard)

	g, err := LoadGrid([]byte(`{"points": [[-2, 1.0]], "start": [0, 1], "end_turn": 1}`))
	require.NoError(t, err, "Negative and integral float cells are numbers")
	require.Equal(t, -2, g.Board().At(Point{0, 0}))
}
