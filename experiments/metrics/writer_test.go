package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "bench")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{
			{ID: 1, GameMetric: GameMetric{Seed: 42, Score: 17, Turns: 10, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second}},
			{ID: 2, GameMetric: GameMetric{Seed: 7, Score: -5, DeadEnd: true}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3, "Header plus one row per game")
		require.Equal(t, []string{"1", "42", "17", "false", "10", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
		require.Equal(t, "true", rows[2][3])
	})

	t.Run("move records", func(t *testing.T) {
		r := NewRecorder()
		r.Observe(SearchMetric{Algorithm: "beam", Width: 2, Depth: 5, Expansions: 9})
		r.Observe(SearchMetric{Algorithm: "beam", Width: 2, Depth: 5, Deadline: true})
		records := []MoveRecord{}
		for _, m := range r.Moves() {
			records = append(records, MoveRecord{Game: 3, MoveMetric: m})
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"3", "1", "beam", "2", "5", "0s", "9", "0", "0", "false"}, rows[1])
		require.Equal(t, "2", rows[2][1], "Turns count from one")
		require.Equal(t, "true", rows[2][9])
	})

	t.Run("config", func(t *testing.T) {
		require.NoError(t, w.WriteConfig(map[string]int{"games": 3}))
		data, err := os.ReadFile(filepath.Join(w.Dir(), "config.yaml"))
		require.NoError(t, err)
		require.Equal(t, "games: 3\n", string(data))
	})
}
