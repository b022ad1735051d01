package metrics

import (
	"checkers/game"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "unit")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "unit"), filepath.Dir(w.Dir()))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: RandomKind, Goroutines: 1},
		{ID: 2, Kind: ComputerKind, Goroutines: 8},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Red: 1, Black: 2, Seed: 5,
		GameMetric: GameMetric{
			StartingPlayer: game.Red,
			Winner:         game.Black,
			Reason:         ReasonStalemate,
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     41,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:   2,
			Player: game.Black,
			SearchMetric: SearchMetric{
				Goroutines: 8, Duration: time.Millisecond,
				Pieces: 12, Sequences: 1, Candidates: 8, BestScore: 11,
			},
		},
	}}))

	require.Equal(t, [][]string{
		{"id", "kind", "goroutines"},
		{"1", "random", "1"},
		{"2", "computer", "8"},
	}, readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv")))

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1", "2", "5", "red", "black", "stalemate", "41",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, games[1])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "2", "black", "8", "1ms", "12", "1", "8", "11"}, moves[1])
}

func TestWriterEmptyRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "empty")
	require.NoError(t, err)
	require.NoError(t, w.WriteMoveRecords(nil))

	rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 1, "header only")
}
