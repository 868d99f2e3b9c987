package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriterWritesRunAndStepFiles(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	w, err := NewWriter(dir, "smoke", stamp)
	require.NoError(t, err)

	err = w.WriteRunRecords([]RunRecord{
		{ID: 1, Horizon: 6, Survived: true, Steps: 12, StartTime: stamp, EndTime: stamp.Add(time.Second)},
	})
	require.NoError(t, err)

	err = w.WriteStepRecords([]StepRecord{
		{Run: 1, Step: 0, CurrentRoom: 0, TotalRooms: 5, ActionKind: "move", Value: 42.5, NodesExpanded: 10, CacheHits: 3},
	})
	require.NoError(t, err)

	outDir := filepath.Join(dir, "smoke", "2026-01-02T03:04:05Z")
	require.FileExists(t, filepath.Join(outDir, "runs.csv"))
	require.FileExists(t, filepath.Join(outDir, "steps.csv"))

	data, err := os.ReadFile(filepath.Join(outDir, "runs.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "true")
}
