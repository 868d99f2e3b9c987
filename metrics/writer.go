// Package metrics writes self-play run traces to CSV: one file per record
// kind, one row per record, written once at the end of a batch.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StepRecord is one decision within a run: the room/enemy context, the
// action taken, and the search cost of producing it.
type StepRecord struct {
	Run            int
	Step           int
	CurrentRoom    int
	TotalRooms     int
	LootPhase      bool
	ActionKind     string
	Value          float64
	SearchDuration time.Duration
	NodesExpanded  int64
	CacheHits      int64
	LethalOverride int64
}

// RunRecord summarizes one complete self-play run.
type RunRecord struct {
	ID        int
	Horizon   int
	Survived  bool
	Steps     int
	StartTime time.Time
	EndTime   time.Time
}

// Writer persists run and step records under a timestamped subdirectory,
// one directory per experiment invocation.
type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<timestamp>/ and returns a Writer rooted
// there.
func NewWriter(baseDir, name string, stamp time.Time) (*Writer, error) {
	dir := filepath.Join(baseDir, name, stamp.UTC().Format(time.RFC3339))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("metrics: create output dir: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

// WriteRunRecords writes one row per completed self-play run.
func (w *Writer) WriteRunRecords(records []RunRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "runs.csv"))
	if err != nil {
		return fmt.Errorf("metrics: create runs.csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{"id", "horizon", "survived", "steps", "start_time", "end_time", "duration"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("metrics: write runs header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Horizon),
			strconv.FormatBool(r.Survived),
			strconv.Itoa(r.Steps),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.EndTime.Sub(r.StartTime).String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("metrics: write run row: %w", err)
		}
	}
	return nil
}

// WriteStepRecords writes one row per decision across all runs.
func (w *Writer) WriteStepRecords(records []StepRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "steps.csv"))
	if err != nil {
		return fmt.Errorf("metrics: create steps.csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	header := []string{
		"run", "step", "current_room", "total_rooms", "loot_phase", "action_kind",
		"value", "search_duration", "nodes_expanded", "cache_hits", "lethal_override",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("metrics: write steps header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Run),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.CurrentRoom),
			strconv.Itoa(r.TotalRooms),
			strconv.FormatBool(r.LootPhase),
			r.ActionKind,
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			r.SearchDuration.String(),
			strconv.FormatInt(r.NodesExpanded, 10),
			strconv.FormatInt(r.CacheHits, 10),
			strconv.FormatInt(r.LethalOverride, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("metrics: write step row: %w", err)
		}
	}
	return nil
}
