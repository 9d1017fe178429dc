package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var manifestHeader = []string{
	"run_id", "source", "window", "window_start", "window_end",
	"collected", "matched", "errors",
}

// ManifestRow is one source and window combination's outcome.
type ManifestRow struct {
	Source    string
	Window    string
	Start     time.Time
	End       time.Time
	Collected int
	Matched   int
	Errors    int
}

// Manifest records what one run collected, one row per source and window.
type Manifest struct {
	runID   uuid.UUID
	started time.Time
	rows    []ManifestRow
}

// NewManifest starts an empty manifest with a fresh run ID.
func NewManifest() *Manifest {
	return &Manifest{
		runID:   uuid.New(),
		started: time.Now().UTC(),
	}
}

// RunID returns the run's unique identifier.
func (m *Manifest) RunID() string {
	return m.runID.String()
}

// Started returns when the run began.
func (m *Manifest) Started() time.Time {
	return m.started
}

// Add appends one outcome row.
func (m *Manifest) Add(row ManifestRow) {
	m.rows = append(m.rows, row)
}

// Rows returns the outcome rows in insertion order.
func (m *Manifest) Rows() []ManifestRow {
	return m.rows
}

// Write saves the manifest as manifest_{runID}.csv under dir. A manifest
// with no rows writes nothing and returns an empty path.
func (m *Manifest) Write(dir string) (string, error) {
	if len(m.rows) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("manifest_%s.csv", m.runID))
	rows := make([][]string, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, []string{
			m.runID.String(),
			r.Source,
			r.Window,
			r.Start.Format(time.RFC3339),
			r.End.Format(time.RFC3339),
			strconv.Itoa(r.Collected),
			strconv.Itoa(r.Matched),
			strconv.Itoa(r.Errors),
		})
	}
	if err := writeCSV(path, manifestHeader, rows); err != nil {
		return "", err
	}
	return path, nil
}
