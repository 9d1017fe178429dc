package export

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewManifest(t *testing.T) {
	m := NewManifest()

	if _, err := uuid.Parse(m.RunID()); err != nil {
		t.Errorf("RunID() = %q is not a valid UUID: %v", m.RunID(), err)
	}
	if m.Started().IsZero() {
		t.Error("Started() should not be zero")
	}
	if len(m.Rows()) != 0 {
		t.Errorf("len(Rows()) = %d, want 0", len(m.Rows()))
	}
}

func TestManifest_Write(t *testing.T) {
	dir := t.TempDir()
	m := NewManifest()
	m.Add(ManifestRow{
		Source:    "germany",
		Window:    "pre_euro",
		Start:     time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 13, 23, 59, 59, 0, time.UTC),
		Collected: 120,
		Matched:   34,
	})
	m.Add(ManifestRow{
		Source:    "france",
		Window:    "pre_euro",
		Start:     time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 6, 13, 23, 59, 59, 0, time.UTC),
		Collected: 0,
		Matched:   0,
		Errors:    7,
	})

	path, err := m.Write(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, fmt.Sprintf("manifest_%s.csv", m.RunID()))
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (header + 2 rows)", len(records))
	}
	for i, row := range records[1:] {
		if row[0] != m.RunID() {
			t.Errorf("row %d run_id = %q, want %q", i+1, row[0], m.RunID())
		}
	}
	if records[1][1] != "germany" || records[1][5] != "120" || records[1][6] != "34" {
		t.Errorf("row 1 = %v, want germany with 120 collected, 34 matched", records[1])
	}
	if records[2][7] != "7" {
		t.Errorf("row 2 errors = %q, want %q", records[2][7], "7")
	}
	if records[1][3] != "2024-05-15T00:00:00Z" {
		t.Errorf("row 1 window_start = %q, want %q", records[1][3], "2024-05-15T00:00:00Z")
	}
}

func TestManifest_WriteEmpty(t *testing.T) {
	m := NewManifest()

	path, err := m.Write(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
}

func TestManifest_RunIDsAreUnique(t *testing.T) {
	a, b := NewManifest(), NewManifest()
	if a.RunID() == b.RunID() {
		t.Errorf("two manifests share run ID %q", a.RunID())
	}
}
