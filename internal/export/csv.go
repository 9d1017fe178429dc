package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/polarlab/reddit-data/internal/model"
)

// csvHeader matches transform's column order.
var csvHeader = []string{
	"id", "title", "selftext", "author", "created_utc", "score",
	"upvote_ratio", "num_comments", "url", "permalink", "subreddit",
	"is_self", "over_18",
}

// Writer saves post sets as CSV files under the raw and clean directories.
type Writer struct {
	rawDir   string
	cleanDir string
	logger   *slog.Logger
}

// NewWriter creates a Writer. Directories are created on first write.
func NewWriter(rawDir, cleanDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		rawDir:   rawDir,
		cleanDir: cleanDir,
		logger:   logger,
	}
}

// WriteRaw saves every collected post for one source and window. An empty
// post set writes nothing and returns an empty path.
func (w *Writer) WriteRaw(source, window string, posts []model.Post) (string, error) {
	name := fmt.Sprintf("%s_%s.csv", source, window)
	return w.write(w.rawDir, name, posts)
}

// WriteFiltered saves the keyword-matched subset for one source and
// window. An empty post set writes nothing and returns an empty path.
func (w *Writer) WriteFiltered(source, window string, posts []model.Post) (string, error) {
	name := fmt.Sprintf("%s_%s_politics.csv", source, window)
	return w.write(w.cleanDir, name, posts)
}

func (w *Writer) write(dir, name string, posts []model.Post) (string, error) {
	if len(posts) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, transform(p))
	}
	if err := writeCSV(path, csvHeader, rows); err != nil {
		return "", err
	}

	w.logger.Info("wrote posts",
		"path", path,
		"count", len(posts),
	)
	return path, nil
}

// transform converts a post to one CSV record.
func transform(p model.Post) []string {
	return []string{
		p.ID,
		p.Title,
		p.SelfText,
		p.Author,
		p.CreatedUTC.Format(time.RFC3339),
		strconv.Itoa(p.Score),
		strconv.FormatFloat(p.UpvoteRatio, 'g', -1, 64),
		strconv.Itoa(p.NumComments),
		p.URL,
		p.Permalink,
		p.Subreddit,
		strconv.FormatBool(p.IsSelf),
		strconv.FormatBool(p.Over18),
	}
}

// writeCSV saves a header and rows to path, replacing any existing file.
func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
