package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is where report files land, relative to the working directory.
const DefaultDir = "reports"

// Writer persists rendered reports as timestamped text files. Filenames carry
// the plate and a second-resolution timestamp, so separate runs for the same
// plate never collide.
type Writer struct {
	dir string
	now func() time.Time
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{dir: dir, now: time.Now}
}

// Save writes the content to <dir>/vehicle_<plate>_<YYYYMMDD_HHMMSS>.txt,
// creating the directory on first use, and returns the path written.
func (w *Writer) Save(plateNo, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	name := fmt.Sprintf("vehicle_%s_%s.txt", plateNo, w.now().Format("20060102_150405"))
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Compose prepends the report metadata header to a rendered text block.
func Compose(plateNo, source, body string, generated time.Time) string {
	return fmt.Sprintf("VEHICLEINFO Report\nGenerated: %s\nVehicle: %s\nSource: %s\n\n%s",
		generated.Format("2006-01-02 15:04:05"), plateNo, source, body)
}
