package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/timeutil"
)

const manifestFilename = "manifest.json"

// Manifest tracks output metadata for the most recent run.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	ClubID      string    `json:"clubId"`
	Rows        int       `json:"rows"`
	Latest      string    `json:"latest"`
	History     []string  `json:"history"`
	Retention   Retention `json:"retention"`
}

type Retention struct {
	HistoryDays int `json:"historyDays"`
}

func (w *Writer) updateManifest(result domainfixtures.ExportResult, summary Summary) error {
	history, err := w.pruneHistory()
	if err != nil {
		return err
	}

	m := Manifest{
		Version:     1,
		GeneratedAt: w.now().UTC(),
		ClubID:      result.ClubID,
		Rows:        summary.Rows,
		Latest:      LatestFilename,
		History:     history,
		Retention: Retention{
			HistoryDays: w.retentionDays,
		},
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(w.dir, manifestFilename), append(data, '\n'))
}

// pruneHistory removes timestamped copies older than the retention window
// and returns the names that remain, oldest first.
func (w *Writer) pruneHistory() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, &IOError{Path: w.dir, Err: err}
	}

	cutoff := w.now().UTC().AddDate(0, 0, -w.retentionDays)
	keep := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, timestampedPrefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, timestampedPrefix), ".csv")
		written, err := time.Parse(timeutil.StampLayout, stamp)
		if err != nil {
			keep = append(keep, name)
			continue
		}
		if written.Before(cutoff) {
			_ = os.Remove(filepath.Join(w.dir, name))
			continue
		}
		keep = append(keep, name)
	}
	sort.Strings(keep)
	return keep, nil
}

// ReadManifest loads the manifest from an output directory.
func ReadManifest(dir string) (Manifest, error) {
	f, err := os.Open(filepath.Join(dir, manifestFilename))
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
