package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/timeutil"
)

// LatestFilename is the stable output file replaced on every run.
const LatestFilename = "latest_fixtures.csv"

const timestampedPrefix = "fixture_data_"

// header defines the fixed CSV column order.
var header = []string{
	"match_date",
	"match_time",
	"home_team",
	"away_team",
	"home_score",
	"away_score",
	"competition",
	"venue",
}

// IOError captures output file failures.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// AsIOError attempts to unwrap an error into an IOError.
func AsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}

// Options controls where and how CSV output is written.
type Options struct {
	Dir               string
	TimestampedCopies bool
	RetentionDays     int
}

// Writer persists fixture CSVs with atomic replacement, plus an optional
// timestamped history copy per run with manifest and retention pruning.
type Writer struct {
	dir           string
	timestamped   bool
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at opts.Dir.
func NewWriter(opts Options) *Writer {
	retention := opts.RetentionDays
	if retention <= 0 {
		retention = 14
	}
	return &Writer{
		dir:           opts.Dir,
		timestamped:   opts.TimestampedCopies,
		retentionDays: retention,
		now:           time.Now,
	}
}

// Summary reports what a write produced.
type Summary struct {
	Rows            int
	LatestPath      string
	TimestampedPath string
}

// WriteFixtures renders the fixtures to CSV and atomically replaces the
// latest output file. A failure anywhere leaves the previous file intact.
func (w *Writer) WriteFixtures(result domainfixtures.ExportResult) (Summary, error) {
	if w == nil {
		return Summary{}, errors.New("export writer not configured")
	}

	data, err := renderCSV(result.Fixtures)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Summary{}, &IOError{Path: w.dir, Err: err}
	}

	summary := Summary{
		Rows:       len(result.Fixtures),
		LatestPath: filepath.Join(w.dir, LatestFilename),
	}

	if err := writeFileAtomic(summary.LatestPath, data); err != nil {
		return Summary{}, err
	}

	if w.timestamped {
		name := timestampedPrefix + timeutil.FormatStamp(w.now().UTC()) + ".csv"
		summary.TimestampedPath = filepath.Join(w.dir, name)
		if err := writeFileAtomic(summary.TimestampedPath, data); err != nil {
			return Summary{}, err
		}
	}

	if err := w.updateManifest(result, summary); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// renderCSV serializes fixtures with the fixed header and deterministic
// row order so identical input yields byte-identical output.
func renderCSV(list []domainfixtures.Fixture) ([]byte, error) {
	rows := make([]domainfixtures.Fixture, len(list))
	copy(rows, list)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Kickoff.Equal(rows[j].Kickoff) {
			return rows[i].Kickoff.Before(rows[j].Kickoff)
		}
		return rows[i].HomeTeam < rows[j].HomeTeam
	})

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	for _, f := range rows {
		if err := cw.Write(fixtureRow(f)); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fixtureRow maps one fixture to CSV cells. Absent scores become empty
// cells, carried verbatim from upstream rather than fabricated.
func fixtureRow(f domainfixtures.Fixture) []string {
	homeScore := ""
	awayScore := ""
	if f.Score != nil {
		homeScore = strconv.Itoa(f.Score.Home)
		awayScore = strconv.Itoa(f.Score.Away)
	}
	return []string{
		timeutil.FormatDate(f.Kickoff),
		timeutil.FormatClock(f.Kickoff),
		f.HomeTeam,
		f.AwayTeam,
		homeScore,
		awayScore,
		f.Competition,
		f.Venue,
	}
}

// writeFileAtomic writes data to a temp file next to the target and
// renames it into place. Skips the rename when content is unchanged.
func writeFileAtomic(target string, data []byte) error {
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &IOError{Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return &IOError{Path: target, Err: err}
	}
	return nil
}
