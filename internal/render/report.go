// Package render turns the raw snapshot table into a displayable report:
// per-cell type coercion, date sorting, latest-value tiles, and the long-form
// series the chart consumes. It performs no I/O beyond the injected store.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"lerobot-metrics/internal/port"
)

// State describes how far the renderer got with the store content.
type State int

const (
	StateOK         State = iota
	StateNoData           // file does not exist yet
	StateEmpty            // file exists but holds no data rows
	StateUnparsable       // file exists but cannot be read as a snapshot table
)

const (
	dateColumn = "snapshot_date"
	// missingMarker is what an uncoercible metric cell renders as.
	missingMarker = "-"
)

// metricColumns are the five numeric columns, in display order.
var metricColumns = []string{
	"lerobot_github_stars",
	"hf_lerobot_dataset_count",
	"hf_unique_dataset_uploaders",
	"github_topic_robotics_repo_count",
	"github_topic_lerobot_repo_count",
}

// tileLabels are the short labels on the summary tiles.
var tileLabels = map[string]string{
	"lerobot_github_stars":             "LeRobot Stars",
	"hf_lerobot_dataset_count":         "HF LeRobot Datasets",
	"hf_unique_dataset_uploaders":      "Unique HF Uploaders",
	"github_topic_robotics_repo_count": "GitHub topic:robotics repos",
	"github_topic_lerobot_repo_count":  "GitHub topic:lerobot repos",
}

// seriesLabels are the long, human-readable names used in the chart legend.
var seriesLabels = map[string]string{
	"lerobot_github_stars":             "LeRobot GitHub Stars",
	"hf_lerobot_dataset_count":         "HF LeRobot Dataset Count",
	"hf_unique_dataset_uploaders":      "HF Unique Dataset Uploaders",
	"github_topic_robotics_repo_count": "GitHub topic:robotics repo count",
	"github_topic_lerobot_repo_count":  "GitHub topic:lerobot repo count",
}

// Tile is one latest-value summary tile.
type Tile struct {
	Label   string
	Value   int
	Missing bool
}

// Series is one chart line: Values aligned with Report.Dates, nil = gap.
type Series struct {
	Label  string
	Values []*float64
}

// Row is one post-coercion table row, cells in original column order.
type Row struct {
	Cells []string
}

// Report is everything the dashboard needs to draw one page.
type Report struct {
	State   State
	Message string

	Columns []string
	Rows    []Row
	Tiles   []Tile
	Dates   []string
	Series  []Series
}

// Build reads the whole store and assembles a report. It never fails: every
// problem degrades into a non-OK state carrying a user-facing message.
func Build(st port.SnapshotStore, path string) *Report {
	records, err := st.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Report{
				State:   StateNoData,
				Message: "No snapshots yet. Run: go run ./cmd/snapshot",
			}
		}
		return &Report{
			State:   StateUnparsable,
			Message: fmt.Sprintf("Could not read %s: %v", path, err),
		}
	}

	if len(records) <= 1 {
		return &Report{
			State:   StateEmpty,
			Message: "Snapshot file is empty. Add one snapshot first.",
		}
	}

	header := records[0]
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}

	dateIdx, ok := colIndex[dateColumn]
	if !ok {
		return &Report{
			State:   StateUnparsable,
			Message: fmt.Sprintf("Could not read %s: missing %q column", path, dateColumn),
		}
	}
	for _, col := range metricColumns {
		if _, ok := colIndex[col]; !ok {
			return &Report{
				State:   StateUnparsable,
				Message: fmt.Sprintf("Could not read %s: missing %q column", path, col),
			}
		}
	}

	type parsedRow struct {
		date    time.Time
		cells   []string
		metrics map[string]*float64
	}

	var rows []parsedRow
	for _, record := range records[1:] {
		date, ok := parseDate(cellAt(record, dateIdx))
		if !ok {
			// Rows with an unparsable date are dropped entirely; rows with
			// unparsable metric cells are kept with the cell blanked.
			continue
		}

		row := parsedRow{
			date:    date,
			cells:   make([]string, len(header)),
			metrics: make(map[string]*float64, len(metricColumns)),
		}
		for i := range header {
			row.cells[i] = cellAt(record, i)
		}
		row.cells[dateIdx] = date.Format("2006-01-02")

		for _, col := range metricColumns {
			idx := colIndex[col]
			value, ok := parseNumeric(cellAt(record, idx))
			if ok {
				row.metrics[col] = &value
				row.cells[idx] = formatNumeric(value)
			} else {
				row.metrics[col] = nil
				row.cells[idx] = missingMarker
			}
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return &Report{
			State:   StateEmpty,
			Message: "Snapshot file is empty. Add one snapshot first.",
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	report := &Report{
		State:   StateOK,
		Columns: header,
	}

	for _, row := range rows {
		report.Rows = append(report.Rows, Row{Cells: row.cells})
		report.Dates = append(report.Dates, row.date.Format("2006-01-02"))
	}

	latest := rows[len(rows)-1]
	for _, col := range metricColumns {
		tile := Tile{Label: tileLabels[col]}
		if v := latest.metrics[col]; v != nil {
			tile.Value = int(*v)
		} else {
			tile.Missing = true
		}
		report.Tiles = append(report.Tiles, tile)
	}

	for _, col := range metricColumns {
		series := Series{Label: seriesLabels[col]}
		for _, row := range rows {
			series.Values = append(series.Values, row.metrics[col])
		}
		report.Series = append(report.Series, series)
	}

	return report
}

// cellAt tolerates short records: out-of-range cells read as empty.
func cellAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseDate accepts the canonical date layout and, for robustness against
// hand-edited files, a full timestamp.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseNumeric is the fallible-parse-with-default combinator applied to every
// metric cell: anything unparsable becomes a missing value, never an error.
func parseNumeric(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
