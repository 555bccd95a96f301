// Package report serializes aggregation results: a CSV file for spreadsheet
// import and a styled console summary.
package report

import (
	"encoding/csv"
	"os"
	"sort"
	"strings"

	"github.com/Cyclone1070/cfgtrack/internal/tracker"
)

// ArtifactSeparator joins object files within one CSV cell.
const ArtifactSeparator = "; "

// csvHeader is the fixed header row of the report.
var csvHeader = []string{"Track Status", "CONFIG_OPTION", "Object Files"}

// WriteCSV writes one row per option, sorted by option name ascending. The
// Track Status column is the fixed literal "NO" — a placeholder for manual
// downstream edits in the imported spreadsheet.
func WriteCSV(path string, records map[string]tracker.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	options := make([]string, 0, len(records))
	for option := range records {
		options = append(options, option)
	}
	sort.Strings(options)

	for _, option := range options {
		rec := records[option]
		row := []string{trackStatus(rec), rec.Option, strings.Join(rec.Artifacts, ArtifactSeparator)}
		if err := w.Write(row); err != nil {
			return &WriteError{Path: path, Cause: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return f.Close()
}

func trackStatus(rec tracker.Record) string {
	if rec.Tracked {
		return "YES"
	}
	return "NO"
}
