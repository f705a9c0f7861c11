// Package actlog keeps a local append-only record of client actions (goal
// edits, report saves and deletes) so `finsight history` can show what
// changed and when. The backend never sees this file.
package actlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one row in activity-log.csv.
type Entry struct {
	Timestamp time.Time
	Action    string
	Details   string
	ReportID  string // empty for non-report actions
}

// Header is the CSV header for activity-log.csv.
const Header = "timestamp,action,details,report_id"

const (
	numFields    = 4
	logFile      = "activity-log.csv"
	colTimestamp = 0
	colAction    = 1
	colDetails   = 2
	colReportID  = 3
)

// Common action names.
const (
	ActionGoalAmount   = "goal_set_amount"
	ActionGoalPercent  = "goal_set_percentage"
	ActionGoalDate     = "goal_set_date"
	ActionGoalSave     = "goal_save"
	ActionReportSave   = "report_save"
	ActionReportDelete = "report_delete"
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colReportID] = e.ReportID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Action:    record[colAction],
		Details:   record[colDetails],
		ReportID:  record[colReportID],
	}, nil
}

// Append writes entries to <stateDir>/activity-log.csv, creating the file
// and header if needed.
func Append(stateDir string, entries []Entry) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}

	path := filepath.Join(stateDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <stateDir>/activity-log.csv.
// Returns an empty slice if the file does not exist.
func Read(stateDir string) ([]Entry, error) {
	path := filepath.Join(stateDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// Tail returns the last n entries (all of them when fewer exist).
func Tail(stateDir string, n int) ([]Entry, error) {
	entries, err := Read(stateDir)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
