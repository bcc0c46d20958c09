package timesheet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FieldCount is the fixed arity of a QuickBooks timesheet report row.
const FieldCount = 7

// totalPrefix marks subtotal rows in the report. Selection is case-sensitive
// and requires the trailing space; the project name is whatever follows it.
const totalPrefix = "Total "

// Row is one record of a QuickBooks timesheet export. The report has no
// header row; fields are purely positional.
type Row struct {
	Marker        string
	Project       string
	Class         string
	Date          string
	Name          string
	BillingStatus string
	Duration      string
}

// NewRow builds a Row from raw CSV fields, rejecting any record that does
// not have exactly FieldCount fields.
func NewRow(fields []string) (Row, error) {
	if len(fields) != FieldCount {
		return Row{}, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}
	return Row{
		Marker:        fields[0],
		Project:       fields[1],
		Class:         fields[2],
		Date:          fields[3],
		Name:          fields[4],
		BillingStatus: fields[5],
		Duration:      fields[6],
	}, nil
}

// IsTotal reports whether the row is a per-project subtotal row.
func (r Row) IsTotal() bool {
	return strings.HasPrefix(r.Project, totalPrefix)
}

// Entry is one project with its booked days.
type Entry struct {
	Project string
	Days    float64
}

// Summary is the project-to-days mapping in descending order of days.
// Order is part of the value; iterate in slice order.
type Summary []Entry

// Summarize extracts the subtotal rows from a report and returns the summary
// in descending order of days. Detail rows, header rows, and blanks are
// skipped. A repeated subtotal for the same project overwrites the earlier
// value (last wins) but keeps the position of its first occurrence, so ties
// stay in original row order after the stable sort.
func Summarize(rows []Row, workdayHours float64) (Summary, error) {
	summary := make(Summary, 0, len(rows)/4+1)
	position := make(map[string]int, len(rows)/4+1)

	for i, row := range rows {
		if !row.IsTotal() {
			continue
		}
		project := row.Project[len(totalPrefix):]

		hours, err := strconv.ParseFloat(strings.TrimSpace(row.Duration), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse duration %q for project %q: %w", i+1, row.Duration, project, err)
		}
		days := hours / workdayHours

		if at, seen := position[project]; seen {
			summary[at].Days = days
			continue
		}
		position[project] = len(summary)
		summary = append(summary, Entry{Project: project, Days: days})
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Days > summary[j].Days
	})

	return summary, nil
}
