// Package report collects validation findings and renders them as a
// grouped, human-readable report. All findings are uniform; there is no
// severity ladder -- any finding fails the run.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// Finding describes one validation problem in one table cell or row.
type Finding struct {
	// Table is the sheet tab name the problem was found in.
	Table string
	// Row is the 1-based row number as shown in the spreadsheet UI
	// (data starts at row 2, after the header).
	Row int
	// Field is the column name, empty for row-level problems.
	Field string
	// Message describes the problem.
	Message string
}

func (f Finding) String() string {
	if f.Field == "" {
		return fmt.Sprintf("row %d: %s", f.Row, f.Message)
	}
	return fmt.Sprintf("row %d, %s: %s", f.Row, f.Field, f.Message)
}

// Report groups findings by table for rendering.
type Report struct {
	tableOrder []string
	findings   []Finding
}

// New creates a Report that renders tables in the given fixed order.
// Findings for tables outside the order are appended at the end.
func New(tableOrder []string) *Report {
	return &Report{tableOrder: tableOrder}
}

// Add appends findings to the report.
func (r *Report) Add(fs ...Finding) {
	r.findings = append(r.findings, fs...)
}

// Findings returns all collected findings in insertion order.
func (r *Report) Findings() []Finding {
	return r.findings
}

// Count returns the number of collected findings.
func (r *Report) Count() int {
	return len(r.findings)
}

// Pass reports whether the dataset is clean. Only an empty report
// passes; there is no partial-success mode.
func (r *Report) Pass() bool {
	return len(r.findings) == 0
}

// Render produces the grouped report text. Tables appear in the fixed
// display order; within a table, findings keep insertion order.
func (r *Report) Render() string {
	if r.Pass() {
		return "Validation passed: no problems found.\n"
	}

	byTable := make(map[string][]Finding)
	for _, f := range r.findings {
		byTable[f.Table] = append(byTable[f.Table], f)
	}

	order := make([]string, 0, len(byTable))
	seen := make(map[string]bool)
	for _, name := range r.tableOrder {
		if _, ok := byTable[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	// Unknown tables go last, sorted for stable output.
	var extra []string
	for name := range byTable {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	var b strings.Builder
	fmt.Fprintf(&b, "Validation failed: %s %s\n",
		humanize.Comma(int64(len(r.findings))), plural(len(r.findings)))
	for _, name := range order {
		fmt.Fprintf(&b, "\n%s:\n", name)
		for _, f := range byTable[name] {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return "problem"
	}
	return "problems"
}
