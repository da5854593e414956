package iosource

import (
	"encoding/csv"
	"io"
	"strings"
)

// parseCSV reads header-keyed rows from CSV data. The first record is
// the header; every cell is whitespace-trimmed. All-empty rows are
// kept in place so slice indexes keep matching sheet row numbers; the
// parse stage skips them.
func parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	// Sheets pads short rows inconsistently; tolerate ragged records.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			var v string
			if i < len(record) {
				v = strings.TrimSpace(record[i])
			}
			row[h] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
