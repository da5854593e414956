package iosource

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unlockegypt/contentsync/pkg/errcode"
)

func FetchError(table string, err error) error {
	msg := "Cannot fetch the <em>%s</em> sheet"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot fetch sheet %s: %w",
			fn, table, err),
	}
}

func FetchStatusError(table string, status int) error {
	msg := `Fetching the <em>%s</em> sheet returned HTTP %d

<em>Possible causes:</em>
  - The spreadsheet is not published to the web
  - The gid in sheets.yaml does not match the tab

<em>How to fix:</em>
  1. In Google Sheets: File → Share → Publish to web
  2. Verify each tab's gid in sheets.yaml`
	vars := []any{table, status}
	return &gn.Error{
		Code: errcode.SourceFetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sheet %s: unexpected HTTP status %d", table, status),
	}
}

func OpenError(table, path string, err error) error {
	msg := "Cannot open <em>%s</em> for the %s table"
	vars := []any{path, table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn, path, err),
	}
}

func CSVError(table string, err error) error {
	msg := "The <em>%s</em> table is not valid CSV"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceCSVError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse CSV for %s: %w",
			fn, table, err),
	}
}

func EmptySourceError(table string) error {
	msg := `The <em>%s</em> table has no rows

Nothing can be generated from an empty dataset.

<em>How to fix:</em>
  1. Check sheets.yaml points at the right spreadsheet or data_dir
  2. Verify the %s sheet has data below its header row`
	vars := []any{table, table}
	return &gn.Error{
		Code: errcode.SourceEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s is empty", table),
	}
}
