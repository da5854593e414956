package sheets

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unlockegypt/contentsync/pkg/errcode"
)

func ReadError(path string, err error) error {
	msg := "Cannot read sheets configuration <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SheetsConfigReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read sheets config: %w",
			fn, err),
	}
}

func ParseError(path string, err error) error {
	msg := "Sheets configuration <em>%s</em> is not valid YAML"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SheetsConfigParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse sheets config: %w",
			fn, err),
	}
}

func IncompleteError(detail string) error {
	msg := `Sheets configuration is incomplete

<em>Problem:</em> %s

<em>How to fix:</em>
  1. Open sheets.yaml in the config directory
  2. List all five tables: Sites, SubLocations, Cards, Tips, ArabicPhrases
  3. Give each a gid (spreadsheet tab) or a file (local CSV)`
	vars := []any{detail}
	return &gn.Error{
		Code: errcode.SheetsConfigIncompleteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("incomplete sheets config: %s", detail),
	}
}
