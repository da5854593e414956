package iotemplate

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unlockegypt/contentsync/pkg/errcode"
)

func BuildError(err error) error {
	msg := "Cannot build the content workbook"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TemplateBuildError,
		Msg:  msg,
		Vars: nil,
		Err: fmt.Errorf("from %s: cannot build workbook: %w",
			fn, err),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save the content workbook to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TemplateSaveError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot save workbook: %w",
			fn, err),
	}
}
