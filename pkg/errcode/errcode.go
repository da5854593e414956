package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Sheets configuration errors
	SheetsConfigReadError
	SheetsConfigParseError
	SheetsConfigIncompleteError

	// Source errors
	SourceFetchError
	SourceCSVError
	SourceEmptyError

	// Validation errors
	ValidationFailedError

	// Conversion errors
	ConvertEncodeError

	// Template errors
	TemplateBuildError
	TemplateSaveError
)
