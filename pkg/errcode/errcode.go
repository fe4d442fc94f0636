package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadConfigError

	// Logging errors
	CreateLogFileError

	// Record errors
	RecordStatError
	RecordReadError
	RecordMalformedError

	// Output errors
	OutputFormatError
	OutputCreateError
	OutputWriteError
)
