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

	// Logging errors
	CreateLogFileError

	// Table errors
	InputNotFoundError
	InputReadError
	MissingHeadersError
	MissingColumnsError
	OutputWriteError

	// NCBI errors
	NCBIRequestError
	NCBIStatusError
	NCBIParseError

	// Enrich errors
	EnrichCancelledError
)
