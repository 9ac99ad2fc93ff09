package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigMissingSettingsError
	ConfigEnvFileError
	ConfigReadError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBUnknownDriverError
	DBCloseError
	DBCursorReleasedError
	DBCursorReleaseError

	// Check errors
	CheckQueryError
	CheckPanicError
	CheckCancelledError
	CheckUnknownNameError
	CheckUnknownKindError
	CheckFailedError

	// Report errors
	ReportFormatError
	ReportEncodeError
)
