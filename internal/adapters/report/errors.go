package report

import "errors"

// Sentinel kinds for report errors.
var (
	ErrEncodeReport = errors.New("encode report failed")
	ErrWriteReport  = errors.New("write report failed")
)
