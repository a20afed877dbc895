package volunteer

import "errors"

// Sentinel kinds for survey errors.
var (
	ErrMissingColumn = errors.New("missing survey column")
	ErrReadSurvey    = errors.New("read survey failed")
)
