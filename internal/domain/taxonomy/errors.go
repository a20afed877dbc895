package taxonomy

import "errors"

// Sentinel kinds for taxonomy errors.
var (
	ErrMalformedTaxonomy = errors.New("malformed taxonomy")
	ErrLoadTaxonomy      = errors.New("load taxonomy failed")
)
