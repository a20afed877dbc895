package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoTaxonomy = errors.New("taxonomy not configured")
	ErrClassify   = errors.New("classify survey failed")
	ErrStrategy   = errors.New("build strategy failed")
)
