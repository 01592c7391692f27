package domain

import "errors"

var (
	// ErrAnalysis marks a static-analysis failure. It ends the bug run.
	ErrAnalysis = errors.New("analysis failed")
	// ErrCompile marks a failed compilation of patched sources.
	ErrCompile = errors.New("compilation failed")
	// ErrCatastrophic marks a broken build or environment detected while
	// validating. It ends the attempt with REPAIR_EXCEPTION.
	ErrCatastrophic = errors.New("catastrophic validation failure")
)
