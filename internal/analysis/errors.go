package analysis

import "fmt"

// AnalysisError indicates the hosted model could not produce usable
// portfolio content. Callers are expected to substitute fallback content
// rather than abort the run.
type AnalysisError struct {
	Stage string // "request", "decode"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
