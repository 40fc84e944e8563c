// Package pipeline provides the high-level orchestration that turns an
// uploaded resume into portfolio content.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/resume-portfolio/internal/analysis"
	"github.com/jonathan/resume-portfolio/internal/types"
)

// DefaultGeneratePause is the observability pause for the generating step,
// which performs no computation yet (reserved for template rendering).
const DefaultGeneratePause = 300 * time.Millisecond

// Extractor turns raw PDF bytes into plain resume text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Analyzer turns resume text into structured portfolio content.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*types.PortfolioContent, error)
}

// StatusCallback observes pipeline progress. It is invoked synchronously,
// strictly in pipeline order, terminating with completed or failed.
type StatusCallback func(status types.ResumeStatus)

// PipelineError indicates the run could not produce content.
type PipelineError struct {
	Step types.ResumeStatus
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed during %s: %v", e.Step, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Runner sequences extraction and analysis for one resume upload.
// A Runner is safe for concurrent use; each Run operates on caller-local
// data. Callers must not invoke Run twice concurrently for the same
// logical job; deduplicate at the call site.
type Runner struct {
	Extractor Extractor
	Analyzer  Analyzer
	// GeneratePause overrides DefaultGeneratePause when positive.
	GeneratePause time.Duration
}

// NewRunner creates a Runner with the default generating-step pause.
func NewRunner(extractor Extractor, analyzer Analyzer) *Runner {
	return &Runner{
		Extractor:     extractor,
		Analyzer:      analyzer,
		GeneratePause: DefaultGeneratePause,
	}
}

// Run executes extraction, analysis and generation in order, emitting each
// status before its unit of work begins. Extraction failure is fatal and
// settles the observed status at failed. Analysis failure is absorbed:
// the run still completes, carrying the fixed fallback content.
func (r *Runner) Run(ctx context.Context, file []byte, onStatus StatusCallback) (*types.PortfolioContent, error) {
	emit := func(status types.ResumeStatus) {
		if onStatus != nil {
			onStatus(status)
		}
	}

	emit(types.StatusExtracting)
	text, err := r.Extractor.Extract(file)
	if err != nil {
		emit(types.StatusFailed)
		return nil, &PipelineError{Step: types.StatusExtracting, Err: err}
	}

	emit(types.StatusAnalyzing)
	content, err := r.Analyzer.Analyze(ctx, text)
	if err != nil {
		// Never block the user on AI flakiness: degrade to the fixed
		// fallback and keep going.
		log.Printf("analysis failed, substituting fallback content: %v", err)
		content = analysis.Fallback()
	}

	emit(types.StatusGenerating)
	pause := r.GeneratePause
	if pause < 0 {
		pause = 0
	}
	select {
	case <-ctx.Done():
		emit(types.StatusFailed)
		return nil, &PipelineError{Step: types.StatusGenerating, Err: ctx.Err()}
	case <-time.After(pause):
	}

	emit(types.StatusCompleted)
	return content, nil
}
