// Package analysis turns extracted resume text into structured portfolio
// content with a single call to the hosted generation model.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-portfolio/internal/llm"
	"github.com/jonathan/resume-portfolio/internal/types"
)

// DefaultTimeout bounds the single analysis request. The hosted endpoint
// has no timeout of its own; expiry maps to *AnalysisError so the fallback
// path engages instead of hanging the pipeline.
const DefaultTimeout = 20 * time.Second

// Analyzer issues one generation request per resume and decodes the
// response into PortfolioContent.
type Analyzer struct {
	client  llm.Client
	timeout time.Duration
}

// New creates an Analyzer. A non-positive timeout uses DefaultTimeout.
func New(client llm.Client, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Analyzer{client: client, timeout: timeout}
}

// Analyze builds the structuring prompt for text, issues exactly one
// request, and returns the decoded content. It returns *AnalysisError on
// request failure, timeout, or an undecodable response; it never returns a
// partially-shaped object.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*types.PortfolioContent, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.GenerateJSON(ctx, buildPrompt(text))
	if err != nil {
		return nil, &AnalysisError{Stage: "request", Err: err}
	}

	cleaned := llm.CleanJSONBlock(raw)
	var content types.PortfolioContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, &AnalysisError{Stage: "decode", Err: fmt.Errorf("invalid JSON from model: %w", err)}
	}

	content.Normalize()
	return &content, nil
}
