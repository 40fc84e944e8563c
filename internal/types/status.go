// Package types provides type definitions for structured data used throughout the resume-portfolio system.
package types

// ResumeStatus tracks a resume's progress through the processing pipeline.
type ResumeStatus string

// Pipeline statuses in processing order. Failed is terminal and reachable
// from any non-terminal status.
const (
	StatusUploaded   ResumeStatus = "uploaded"
	StatusExtracting ResumeStatus = "extracting"
	StatusAnalyzing  ResumeStatus = "analyzing"
	StatusGenerating ResumeStatus = "generating"
	StatusCompleted  ResumeStatus = "completed"
	StatusFailed     ResumeStatus = "failed"
)

// statusOrder defines the forward progression of the pipeline.
var statusOrder = []ResumeStatus{
	StatusUploaded,
	StatusExtracting,
	StatusAnalyzing,
	StatusGenerating,
	StatusCompleted,
}

// Rank returns the position of the status in the pipeline order,
// or -1 for failed/unknown statuses which have no position.
func (s ResumeStatus) Rank() int {
	for i, status := range statusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the known statuses.
func (s ResumeStatus) Valid() bool {
	return s == StatusFailed || s.Rank() >= 0
}

// Terminal reports whether the pipeline can make no further progress from s.
func (s ResumeStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanAdvanceTo reports whether a transition from s to next is legal:
// statuses only move forward along the pipeline order, or jump to failed.
func (s ResumeStatus) CanAdvanceTo(next ResumeStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	return next.Rank() > s.Rank()
}

// StepState classifies a pipeline step relative to the current status.
type StepState string

// Step states for progress rendering.
const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// StepStateFor classifies step against the current status. A failed current
// status leaves every unreached step pending.
func StepStateFor(current, step ResumeStatus) StepState {
	currentRank := current.Rank()
	stepRank := step.Rank()
	switch {
	case currentRank > stepRank:
		return StepCompleted
	case currentRank == stepRank && currentRank >= 0:
		return StepCurrent
	default:
		return StepPending
	}
}
