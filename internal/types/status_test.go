package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRankOrdering(t *testing.T) {
	ordered := []ResumeStatus{StatusUploaded, StatusExtracting, StatusAnalyzing, StatusGenerating, StatusCompleted}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(), "%s must rank above %s", ordered[i], ordered[i-1])
	}

	assert.Equal(t, -1, StatusFailed.Rank())
	assert.Equal(t, -1, ResumeStatus("bogus").Rank())
}

func TestStatusValid(t *testing.T) {
	for _, s := range []ResumeStatus{StatusUploaded, StatusExtracting, StatusAnalyzing, StatusGenerating, StatusCompleted, StatusFailed} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ResumeStatus("bogus").Valid())
	assert.False(t, ResumeStatus("").Valid())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusUploaded.Terminal())
	assert.False(t, StatusGenerating.Terminal())
}

func TestCanAdvanceTo(t *testing.T) {
	assert.True(t, StatusUploaded.CanAdvanceTo(StatusExtracting))
	assert.True(t, StatusExtracting.CanAdvanceTo(StatusGenerating), "skipping forward is legal")
	assert.True(t, StatusAnalyzing.CanAdvanceTo(StatusFailed))

	assert.False(t, StatusAnalyzing.CanAdvanceTo(StatusExtracting), "no moving backwards")
	assert.False(t, StatusAnalyzing.CanAdvanceTo(StatusAnalyzing), "no self transition")
	assert.False(t, StatusCompleted.CanAdvanceTo(StatusFailed), "terminal statuses never advance")
	assert.False(t, StatusFailed.CanAdvanceTo(StatusExtracting), "failed runs stay failed")
}

func TestStepStateFor(t *testing.T) {
	assert.Equal(t, StepCompleted, StepStateFor(StatusAnalyzing, StatusUploaded))
	assert.Equal(t, StepCompleted, StepStateFor(StatusAnalyzing, StatusExtracting))
	assert.Equal(t, StepCurrent, StepStateFor(StatusAnalyzing, StatusAnalyzing))
	assert.Equal(t, StepPending, StepStateFor(StatusAnalyzing, StatusGenerating))
	assert.Equal(t, StepPending, StepStateFor(StatusAnalyzing, StatusCompleted))
}

func TestStepStateForFailed(t *testing.T) {
	// A failed run shows every step as pending rather than pretending
	// progress was made.
	for _, step := range []ResumeStatus{StatusUploaded, StatusExtracting, StatusAnalyzing, StatusGenerating, StatusCompleted} {
		assert.Equal(t, StepPending, StepStateFor(StatusFailed, step), string(step))
	}
}
