package guardrail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// fakeSaver records the persisted record and optionally fails.
type fakeSaver struct {
	saved *types.AssessmentRecord
	err   error
}

func (f *fakeSaver) SaveAssessment(_ context.Context, rec *types.AssessmentRecord) error {
	f.saved = rec
	return f.err
}

func newTestState() *types.State {
	state := types.NewState("resume", "jd")
	state.ResumeFacts = &types.ResumeFacts{Name: "Jane Doe"}
	state.JDFacts = &types.JDFacts{Title: "Backend Engineer"}
	state.Scores = &types.ScoreRecord{Skills: 0.5, Experience: 1.0, Seniority: 1.0, Overall: 0.75}
	state.Narrative = "Reach Jane at jane@example.com."
	return state
}

func TestStage_RedactsBeforePersisting(t *testing.T) {
	saver := &fakeSaver{}
	stage := NewStage(saver, zap.NewNop())

	cleaned := stage.Apply(context.Background(), newTestState())

	assert.NotContains(t, cleaned, "jane@example.com")
	require.NotNil(t, saver.saved)
	assert.NotContains(t, saver.saved.Assessment, "jane@example.com")
	assert.Contains(t, saver.saved.Assessment, RedactedEmail)
}

func TestStage_WriteFailureIsNotSurfaced(t *testing.T) {
	saver := &fakeSaver{err: errors.New("connection refused")}
	stage := NewStage(saver, zap.NewNop())

	state := newTestState()
	cleaned := stage.Apply(context.Background(), state)

	// The user-facing result is still produced.
	assert.Contains(t, cleaned, RedactedEmail)
	assert.Equal(t, cleaned, state.CleanedNarrative)
}

func TestStage_NilStoreSkipsPersistence(t *testing.T) {
	stage := NewStage(nil, zap.NewNop())

	state := newTestState()
	cleaned := stage.Apply(context.Background(), state)

	assert.Contains(t, cleaned, RedactedEmail)
}

func TestStage_RecordCarriesFactsAndScores(t *testing.T) {
	saver := &fakeSaver{}
	stage := NewStage(saver, zap.NewNop())

	stage.Apply(context.Background(), newTestState())

	require.NotNil(t, saver.saved)
	assert.Equal(t, "Jane Doe", saver.saved.CandidateName)
	assert.Equal(t, "Backend Engineer", saver.saved.JDTitle)
	assert.Equal(t, 0.75, saver.saved.OverallScore)
	assert.False(t, saver.saved.CreatedAt.IsZero())
}
