package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAssessmentRecord(t *testing.T) {
	state := NewState("resume", "jd")
	state.ResumeFacts = &ResumeFacts{Name: "Jane Doe"}
	state.JDFacts = &JDFacts{Title: "Backend Engineer"}
	state.Scores = &ScoreRecord{Skills: 0.667, Experience: 1.0, Seniority: 1.0, Overall: 0.833}
	state.CleanedNarrative = "Strong match."

	rec := NewAssessmentRecord(state)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "Jane Doe", rec.CandidateName)
	assert.Equal(t, "Backend Engineer", rec.JDTitle)
	assert.Equal(t, 0.833, rec.OverallScore)
	assert.Equal(t, "Strong match.", rec.Assessment)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestNewAssessmentRecord_UnknownFallbacks(t *testing.T) {
	state := NewState("resume", "jd")
	state.CleanedNarrative = "Assessment could not be generated (No API Key)."

	rec := NewAssessmentRecord(state)

	assert.Equal(t, "Unknown", rec.CandidateName)
	assert.Equal(t, "Unknown", rec.JDTitle)
	assert.Equal(t, 0.0, rec.OverallScore)
}

func TestNewAssessmentRecord_EmptyNamesFallBack(t *testing.T) {
	state := NewState("resume", "jd")
	state.ResumeFacts = &ResumeFacts{}
	state.JDFacts = &JDFacts{}

	rec := NewAssessmentRecord(state)

	assert.Equal(t, "Unknown", rec.CandidateName)
	assert.Equal(t, "Unknown", rec.JDTitle)
}

func TestNewState(t *testing.T) {
	state := NewState("resume body", "jd body")

	assert.Equal(t, "resume body", state.ResumeText)
	assert.Equal(t, "jd body", state.JDText)
	assert.Nil(t, state.ResumeFacts)
	assert.Nil(t, state.Scores)
	assert.Empty(t, state.Narrative)
}
