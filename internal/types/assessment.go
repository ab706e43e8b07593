package types

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentRecord is the persisted result of one pipeline run. Records are
// created once, never updated and never deleted by the pipeline; retention is
// an external concern.
type AssessmentRecord struct {
	ID              uuid.UUID `json:"id"`
	CandidateName   string    `json:"candidate_name"`
	JDTitle         string    `json:"jd_title"`
	SkillsScore     float64   `json:"skills_score"`
	ExperienceScore float64   `json:"experience_score"`
	SeniorityScore  float64   `json:"seniority_score"`
	OverallScore    float64   `json:"overall_score"`
	Assessment      string    `json:"assessment"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewAssessmentRecord builds a record from a completed run state. The
// narrative must already have passed through the guardrail stage.
func NewAssessmentRecord(state *State) *AssessmentRecord {
	rec := &AssessmentRecord{
		ID:            uuid.New(),
		CandidateName: "Unknown",
		JDTitle:       "Unknown",
		Assessment:    state.CleanedNarrative,
		CreatedAt:     time.Now().UTC(),
	}
	if state.ResumeFacts != nil && state.ResumeFacts.Name != "" {
		rec.CandidateName = state.ResumeFacts.Name
	}
	if state.JDFacts != nil && state.JDFacts.Title != "" {
		rec.JDTitle = state.JDFacts.Title
	}
	if state.Scores != nil {
		rec.SkillsScore = state.Scores.Skills
		rec.ExperienceScore = state.Scores.Experience
		rec.SeniorityScore = state.Scores.Seniority
		rec.OverallScore = state.Scores.Overall
	}
	return rec
}
