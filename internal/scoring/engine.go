// Package scoring computes the objective fit scores for a resume against a
// job description.
package scoring

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/prompts"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// Fixed weights for the overall score. These are business constants of the
// scoring design, not configuration.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	seniorityWeight  = 0.2

	// fullCreditYears is the relevant-experience ceiling: at or above this
	// many years the experience component scores 1.0.
	fullCreditYears = 5.0
)

// Neutral fallbacks used when the experience estimate is unavailable. Scoring
// must still produce a usable (if conservative) number during an outage.
const (
	defaultRelevantYears = 0.0
	defaultSeniorityFit  = 0.5
)

// Engine combines a deterministic skill-overlap computation with a
// model-estimated experience/seniority judgment.
type Engine struct {
	client llm.Client
	log    *zap.Logger
}

// NewEngine creates a scoring engine. client may be nil; the experience
// estimate then resolves to its neutral defaults.
func NewEngine(client llm.Client, log *zap.Logger) *Engine {
	return &Engine{client: client, log: log}
}

// experienceEstimate is the model's judgment of the candidate's relevant
// experience. Pointer fields distinguish missing keys from explicit zeros.
type experienceEstimate struct {
	RelevantYears *float64 `json:"relevant_years"`
	SeniorityFit  *float64 `json:"seniority_fit"`
}

// Score computes the four-component ScoreRecord. It never returns an error:
// an estimator failure is absorbed into the neutral defaults.
func (e *Engine) Score(ctx context.Context, resume *types.ResumeFacts, jd *types.JDFacts) types.ScoreRecord {
	skillsScore := SkillOverlap(resume.Skills, jd.RequiredSkills)

	relevantYears, seniorityFit := e.estimateExperience(ctx, resume, jd)

	// Each component is clamped to [0,1] before combination.
	experienceScore := clamp01(math.Min(relevantYears/fullCreditYears, 1.0))
	seniorityFit = clamp01(seniorityFit)
	overall := skillsWeight*skillsScore + experienceWeight*experienceScore + seniorityWeight*seniorityFit

	return types.ScoreRecord{
		Skills:     Round3(skillsScore),
		Experience: Round3(experienceScore),
		Seniority:  Round3(seniorityFit),
		Overall:    Round3(overall),
	}
}

// SkillOverlap computes |resume ∩ required| / |required| over lower-cased,
// trimmed skill sets. A JD with no required skills scores 0.0 by policy.
func SkillOverlap(resumeSkills, requiredSkills []string) float64 {
	required := normalizeSkillSet(requiredSkills)
	if len(required) == 0 {
		return 0.0
	}

	have := normalizeSkillSet(resumeSkills)
	matches := 0
	for skill := range required {
		if have[skill] {
			matches++
		}
	}
	return float64(matches) / float64(len(required))
}

// estimateExperience delegates to the text-generation capability for
// relevant_years and seniority_fit, resolving to the neutral defaults on any
// failure.
func (e *Engine) estimateExperience(ctx context.Context, resume *types.ResumeFacts, jd *types.JDFacts) (float64, float64) {
	if e.client == nil {
		e.log.Warn("experience estimator unavailable, using neutral defaults")
		return defaultRelevantYears, defaultSeniorityFit
	}

	experienceJSON, _ := json.Marshal(resume.Experience)
	jdJSON, _ := json.Marshal(jd)

	template := prompts.MustGet("scoring.json", "estimate-experience")
	prompt := prompts.Format(template, map[string]string{
		"Experience": string(experienceJSON),
		"JDFacts":    string(jdJSON),
	})

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		e.log.Warn("experience estimate call failed, using neutral defaults", zap.Error(err))
		return defaultRelevantYears, defaultSeniorityFit
	}

	var estimate experienceEstimate
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &estimate); err != nil {
		e.log.Warn("experience estimate malformed, using neutral defaults", zap.Error(err))
		return defaultRelevantYears, defaultSeniorityFit
	}

	relevantYears := defaultRelevantYears
	if estimate.RelevantYears != nil {
		relevantYears = *estimate.RelevantYears
	}
	seniorityFit := defaultSeniorityFit
	if estimate.SeniorityFit != nil {
		seniorityFit = *estimate.SeniorityFit
	}
	return relevantYears, seniorityFit
}

// Round3 rounds to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeSkillSet lower-cases and trims skill names, dropping empties.
func normalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
