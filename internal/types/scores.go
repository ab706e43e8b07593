package types

// ScoreRecord holds the four fit scores produced by the scoring stage.
// Overall is always the fixed weighted sum of the other three components
// (0.5 skills + 0.3 experience + 0.2 seniority), each rounded to 3 decimals.
type ScoreRecord struct {
	Skills     float64 `json:"skills_score"`
	Experience float64 `json:"experience_score"`
	Seniority  float64 `json:"seniority_score"`
	Overall    float64 `json:"overall_score"`
}
