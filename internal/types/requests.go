package types

import "github.com/go-playground/validator/v10"

// AssessRequest is the payload accepted by the POST /assess endpoint. The
// resume arrives as an uploaded file; JDText and JDURL are mutually exclusive
// form fields.
type AssessRequest struct {
	JDText string `json:"jd_text" validate:"required_without=JDURL"`
	JDURL  string `json:"jd_url" validate:"omitempty,url"`
}

// Validate validates the AssessRequest using the validator.
func (r *AssessRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AssessResponse is returned to callers of the assessment surface. The
// assessment text has always passed PII redaction before it reaches this
// struct.
type AssessResponse struct {
	OverallScore    float64 `json:"overall_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	SeniorityScore  float64 `json:"seniority_score"`
	AssessmentText  string  `json:"assessment_text"`
}
