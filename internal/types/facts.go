// Package types provides type definitions for structured data used throughout
// the resume assessment system.
package types

// Experience is a single role extracted from a resume.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is a single degree extracted from a resume.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ResumeFacts holds the structured information extracted from raw resume text.
// A zero-value ResumeFacts means "no facts extracted" and is a valid degraded
// input for every downstream stage.
type ResumeFacts struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// JDFacts holds the structured information extracted from a job description.
type JDFacts struct {
	Title           string   `json:"title"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	SeniorityLevel  string   `json:"seniority_level"`
	Summary         string   `json:"summary"`
}
