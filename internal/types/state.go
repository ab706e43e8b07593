package types

// State is the accumulating record carried through one pipeline run.
// ResumeText and JDText are set at creation and never modified. Every other
// field is nil/empty until the stage that owns it has run; a stage must never
// read a field owned by a later stage.
type State struct {
	ResumeText string
	JDText     string

	ResumeFacts *ResumeFacts // set by the parse stage
	JDFacts     *JDFacts     // set by the parse stage
	Scores      *ScoreRecord // set by the score stage

	Narrative        string // set by the assess stage
	CleanedNarrative string // set by the guardrail stage
}

// NewState creates the initial run state from the raw inputs.
func NewState(resumeText, jdText string) *State {
	return &State{
		ResumeText: resumeText,
		JDText:     jdText,
	}
}
