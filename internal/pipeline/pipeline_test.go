package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/assessment"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/extraction"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/guardrail"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/scoring"
)

// scriptedClient serves GenerateJSON responses in call order and a fixed
// narrative for GenerateContent, emulating one full pipeline run.
type scriptedClient struct {
	jsonResponses []string
	jsonCalls     int
	narrative     string
}

func (c *scriptedClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.narrative, nil
}

func (c *scriptedClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if c.jsonCalls >= len(c.jsonResponses) {
		return "", errors.New("unexpected GenerateJSON call")
	}
	response := c.jsonResponses[c.jsonCalls]
	c.jsonCalls++
	return response, nil
}

func (c *scriptedClient) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = make([]float32, llm.EmbeddingDim)
	}
	return vectors, nil
}

func (c *scriptedClient) Close() error { return nil }

func newRunner(client llm.Client) *Runner {
	log := zap.NewNop()
	return NewRunner(Deps{
		Extractor: extraction.NewExtractor(client, log),
		Engine:    scoring.NewEngine(client, log),
		Generator: assessment.NewGenerator(client, nil, log),
		Guardrail: guardrail.NewStage(nil, log),
	}, log)
}

func TestRun_DegradedEndToEnd(t *testing.T) {
	// No LLM, no retriever, no store: the run still completes with the
	// documented neutral outputs.
	runner := newRunner(nil)

	state, err := runner.Run(context.Background(), "some resume", "some jd")
	require.NoError(t, err)

	require.NotNil(t, state.ResumeFacts)
	require.NotNil(t, state.JDFacts)
	assert.Empty(t, state.ResumeFacts.Skills)
	assert.Empty(t, state.JDFacts.RequiredSkills)

	require.NotNil(t, state.Scores)
	assert.Equal(t, 0.0, state.Scores.Skills)
	assert.Equal(t, 0.0, state.Scores.Experience)
	assert.Equal(t, 0.5, state.Scores.Seniority)
	assert.Equal(t, 0.1, state.Scores.Overall)

	assert.Equal(t, assessment.SentinelNarrative, state.Narrative)
	assert.Equal(t, assessment.SentinelNarrative, state.CleanedNarrative)
}

func TestRun_FullChain(t *testing.T) {
	client := &scriptedClient{
		jsonResponses: []string{
			`{"name": "Jane Doe", "email": "jane@example.com", "skills": ["Go", "SQL"]}`,
			`{"title": "Backend Engineer", "required_skills": ["Go", "SQL"]}`,
			`{"relevant_years": 5.0, "seniority_fit": 1.0}`,
		},
		narrative: "Overall fit\nStrong match. Contact jane@example.com for details.",
	}
	runner := newRunner(client)

	state, err := runner.Run(context.Background(), "resume text", "jd text")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", state.ResumeFacts.Name)
	assert.Equal(t, "Backend Engineer", state.JDFacts.Title)
	assert.Equal(t, 1.0, state.Scores.Skills)
	assert.Equal(t, 1.0, state.Scores.Overall)

	// Narrative stays raw on the state; the cleaned variant is redacted.
	assert.Contains(t, state.Narrative, "jane@example.com")
	assert.NotContains(t, state.CleanedNarrative, "jane@example.com")
	assert.Contains(t, state.CleanedNarrative, guardrail.RedactedEmail)
}

func TestRun_StateCarriesInputs(t *testing.T) {
	runner := newRunner(nil)
	state, err := runner.Run(context.Background(), "resume body", "jd body")
	require.NoError(t, err)

	assert.Equal(t, "resume body", state.ResumeText)
	assert.Equal(t, "jd body", state.JDText)
}

func TestStageError(t *testing.T) {
	cause := errors.New("scores missing from state")
	err := &StageError{Stage: StageAssess, Err: cause}

	assert.Equal(t, `pipeline stage "assess" failed: scores missing from state`, err.Error())
	assert.True(t, errors.Is(err, cause))

	var stageErr *StageError
	require.True(t, errors.As(fmt.Errorf("run failed: %w", err), &stageErr))
	assert.Equal(t, StageAssess, stageErr.Stage)
}

func TestStageNamesInOrder(t *testing.T) {
	runner := newRunner(nil)

	names := make([]string, 0, len(runner.stages))
	for _, s := range runner.stages {
		names = append(names, s.name)
	}
	assert.Equal(t, []string{StageParse, StageScore, StageAssess, StageGuardrail}, names)
}
