package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// fakeClient returns a canned JSON response (or error) for every call.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) EmbedTexts(_ context.Context, _ []string) ([][]float32, error) {
	return nil, errors.New("not an embedder")
}

func (f *fakeClient) Close() error { return nil }

func TestSkillOverlap_EmptyJDSkills(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap([]string{"Python", "SQL"}, nil))
	assert.Equal(t, 0.0, SkillOverlap([]string{"Python"}, []string{}))
	assert.Equal(t, 0.0, SkillOverlap(nil, []string{"  ", ""}))
}

func TestSkillOverlap_CaseAndWhitespaceInsensitive(t *testing.T) {
	score := SkillOverlap(
		[]string{"  PYTHON ", "sql"},
		[]string{"python", " SQL  "},
	)
	assert.Equal(t, 1.0, score)
}

func TestSkillOverlap_OrderIndependent(t *testing.T) {
	a := SkillOverlap([]string{"Go", "Python", "SQL"}, []string{"SQL", "Go"})
	b := SkillOverlap([]string{"SQL", "Go", "Python"}, []string{"Go", "SQL"})
	assert.Equal(t, a, b)
}

func TestSkillOverlap_PartialMatch(t *testing.T) {
	score := SkillOverlap(
		[]string{"Python", "SQL", "FastAPI"},
		[]string{"Python", "FastAPI", "Docker"},
	)
	assert.InDelta(t, 2.0/3.0, score, 1e-9)
}

func TestScore_ExperienceCeiling(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{"at ceiling", `{"relevant_years": 5.0, "seniority_fit": 0.5}`, 1.0},
		{"above ceiling", `{"relevant_years": 12.0, "seniority_fit": 0.5}`, 1.0},
		{"half credit", `{"relevant_years": 2.5, "seniority_fit": 0.5}`, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(&fakeClient{response: tt.response}, zap.NewNop())
			scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})
			assert.Equal(t, tt.want, scores.Experience)
		})
	}
}

func TestScore_NeutralFallbackWhenClientNil(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())
	scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})

	assert.Equal(t, 0.0, scores.Experience) // relevant_years defaults to 0.0
	assert.Equal(t, 0.5, scores.Seniority)  // seniority_fit defaults to 0.5
	assert.Equal(t, 0.1, scores.Overall)    // 0.2 * 0.5
}

func TestScore_NeutralFallbackOnEstimatorError(t *testing.T) {
	engine := NewEngine(&fakeClient{err: errors.New("boom")}, zap.NewNop())
	scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})

	assert.Equal(t, 0.0, scores.Experience)
	assert.Equal(t, 0.5, scores.Seniority)
}

func TestScore_NeutralFallbackOnMalformedResponse(t *testing.T) {
	engine := NewEngine(&fakeClient{response: "not json at all"}, zap.NewNop())
	scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})

	assert.Equal(t, 0.0, scores.Experience)
	assert.Equal(t, 0.5, scores.Seniority)
}

func TestScore_MissingFieldsDefaultIndividually(t *testing.T) {
	engine := NewEngine(&fakeClient{response: `{"relevant_years": 5.0}`}, zap.NewNop())
	scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})

	assert.Equal(t, 1.0, scores.Experience)
	assert.Equal(t, 0.5, scores.Seniority)
}

func TestScore_OverallIsWeightedSum(t *testing.T) {
	engine := NewEngine(&fakeClient{response: `{"relevant_years": 4.0, "seniority_fit": 0.8}`}, zap.NewNop())
	resume := &types.ResumeFacts{Skills: []string{"Go", "SQL"}}
	jd := &types.JDFacts{RequiredSkills: []string{"Go", "SQL", "Kubernetes", "Docker"}}

	scores := engine.Score(context.Background(), resume, jd)

	require.Equal(t, 0.5, scores.Skills)
	require.Equal(t, 0.8, scores.Experience)
	require.Equal(t, 0.8, scores.Seniority)
	assert.InDelta(t, 0.5*0.5+0.3*0.8+0.2*0.8, scores.Overall, 1e-9)
}

func TestScore_SeniorityClampedBeforeCombination(t *testing.T) {
	engine := NewEngine(&fakeClient{response: `{"relevant_years": 0.0, "seniority_fit": 3.0}`}, zap.NewNop())
	scores := engine.Score(context.Background(), &types.ResumeFacts{}, &types.JDFacts{})

	assert.Equal(t, 1.0, scores.Seniority)
	assert.Equal(t, 0.2, scores.Overall)
}

func TestScore_EndToEndExample(t *testing.T) {
	// Resume skills [Python, SQL, FastAPI] vs JD required [Python, FastAPI,
	// Docker] with a full-credit estimate.
	engine := NewEngine(&fakeClient{response: `{"relevant_years": 5.0, "seniority_fit": 1.0}`}, zap.NewNop())
	resume := &types.ResumeFacts{Skills: []string{"Python", "SQL", "FastAPI"}}
	jd := &types.JDFacts{RequiredSkills: []string{"Python", "FastAPI", "Docker"}}

	scores := engine.Score(context.Background(), resume, jd)

	assert.Equal(t, 0.667, scores.Skills)
	assert.Equal(t, 1.0, scores.Experience)
	assert.Equal(t, 1.0, scores.Seniority)
	assert.Equal(t, 0.833, scores.Overall)
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.667, Round3(2.0/3.0))
	assert.Equal(t, 0.5, Round3(0.5))
	assert.Equal(t, 0.0, Round3(0.0001))
}
