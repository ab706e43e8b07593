// Package pipeline provides the high-level orchestration of the assessment
// process: a fixed four-stage chain over an accumulating run state.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/assessment"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/extraction"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/guardrail"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/scoring"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// Stage names, in execution order. The chain is a straight line: no
// branching, no loop, no conditional skip, so every assessment receives
// identical treatment regardless of content.
const (
	StageParse     = "parse"
	StageScore     = "score"
	StageAssess    = "assess"
	StageGuardrail = "guardrail_and_save"
)

// StageError tags a pipeline-fatal failure with the stage that raised it.
// Only stage-internal contract violations reach this path; collaborator
// failures are absorbed inside the stages with defined neutral fallbacks.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stage is one transformation step in the chain. It reads earlier fields of
// the state and writes only its designated output fields.
type stage struct {
	name string
	run  func(ctx context.Context, state *types.State) error
}

// Deps holds the components backing each stage.
type Deps struct {
	Extractor *extraction.Extractor
	Engine    *scoring.Engine
	Generator *assessment.Generator
	Guardrail *guardrail.Stage
}

// Runner executes the four-stage assessment chain synchronously. One Runner
// may serve concurrent runs; each run owns its own State.
type Runner struct {
	deps   Deps
	stages []stage
	log    *zap.Logger
}

// NewRunner wires the fixed stage chain.
func NewRunner(deps Deps, log *zap.Logger) *Runner {
	r := &Runner{deps: deps, log: log}
	r.stages = []stage{
		{StageParse, r.runParse},
		{StageScore, r.runScore},
		{StageAssess, r.runAssess},
		{StageGuardrail, r.runGuardrail},
	}
	return r
}

// Run executes all stages strictly in order. A stage failure is
// pipeline-fatal: no retry, no partial result; the error carries the stage
// name.
func (r *Runner) Run(ctx context.Context, resumeText, jdText string) (*types.State, error) {
	state := types.NewState(resumeText, jdText)

	for _, s := range r.stages {
		r.log.Debug("running pipeline stage", zap.String("stage", s.name))
		if err := s.run(ctx, state); err != nil {
			r.log.Error("pipeline stage failed", zap.String("stage", s.name), zap.Error(err))
			return nil, &StageError{Stage: s.name, Err: err}
		}
	}

	r.log.Info("pipeline completed",
		zap.Float64("overall_score", state.Scores.Overall),
		zap.String("candidate", candidateName(state)))
	return state, nil
}

func (r *Runner) runParse(ctx context.Context, state *types.State) error {
	state.ResumeFacts = r.deps.Extractor.ResumeFacts(ctx, state.ResumeText)
	state.JDFacts = r.deps.Extractor.JDFacts(ctx, state.JDText)
	return nil
}

func (r *Runner) runScore(ctx context.Context, state *types.State) error {
	if state.ResumeFacts == nil || state.JDFacts == nil {
		return fmt.Errorf("structured facts missing from state")
	}
	scores := r.deps.Engine.Score(ctx, state.ResumeFacts, state.JDFacts)
	state.Scores = &scores
	return nil
}

func (r *Runner) runAssess(ctx context.Context, state *types.State) error {
	if state.Scores == nil {
		return fmt.Errorf("scores missing from state")
	}
	state.Narrative = r.deps.Generator.Generate(ctx, state.ResumeFacts, state.JDFacts, state.Scores)
	return nil
}

func (r *Runner) runGuardrail(ctx context.Context, state *types.State) error {
	if state.Scores == nil {
		return fmt.Errorf("scores missing from state")
	}
	r.deps.Guardrail.Apply(ctx, state)
	return nil
}

func candidateName(state *types.State) string {
	if state.ResumeFacts != nil && state.ResumeFacts.Name != "" {
		return state.ResumeFacts.Name
	}
	return "Unknown"
}
