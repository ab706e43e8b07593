package guardrail

import (
	"context"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// Saver is the storage collaborator. It accepts one immutable record per
// call.
type Saver interface {
	SaveAssessment(ctx context.Context, rec *types.AssessmentRecord) error
}

// Stage redacts the narrative and persists the full assessment record.
// Redaction runs unconditionally before persistence and before any value is
// returned to a caller. Persistence is best-effort: a write failure is
// logged, never surfaced, because the user-facing result must always be
// returned once generated.
type Stage struct {
	store Saver // may be nil when no storage is configured
	log   *zap.Logger
}

// NewStage creates a guardrail stage. store may be nil.
func NewStage(store Saver, log *zap.Logger) *Stage {
	return &Stage{store: store, log: log}
}

// Apply redacts state.Narrative into state.CleanedNarrative and persists the
// record. It returns the cleaned narrative.
func (s *Stage) Apply(ctx context.Context, state *types.State) string {
	state.CleanedNarrative = MaskPII(state.Narrative)

	rec := types.NewAssessmentRecord(state)
	if s.store == nil {
		s.log.Debug("no assessment store configured, skipping persistence")
		return state.CleanedNarrative
	}
	if err := s.store.SaveAssessment(ctx, rec); err != nil {
		s.log.Warn("failed to persist assessment record",
			zap.String("candidate", rec.CandidateName), zap.Error(err))
	}
	return state.CleanedNarrative
}
