// Package assessment generates the grounded narrative explanation of a
// score record.
package assessment

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/prompts"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// SentinelNarrative is returned when the text-generation capability is
// unavailable; the pipeline still completes with it.
const SentinelNarrative = "Assessment could not be generated (No API Key)."

// guidelineQuery is the fixed retrieval query used to ground every narrative.
const guidelineQuery = "resume evaluation best practices"

// guidelineCount is how many guideline passages are requested per narrative.
const guidelineCount = 4

// Retriever supplies guideline context for grounding.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) string
}

// Generator builds a grounded prompt from facts, scores and retrieved
// guidelines and obtains the narrative from the text-generation capability.
//
// The required section headings are asserted through the prompt only; the
// returned text is passed through unchecked.
type Generator struct {
	client    llm.Client
	retriever Retriever
	log       *zap.Logger
}

// NewGenerator creates a Generator. client may be nil; Generate then returns
// the sentinel narrative.
func NewGenerator(client llm.Client, retriever Retriever, log *zap.Logger) *Generator {
	return &Generator{client: client, retriever: retriever, log: log}
}

// Generate produces the narrative assessment. It never fails the pipeline: a
// missing or erroring capability resolves to the sentinel narrative.
func (g *Generator) Generate(ctx context.Context, resume *types.ResumeFacts, jd *types.JDFacts, scores *types.ScoreRecord) string {
	guidelines := ""
	if g.retriever != nil {
		guidelines = g.retriever.Retrieve(ctx, guidelineQuery, guidelineCount)
	}

	if g.client == nil {
		g.log.Warn("text-generation capability unavailable, returning sentinel narrative")
		return SentinelNarrative
	}

	resumeJSON, _ := json.Marshal(resume)
	jdJSON, _ := json.Marshal(jd)
	scoresJSON, _ := json.Marshal(scores)

	template := prompts.MustGet("assessment.json", "generate-assessment")
	prompt := prompts.Format(template, map[string]string{
		"ResumeFacts": string(resumeJSON),
		"JDFacts":     string(jdJSON),
		"Scores":      string(scoresJSON),
		"Guidelines":  guidelines,
	})

	narrative, err := g.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		g.log.Warn("narrative generation failed, returning sentinel narrative", zap.Error(err))
		return SentinelNarrative
	}
	return narrative
}
