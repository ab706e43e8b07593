// Package extraction turns unstructured resume and job description text into
// structured facts using LLM extraction with JSON Schema checking.
//
// Extraction never fails the pipeline: a missing capability, a malformed
// response or a schema violation all degrade to empty facts, which every
// downstream stage accepts.
package extraction

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/llm"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/prompts"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// Prompt inputs are capped before being embedded in the extraction prompt,
// independent of content.
const (
	maxResumePromptBytes = 4000
	maxJDPromptBytes     = 40000
)

// Extractor performs structured extraction through the text-generation
// capability. A nil client means the capability is absent.
type Extractor struct {
	client llm.Client
	log    *zap.Logger
}

// NewExtractor creates an Extractor. client may be nil.
func NewExtractor(client llm.Client, log *zap.Logger) *Extractor {
	return &Extractor{client: client, log: log}
}

// ResumeFacts extracts structured facts from raw resume text. On any failure
// it returns empty facts rather than an error.
func (e *Extractor) ResumeFacts(ctx context.Context, resumeText string) *types.ResumeFacts {
	facts := &types.ResumeFacts{}
	raw, ok := e.extract(ctx, "extract-resume-facts", map[string]string{
		"ResumeText": llm.Truncate(resumeText, maxResumePromptBytes),
	}, resumeFactsSchema)
	if !ok {
		return facts
	}
	if err := json.Unmarshal(raw, facts); err != nil {
		e.log.Warn("resume facts unmarshal failed", zap.Error(err))
		return &types.ResumeFacts{}
	}
	return facts
}

// JDFacts extracts structured requirements from a job description. On any
// failure it returns empty facts rather than an error.
func (e *Extractor) JDFacts(ctx context.Context, jdText string) *types.JDFacts {
	facts := &types.JDFacts{}
	raw, ok := e.extract(ctx, "extract-jd-facts", map[string]string{
		"JDText": llm.Truncate(jdText, maxJDPromptBytes),
	}, jdFactsSchema)
	if !ok {
		return facts
	}
	if err := json.Unmarshal(raw, facts); err != nil {
		e.log.Warn("jd facts unmarshal failed", zap.Error(err))
		return &types.JDFacts{}
	}
	return facts
}

// extract runs one extraction prompt and returns the schema-checked JSON
// payload. ok is false whenever the capability is absent or the response is
// unusable.
func (e *Extractor) extract(ctx context.Context, promptKey string, data map[string]string, schema string) ([]byte, bool) {
	if e.client == nil {
		e.log.Warn("extraction capability unavailable, proceeding with empty facts",
			zap.String("prompt", promptKey))
		return nil, false
	}

	template := prompts.MustGet("extraction.json", promptKey)
	prompt := prompts.Format(template, data)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		e.log.Warn("extraction call failed", zap.String("prompt", promptKey), zap.Error(err))
		return nil, false
	}

	raw := []byte(llm.CleanJSONBlock(responseText))
	if err := validateFacts(schema, raw); err != nil {
		e.log.Warn("extraction response rejected", zap.String("prompt", promptKey), zap.Error(err))
		return nil, false
	}

	return raw, true
}
