package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/ingest"
)

var (
	resumePath string
	jdPath     string
	jdURL      string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess a resume against a job description",
	Long: `Run the assessment pipeline once: extract structured facts, compute fit
scores, generate a grounded narrative and apply output guardrails.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringVar(&resumePath, "resume", "", "Path to the resume file (required)")
	assessCmd.Flags().StringVar(&jdPath, "jd", "", "Path to a job description text file")
	assessCmd.Flags().StringVar(&jdURL, "jd-url", "", "URL of a job description to fetch")
	_ = assessCmd.MarkFlagRequired("resume")
	assessCmd.MarkFlagsOneRequired("jd", "jd-url")
	assessCmd.MarkFlagsMutuallyExclusive("jd", "jd-url")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := buildApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	resumeBytes, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var decoders ingest.Decoders
	resumeText, err := decoders.DecodeResume(resumeBytes, filepath.Base(resumePath))
	if err != nil {
		return fmt.Errorf("failed to decode resume: %w", err)
	}

	var jdText string
	if jdURL != "" {
		jdText, err = ingest.JDFromURL(ctx, jdURL)
	} else {
		jdText, err = ingest.JDFromFile(jdPath)
	}
	if err != nil {
		return err
	}

	state, err := a.runner.Run(ctx, resumeText, jdText)
	if err != nil {
		return err
	}

	fmt.Printf("Scores:\n")
	fmt.Printf("  skills_score:     %.3f\n", state.Scores.Skills)
	fmt.Printf("  experience_score: %.3f\n", state.Scores.Experience)
	fmt.Printf("  seniority_score:  %.3f\n", state.Scores.Seniority)
	fmt.Printf("  overall_score:    %.3f\n", state.Scores.Overall)
	fmt.Printf("\n%s\n", state.CleanedNarrative)
	return nil
}
