package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/db"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/ingest"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/pipeline"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// maxUploadBytes caps the multipart form size of an assess request.
const maxUploadBytes = 16 << 20

// disclaimer is appended to every assessment returned over HTTP.
const disclaimer = "\n\nDisclaimer: This assessment is AI-generated based only on the provided " +
	"resume and job description. Use human judgment for final hiring decisions."

// handleAssess runs one assessment. The request is multipart/form-data with
// a "resume_file" upload and either a "jd_text" or "jd_url" field.
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %v", err))
		return
	}

	req := types.AssessRequest{
		JDText: r.FormValue("jd_text"),
		JDURL:  r.FormValue("jd_url"),
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "jd_text or jd_url is required")
		return
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "resume_file is required")
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read resume file")
		return
	}
	if len(fileBytes) == 0 {
		s.writeError(w, http.StatusBadRequest, "empty resume file")
		return
	}

	resumeText, err := s.decoders.DecodeResume(fileBytes, header.Filename)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to decode resume: %v", err))
		return
	}

	jdText := req.JDText
	if jdText == "" {
		jdText, err = ingest.JDFromURL(r.Context(), req.JDURL)
		if err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("failed to ingest job description: %v", err))
			return
		}
	}

	state, err := s.runner.Run(r.Context(), resumeText, jdText)
	if err != nil {
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			s.log.Error("assessment failed", zap.String("stage", stageErr.Stage), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("assessment failed at stage %q", stageErr.Stage))
			return
		}
		s.log.Error("assessment failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	resp := types.AssessResponse{
		OverallScore:    state.Scores.Overall,
		SkillsScore:     state.Scores.Skills,
		ExperienceScore: state.Scores.Experience,
		SeniorityScore:  state.Scores.Seniority,
		AssessmentText:  state.CleanedNarrative + disclaimer,
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleListAssessments returns recent assessment records.
func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no assessment store configured")
		return
	}

	records, err := s.store.ListAssessments(r.Context(), 50)
	if err != nil {
		s.log.Error("failed to list assessments", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}
	if records == nil {
		records = []types.AssessmentRecord{}
	}
	s.writeJSON(w, http.StatusOK, records)
}

// handleGetAssessment returns one assessment record by ID.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no assessment store configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	rec, err := s.store.GetAssessment(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "assessment not found")
		return
	}
	if err != nil {
		s.log.Error("failed to load assessment", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
