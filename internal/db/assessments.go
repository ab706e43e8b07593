package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// ErrNotFound is returned when an assessment record does not exist.
var ErrNotFound = errors.New("assessment not found")

// SaveAssessment inserts one immutable assessment record inside a
// transaction. Records are never updated afterwards.
func (db *DB) SaveAssessment(ctx context.Context, rec *types.AssessmentRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO assessments
		   (id, candidate_name, jd_title, skills_score, experience_score, seniority_score, overall_score, assessment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.CandidateName, rec.JDTitle,
		rec.SkillsScore, rec.ExperienceScore, rec.SeniorityScore, rec.OverallScore,
		rec.Assessment, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit assessment: %w", err)
	}
	return nil
}

// GetAssessment loads one assessment record by ID.
func (db *DB) GetAssessment(ctx context.Context, id uuid.UUID) (*types.AssessmentRecord, error) {
	rec := &types.AssessmentRecord{}
	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_name, jd_title, skills_score, experience_score, seniority_score, overall_score, assessment, created_at
		 FROM assessments WHERE id = $1`, id,
	).Scan(
		&rec.ID, &rec.CandidateName, &rec.JDTitle,
		&rec.SkillsScore, &rec.ExperienceScore, &rec.SeniorityScore, &rec.OverallScore,
		&rec.Assessment, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}
	return rec, nil
}

// ListAssessments returns the most recent assessment records, newest first.
func (db *DB) ListAssessments(ctx context.Context, limit int) ([]types.AssessmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, jd_title, skills_score, experience_score, seniority_score, overall_score, assessment, created_at
		 FROM assessments ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var records []types.AssessmentRecord
	for rows.Next() {
		var rec types.AssessmentRecord
		if err := rows.Scan(
			&rec.ID, &rec.CandidateName, &rec.JDTitle,
			&rec.SkillsScore, &rec.ExperienceScore, &rec.SeniorityScore, &rec.OverallScore,
			&rec.Assessment, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assessment row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}
	return records, nil
}
