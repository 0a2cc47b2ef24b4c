package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (
	id, user_id, answer_text, source, elapsed_seconds,
	grammar_score, fluency_score, vocabulary_score, result, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	resultPayload, err := marshalJSONB(assessment.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.AnswerText,
		assessment.Source,
		assessment.ElapsedSeconds,
		assessment.GrammarScore,
		assessment.FluencyScore,
		assessment.VocabularyScore,
		resultPayload,
		assessment.CreatedAt,
	)
	return err
}

// GetByID returns an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, user_id, answer_text, source, elapsed_seconds,
       grammar_score, fluency_score, vocabulary_score, result, created_at
FROM assessments
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, assessmentID)
	assessment, err := scanAssessment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return assessment, nil
}

// ListByUser returns assessments for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, answer_text, source, elapsed_seconds,
       grammar_score, fluency_score, vocabulary_score, result, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := make([]Assessment, 0, limit)
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, assessment)
	}
	return assessments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var result sql.NullString
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.AnswerText,
		&a.Source,
		&a.ElapsedSeconds,
		&a.GrammarScore,
		&a.FluencyScore,
		&a.VocabularyScore,
		&result,
		&a.CreatedAt,
	)
	if err != nil {
		return Assessment{}, err
	}
	if result.Valid {
		a.Result = map[string]any{}
		if err := json.Unmarshal([]byte(result.String), &a.Result); err != nil {
			a.Result = nil
		}
	}
	return a, nil
}

func marshalJSONB(value map[string]any) (any, error) {
	if value == nil {
		return nil, nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}
