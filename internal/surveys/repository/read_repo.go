package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

// PostgresReadRepository serves projections straight from the surveys table.
type PostgresReadRepository struct {
	db *sql.DB
}

// NewPostgresReadRepository creates a new PostgresReadRepository
func NewPostgresReadRepository(db *sql.DB) *PostgresReadRepository {
	return &PostgresReadRepository{db: db}
}

func (r *PostgresReadRepository) GetSurveyForAuthor(ctx context.Context, id, author string) (*domain.SurveyDocument, error) {
	query := `SELECT survey_data FROM surveys WHERE id = $1 AND author = $2`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, id, author).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to get survey: %w", err))
	}

	var doc domain.SurveyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to unmarshal survey: %w", err))
	}
	return &doc, nil
}

func (r *PostgresReadRepository) GetSurveysByAuthor(ctx context.Context, author string) (*domain.SurveyList, error) {
	query := `
		SELECT id, author, title, category
		FROM surveys
		WHERE author = $1
		ORDER BY created_on DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, author)
	if err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to list surveys: %w", err))
	}
	defer rows.Close()

	surveys := make([]domain.ListViewSurvey, 0, 16)
	for rows.Next() {
		var s domain.ListViewSurvey
		if err := rows.Scan(&s.ID, &s.Author, &s.Title, &s.Category); err != nil {
			return nil, domain.RepoFailure(fmt.Errorf("failed to scan survey: %w", err))
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.RepoFailure(err)
	}

	if len(surveys) == 0 {
		return nil, nil
	}
	return &domain.SurveyList{Surveys: surveys}, nil
}
