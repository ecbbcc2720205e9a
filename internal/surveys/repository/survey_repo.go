package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/survey-manager/survey-backend/internal/surveys/domain"
)

const uniqueViolation = "23505"

// PostgresSurveyRepository stores each survey aggregate as a JSONB document.
// The id, author, title and category columns duplicate document fields for
// querying.
type PostgresSurveyRepository struct {
	db *sql.DB
}

// NewPostgresSurveyRepository creates a new PostgresSurveyRepository
func NewPostgresSurveyRepository(db *sql.DB) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{db: db}
}

func (r *PostgresSurveyRepository) Insert(ctx context.Context, s *domain.Survey) (string, bool, error) {
	query := `
		INSERT INTO surveys (id, version, author, title, category, created_on, survey_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	data, err := json.Marshal(s.Document())
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal survey: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		s.ID(),
		int64(s.Version()),
		s.Author().String(),
		s.Title().String(),
		s.Category().String(),
		s.CreatedOn(),
		string(data),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", false, nil
		}
		return "", false, domain.RepoFailure(fmt.Errorf("failed to insert survey: %w", err))
	}

	s.MarkPersisted()
	return s.ID(), true, nil
}

func (r *PostgresSurveyRepository) Get(ctx context.Context, id string) (*domain.Survey, error) {
	query := `SELECT survey_data FROM surveys WHERE id = $1`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to get survey: %w", err))
	}

	return decodeSurvey(data)
}

func (r *PostgresSurveyRepository) GetPaged(ctx context.Context, pageNum, pageSize int) ([]*domain.Survey, error) {
	lower, upper, err := (&domain.PageConfig{PageNum: pageNum, PageSize: pageSize}).Bounds()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT survey_data
		FROM surveys
		ORDER BY created_on, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, upper-lower, lower)
	if err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to list surveys: %w", err))
	}
	defer rows.Close()

	out := make([]*domain.Survey, 0, pageSize)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, domain.RepoFailure(fmt.Errorf("failed to scan survey: %w", err))
		}
		s, err := decodeSurvey(data)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.RepoFailure(err)
	}
	return out, nil
}

// Update writes the survey only if the stored row is still at the version
// the aggregate was loaded at; a concurrent writer makes it match no row.
func (r *PostgresSurveyRepository) Update(ctx context.Context, s *domain.Survey) (string, bool, error) {
	query := `
		UPDATE surveys
		SET version = $2, title = $3, category = $4, survey_data = $5
		WHERE id = $1 AND version = $6
	`

	data, err := json.Marshal(s.Document())
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal survey: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query,
		s.ID(),
		int64(s.Version()),
		s.Title().String(),
		s.Category().String(),
		string(data),
		int64(s.StoredVersion()),
	)
	if err != nil {
		return "", false, domain.RepoFailure(fmt.Errorf("failed to update survey: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, domain.RepoFailure(err)
	}
	if n == 0 {
		return "", false, nil
	}

	s.MarkPersisted()
	return s.ID(), true, nil
}

func (r *PostgresSurveyRepository) Remove(ctx context.Context, id string) (string, bool, error) {
	query := `DELETE FROM surveys WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return "", false, domain.RepoFailure(fmt.Errorf("failed to remove survey: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, domain.RepoFailure(err)
	}
	if n == 0 {
		return "", false, nil
	}
	return id, true, nil
}

func decodeSurvey(data []byte) (*domain.Survey, error) {
	var doc domain.SurveyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("failed to unmarshal survey: %w", err))
	}
	s, err := domain.SurveyFromDocument(doc)
	if err != nil {
		return nil, domain.RepoFailure(fmt.Errorf("corrupt survey row: %w", err))
	}
	return s, nil
}

// isUniqueViolation recognises duplicate keys from either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
