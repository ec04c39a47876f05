package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ApplicationFilter captures admin listing parameters.
type ApplicationFilter struct {
	JobID  *string
	Status *domain.ApplicationStatus
	Limit  int
	Offset int
}

// ApplicationRepository encapsulates job application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Application, error)
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, name, email, phone, cover_letter, cv, status, created_at, updated_at`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, name, email, phone, cover_letter, cv, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		application.JobID,
		application.Name,
		application.Email,
		application.Phone,
		application.CoverLetter,
		application.CV,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id=$1`, applicationColumns)
	var application domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, id), &application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		clauses = append(clauses, fmt.Sprintf("job_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM applications WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		applicationColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Application, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s FROM applications ORDER BY created_at DESC LIMIT %d`, applicationColumns, limit)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *applicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.ApplicationStatus]int64)
	for rows.Next() {
		var status domain.ApplicationStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result[status] = count
	}
	return result, rows.Err()
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id=$1`, jobID).Scan(&count)
	return count, err
}

func scanApplication(row pgx.Row, application *domain.Application) error {
	return row.Scan(
		&application.ID,
		&application.JobID,
		&application.Name,
		&application.Email,
		&application.Phone,
		&application.CoverLetter,
		&application.CV,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		var application domain.Application
		if err := scanApplication(rows, &application); err != nil {
			return nil, err
		}
		result = append(result, application)
	}
	return result, rows.Err()
}
