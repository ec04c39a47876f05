package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// JobFilter captures listing parameters.
type JobFilter struct {
	ActiveOnly bool
	Type       *domain.JobType
	Location   *string
	Limit      int
	Offset     int
}

// JobRepository encapsulates job posting persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int64, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, title, slug, department, location, job_type, description, requirements,
       salary_range, active, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, slug, department, location, job_type, description, requirements, salary_range, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		job.Title,
		job.Slug,
		job.Department,
		job.Location,
		job.Type,
		job.Description,
		job.Requirements,
		job.SalaryRange,
		job.Active,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, slug=$2, department=$3, location=$4, job_type=$5, description=$6,
            requirements=$7, salary_range=$8, active=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Slug,
		job.Department,
		job.Location,
		job.Type,
		job.Description,
		job.Requirements,
		job.SalaryRange,
		job.Active,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id=$1`, jobColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *jobRepository) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE slug=$1`, jobColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *jobRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Job, error) {
	var job domain.Job
	if err := scanJob(r.pool.QueryRow(ctx, query, arg), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ActiveOnly {
		clauses = append(clauses, "active=TRUE")
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("job_type=$%d", len(args)))
	}
	if filter.Location != nil && *filter.Location != "" {
		args = append(args, "%"+strings.ToLower(*filter.Location)+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(location) LIKE $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		jobColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE jobs SET active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID,
		&job.Title,
		&job.Slug,
		&job.Department,
		&job.Location,
		&job.Type,
		&job.Description,
		&job.Requirements,
		&job.SalaryRange,
		&job.Active,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}
