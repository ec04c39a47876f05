package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// TestimonialFilter captures listing parameters.
type TestimonialFilter struct {
	ApprovedOnly bool
	Featured     *bool
	Limit        int
	Offset       int
}

// TestimonialRepository encapsulates testimonial persistence.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	Update(ctx context.Context, testimonial *domain.Testimonial) error
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Count(ctx context.Context) (int64, error)
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository returns a Postgres-backed implementation.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

const testimonialColumns = `id, author_name, company, quote, rating, approved, featured, created_at, updated_at`

func (r *testimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (author_name, company, quote, rating, approved, featured)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		testimonial.AuthorName,
		testimonial.Company,
		testimonial.Quote,
		testimonial.Rating,
		testimonial.Approved,
		testimonial.Featured,
	).Scan(&testimonial.ID, &testimonial.CreatedAt, &testimonial.UpdatedAt)
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *domain.Testimonial) error {
	const query = `
        UPDATE testimonials SET author_name=$1, company=$2, quote=$3, rating=$4, approved=$5,
            featured=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		testimonial.AuthorName,
		testimonial.Company,
		testimonial.Quote,
		testimonial.Rating,
		testimonial.Approved,
		testimonial.Featured,
		testimonial.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	query := fmt.Sprintf(`SELECT %s FROM testimonials WHERE id=$1`, testimonialColumns)
	var testimonial domain.Testimonial
	if err := scanTestimonial(r.pool.QueryRow(ctx, query, id), &testimonial); err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) List(ctx context.Context, filter TestimonialFilter) ([]domain.Testimonial, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ApprovedOnly {
		clauses = append(clauses, "approved=TRUE")
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("featured=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM testimonials WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		testimonialColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Testimonial
	for rows.Next() {
		var testimonial domain.Testimonial
		if err := scanTestimonial(rows, &testimonial); err != nil {
			return nil, err
		}
		result = append(result, testimonial)
	}
	return result, rows.Err()
}

func (r *testimonialRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE testimonials SET approved=$1, updated_at=NOW() WHERE id=$2`, approved, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE testimonials SET featured=$1, updated_at=NOW() WHERE id=$2`, featured, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *testimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials`).Scan(&count)
	return count, err
}

func scanTestimonial(row pgx.Row, testimonial *domain.Testimonial) error {
	return row.Scan(
		&testimonial.ID,
		&testimonial.AuthorName,
		&testimonial.Company,
		&testimonial.Quote,
		&testimonial.Rating,
		&testimonial.Approved,
		&testimonial.Featured,
		&testimonial.CreatedAt,
		&testimonial.UpdatedAt,
	)
}
