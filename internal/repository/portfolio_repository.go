package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// PortfolioFilter captures public listing parameters.
type PortfolioFilter struct {
	Category *string
	Featured *bool
	Limit    int
	Offset   int
}

// PortfolioRepository encapsulates portfolio project persistence.
type PortfolioRepository interface {
	Create(ctx context.Context, project *domain.Portfolio) error
	Update(ctx context.Context, project *domain.Portfolio) error
	GetByID(ctx context.Context, id string) (*domain.Portfolio, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Portfolio, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PortfolioFilter) ([]domain.Portfolio, error)
	IncrementViews(ctx context.Context, id string) error
	CountByCategory(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
}

type portfolioRepository struct {
	pool *pgxpool.Pool
}

// NewPortfolioRepository returns a Postgres-backed implementation.
func NewPortfolioRepository(pool *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepository{pool: pool}
}

const portfolioColumns = `id, title, slug, category, description, client_name, project_url,
       images, featured, view_count, created_at, updated_at`

func (r *portfolioRepository) Create(ctx context.Context, project *domain.Portfolio) error {
	const query = `
        INSERT INTO portfolio_projects (title, slug, category, description, client_name, project_url, images, featured)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		project.Title,
		project.Slug,
		project.Category,
		project.Description,
		project.ClientName,
		project.ProjectURL,
		project.Images,
		project.Featured,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *portfolioRepository) Update(ctx context.Context, project *domain.Portfolio) error {
	const query = `
        UPDATE portfolio_projects SET title=$1, slug=$2, category=$3, description=$4, client_name=$5,
            project_url=$6, images=$7, featured=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		project.Title,
		project.Slug,
		project.Category,
		project.Description,
		project.ClientName,
		project.ProjectURL,
		project.Images,
		project.Featured,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id string) (*domain.Portfolio, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolio_projects WHERE id=$1`, portfolioColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *portfolioRepository) GetBySlug(ctx context.Context, slug string) (*domain.Portfolio, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolio_projects WHERE slug=$1`, portfolioColumns)
	return r.fetchSingle(ctx, query, slug)
}

func (r *portfolioRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Portfolio, error) {
	var project domain.Portfolio
	if err := scanPortfolio(r.pool.QueryRow(ctx, query, arg), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM portfolio_projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) List(ctx context.Context, filter PortfolioFilter) ([]domain.Portfolio, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Category != nil && *filter.Category != "" {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
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

	query := fmt.Sprintf(`SELECT %s FROM portfolio_projects WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		portfolioColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Portfolio
	for rows.Next() {
		var project domain.Portfolio
		if err := scanPortfolio(rows, &project); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}

func (r *portfolioRepository) IncrementViews(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE portfolio_projects SET view_count=view_count+1 WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *portfolioRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COUNT(*) FROM portfolio_projects GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		result[category] = count
	}
	return result, rows.Err()
}

func (r *portfolioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio_projects`).Scan(&count)
	return count, err
}

func scanPortfolio(row pgx.Row, project *domain.Portfolio) error {
	return row.Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.Category,
		&project.Description,
		&project.ClientName,
		&project.ProjectURL,
		&project.Images,
		&project.Featured,
		&project.ViewCount,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
}
