package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ClientRepository encapsulates client record persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]domain.Client, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetDisplayOrder(ctx context.Context, id string, order int) error
	Count(ctx context.Context) (int64, error)
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

const clientColumns = `id, name, website_url, logo, display_order, active, created_at, updated_at`

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, website_url, logo, display_order, active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.WebsiteURL,
		client.Logo,
		client.DisplayOrder,
		client.Active,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE clients SET name=$1, website_url=$2, logo=$3, display_order=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		client.Name,
		client.WebsiteURL,
		client.Logo,
		client.DisplayOrder,
		client.Active,
		client.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id=$1`, clientColumns)
	var client domain.Client
	if err := scanClient(r.pool.QueryRow(ctx, query, id), &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients`, clientColumns)
	if activeOnly {
		query += ` WHERE active=TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := scanClient(rows, &client); err != nil {
			return nil, err
		}
		result = append(result, client)
	}
	return result, rows.Err()
}

func (r *clientRepository) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE clients SET active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) SetDisplayOrder(ctx context.Context, id string, order int) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE clients SET display_order=$1, updated_at=NOW() WHERE id=$2`, order, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	return count, err
}

func scanClient(row pgx.Row, client *domain.Client) error {
	return row.Scan(
		&client.ID,
		&client.Name,
		&client.WebsiteURL,
		&client.Logo,
		&client.DisplayOrder,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
}
