package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// TeamRepository encapsulates team member persistence.
type TeamRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetDisplayOrder(ctx context.Context, id string, order int) error
	Count(ctx context.Context) (int64, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository returns a Postgres-backed implementation.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

const teamColumns = `id, name, role, bio, avatar, linkedin_url, display_order, active, created_at, updated_at`

func (r *teamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (name, role, bio, avatar, linkedin_url, display_order, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		member.Name,
		member.Role,
		member.Bio,
		member.Avatar,
		member.LinkedInURL,
		member.DisplayOrder,
		member.Active,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *teamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        UPDATE team_members SET name=$1, role=$2, bio=$3, avatar=$4, linkedin_url=$5,
            display_order=$6, active=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Role,
		member.Bio,
		member.Avatar,
		member.LinkedInURL,
		member.DisplayOrder,
		member.Active,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members WHERE id=$1`, teamColumns)
	var member domain.TeamMember
	if err := scanTeamMember(r.pool.QueryRow(ctx, query, id), &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) List(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	query := fmt.Sprintf(`SELECT %s FROM team_members`, teamColumns)
	if activeOnly {
		query += ` WHERE active=TRUE`
	}
	query += ` ORDER BY display_order ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := scanTeamMember(rows, &member); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *teamRepository) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE team_members SET active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) SetDisplayOrder(ctx context.Context, id string, order int) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE team_members SET display_order=$1, updated_at=NOW() WHERE id=$2`, order, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)
	return count, err
}

func scanTeamMember(row pgx.Row, member *domain.TeamMember) error {
	return row.Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.Bio,
		&member.Avatar,
		&member.LinkedInURL,
		&member.DisplayOrder,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
}
