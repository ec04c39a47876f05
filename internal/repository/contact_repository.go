package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ContactFilter captures admin listing parameters.
type ContactFilter struct {
	Status     *domain.ContactStatus
	SearchTerm *string
	Limit      int
	Offset     int
}

// ContactRepository encapsulates contact inquiry persistence.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ContactFilter) ([]domain.Contact, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Contact, error)
	CountByStatus(ctx context.Context) (map[domain.ContactStatus]int64, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactColumns = `id, name, email, phone, subject, message, status, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (name, email, phone, subject, message, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Subject,
		contact.Message,
		contact.Status,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE id=$1`, contactColumns)
	var contact domain.Contact
	if err := scanContact(r.pool.QueryRow(ctx, query, id), &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	const query = `UPDATE contacts SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]domain.Contact, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(name) LIKE %s OR LOWER(email) LIKE %s OR LOWER(subject) LIKE %s)",
			placeholder, placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM contacts WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		contactColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactRepository) ListRecent(ctx context.Context, limit int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = 5
	}
	query := fmt.Sprintf(`SELECT %s FROM contacts ORDER BY created_at DESC LIMIT %d`, contactColumns, limit)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContacts(rows)
}

func (r *contactRepository) CountByStatus(ctx context.Context) (map[domain.ContactStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM contacts GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.ContactStatus]int64)
	for rows.Next() {
		var status domain.ContactStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		result[status] = count
	}
	return result, rows.Err()
}

func scanContact(row pgx.Row, contact *domain.Contact) error {
	return row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Subject,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
}

func collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	var result []domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := scanContact(rows, &contact); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}
