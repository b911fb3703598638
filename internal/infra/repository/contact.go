package repository

import (
	"context"

	"careops/internal/domain/booking"
	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) FindByID(ctx context.Context, id, tenantID uuid.UUID) (*booking.Contact, error) {
	var (
		c     booking.Contact
		email *string
		phone *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, phone
		FROM contacts
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	).Scan(&c.ID, &c.FullName, &email, &phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("contact not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contact", err)
	}

	if email != nil {
		c.Email = *email
	}
	if phone != nil {
		c.Phone = *phone
	}
	return &c, nil
}
