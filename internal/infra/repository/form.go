package repository

import (
	"context"

	"careops/internal/infra"
	"careops/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FormRepository struct {
	pool *pgxpool.Pool
}

func NewFormRepository(pool *pgxpool.Pool) *FormRepository {
	return &FormRepository{pool: pool}
}

func (r *FormRepository) ActiveForms(ctx context.Context, tenantID uuid.UUID, limit int) ([]commands.FormRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title
		FROM forms
		WHERE tenant_id = $1 AND is_active = true
		ORDER BY created_at
		LIMIT $2`,
		tenantID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active forms", err)
	}
	defer rows.Close()

	var forms []commands.FormRef
	for rows.Next() {
		var f commands.FormRef
		if err := rows.Scan(&f.ID, &f.Title); err != nil {
			return nil, infra.WrapRepoErr("failed to scan form row", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read form rows", err)
	}
	return forms, nil
}

func (r *FormRepository) HasSubmission(ctx context.Context, formID, contactID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM form_submissions
			WHERE form_id = $1 AND contact_id = $2
		)`,
		formID, contactID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check form submission", err)
	}
	return exists, nil
}
