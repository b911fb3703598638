package repository

import (
	"context"

	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InboxRepository mirrors outgoing automation email into the conversation
// inbox. It reuses an existing email conversation for the contact when one
// exists and creates one otherwise, then appends the outbound message.
type InboxRepository struct {
	pool *pgxpool.Pool
}

func NewInboxRepository(pool *pgxpool.Pool) *InboxRepository {
	return &InboxRepository{pool: pool}
}

func (r *InboxRepository) RecordOutgoing(ctx context.Context, tenantID uuid.UUID, contactEmail, contactName, subject, body string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin inbox transaction", err)
	}
	defer tx.Rollback(ctx)

	var contactID uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM contacts
		WHERE tenant_id = $1 AND email = $2`,
		tenantID, contactEmail,
	).Scan(&contactID)
	if err != nil {
		if err == pgx.ErrNoRows {
			contactID = uuid.New()
			_, err = tx.Exec(ctx, `
				INSERT INTO contacts (id, tenant_id, full_name, email, created_at, updated_at)
				VALUES ($1, $2, $3, $4, now(), now())`,
				contactID, tenantID, contactName, contactEmail,
			)
			if err != nil {
				return infra.WrapRepoErr("failed to create inbox contact", err)
			}
		} else {
			return infra.WrapRepoErr("failed to look up inbox contact", err)
		}
	}

	var conversationID uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM conversations
		WHERE tenant_id = $1 AND contact_id = $2 AND channel = 'email'
		ORDER BY updated_at DESC
		LIMIT 1`,
		tenantID, contactID,
	).Scan(&conversationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			conversationID = uuid.New()
			_, err = tx.Exec(ctx, `
				INSERT INTO conversations (id, tenant_id, contact_id, channel, automation_paused, created_at, updated_at)
				VALUES ($1, $2, $3, 'email', false, now(), now())`,
				conversationID, tenantID, contactID,
			)
			if err != nil {
				return infra.WrapRepoErr("failed to create inbox conversation", err)
			}
		} else {
			return infra.WrapRepoErr("failed to look up inbox conversation", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO messages (id, conversation_id, direction, subject, body, created_at)
		VALUES ($1, $2, 'outbound', $3, $4, now())`,
		uuid.New(), conversationID, subject, body,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record outgoing message", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE conversations SET updated_at = now() WHERE id = $1`,
		conversationID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to touch inbox conversation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit inbox transaction", err)
	}
	return nil
}
