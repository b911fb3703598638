package repository

import (
	"context"

	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConversationRepository struct {
	pool *pgxpool.Pool
}

func NewConversationRepository(pool *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{pool: pool}
}

// IsPaused reports whether any of the contact's conversations has automation
// paused. No conversation at all means not paused.
func (r *ConversationRepository) IsPaused(ctx context.Context, tenantID, contactID uuid.UUID) (bool, error) {
	var paused bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM conversations
			WHERE tenant_id = $1 AND contact_id = $2 AND automation_paused = true
		)`,
		tenantID, contactID,
	).Scan(&paused)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check conversation pause state", err)
	}
	return paused, nil
}

func (r *ConversationRepository) Pause(ctx context.Context, conversationID, tenantID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE conversations
		SET automation_paused = true, updated_at = now()
		WHERE id = $1 AND tenant_id = $2`,
		conversationID, tenantID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to pause conversation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("conversation not found", nil, infra.KindNotFound)
	}
	return nil
}
