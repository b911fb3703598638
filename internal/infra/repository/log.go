package repository

import (
	"context"
	"encoding/json"
	"time"

	"careops/internal/domain/automation"
	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LogRepository struct {
	pool *pgxpool.Pool
}

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{pool: pool}
}

func (r *LogRepository) Append(ctx context.Context, entry *automation.LogEntry) error {
	payload, err := json.Marshal(entry.TriggerPayload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode trigger payload", err)
	}
	result, err := json.Marshal(entry.ActionResult)
	if err != nil {
		return infra.WrapRepoErr("failed to encode action result", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO automation_logs (id, rule_id, tenant_id, status, trigger_payload, action_result, error, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.RuleID, entry.TenantID, string(entry.Status),
		payload, result, entry.Error, entry.ExecutedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert automation log", err)
	}
	return nil
}

// FindStaleFormDistributions returns successful form-distribution logs older
// than the cutoff that have not had a reminder sent yet. The reminder marker
// lives inside action_result so no schema change is needed per scan.
func (r *LogRepository) FindStaleFormDistributions(ctx context.Context, olderThan time.Time, limit int) ([]automation.LogEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, l.rule_id, l.tenant_id, l.status, l.trigger_payload, l.action_result, l.error, l.executed_at
		FROM automation_logs l
		JOIN automation_rules ar ON ar.id = l.rule_id
		WHERE ar.action = $1
		  AND l.status = $2
		  AND l.executed_at < $3
		  AND COALESCE((l.action_result->>'reminder_sent')::boolean, false) = false
		ORDER BY l.executed_at
		LIMIT $4`,
		automation.ActionDistributeForm.String(), string(automation.LogSuccess), olderThan, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query stale form distributions", err)
	}
	defer rows.Close()

	var entries []automation.LogEntry
	for rows.Next() {
		var (
			entry   automation.LogEntry
			status  string
			payload []byte
			result  []byte
		)
		err := rows.Scan(
			&entry.ID, &entry.RuleID, &entry.TenantID, &status,
			&payload, &result, &entry.Error, &entry.ExecutedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan automation log row", err)
		}
		entry.Status = automation.LogStatus(status)
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &entry.TriggerPayload); err != nil {
				return nil, infra.WrapRepoErr("failed to decode trigger payload", err)
			}
		}
		if len(result) > 0 {
			if err := json.Unmarshal(result, &entry.ActionResult); err != nil {
				return nil, infra.WrapRepoErr("failed to decode action result", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read automation log rows", err)
	}
	return entries, nil
}

func (r *LogRepository) MarkFormReminderSent(ctx context.Context, logID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE automation_logs
		SET action_result = COALESCE(action_result, '{}'::jsonb) || '{"reminder_sent": true}'::jsonb
		WHERE id = $1`,
		logID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark form reminder sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("automation log not found", nil, infra.KindNotFound)
	}
	return nil
}
