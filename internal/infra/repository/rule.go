package repository

import (
	"context"
	"encoding/json"

	"careops/internal/domain/automation"
	"careops/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RuleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

func (r *RuleRepository) FindActiveByTrigger(ctx context.Context, tenantID uuid.UUID, trigger string) ([]automation.Rule, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, name, trigger, action, config, is_active, created_at, updated_at
		FROM automation_rules
		WHERE tenant_id = $1 AND trigger = $2 AND is_active = true
		ORDER BY created_at`,
		tenantID, trigger,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query automation rules", err)
	}
	defer rows.Close()

	var rules []automation.Rule
	for rows.Next() {
		var (
			rule   automation.Rule
			config []byte
		)
		err := rows.Scan(
			&rule.ID, &rule.TenantID, &rule.Name, &rule.Trigger, &rule.Action,
			&config, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan automation rule row", err)
		}
		if len(config) > 0 {
			if err := json.Unmarshal(config, &rule.Config); err != nil {
				return nil, infra.WrapRepoErr("failed to decode rule config", err)
			}
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read automation rule rows", err)
	}
	return rules, nil
}

func (r *RuleRepository) Create(ctx context.Context, rule *automation.Rule) error {
	config, err := json.Marshal(rule.Config)
	if err != nil {
		return infra.WrapRepoErr("failed to encode rule config", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO automation_rules (id, tenant_id, name, trigger, action, config, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		rule.ID, rule.TenantID, rule.Name, rule.Trigger, rule.Action, config, rule.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert automation rule", err)
	}
	return nil
}
