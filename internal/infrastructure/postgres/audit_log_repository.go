package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta una entrada de bitácora. Details se persiste como JSONB.
func (r *AuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, company_id, user_id, action, entity, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.CompanyID, log.UserID, log.Action, log.Entity, log.Details, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByCompany devuelve las entradas del tenant, más recientes primero, con
// nombre y rol del actor resueltos.
func (r *AuditLogRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*repository.AuditLogWithActor, error) {
	query := `
		SELECT a.id, a.company_id, a.user_id, a.action, a.entity, a.details, a.created_at,
		       u.name, u.role
		FROM audit_logs a
		JOIN users u ON u.id = a.user_id
		WHERE a.company_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*repository.AuditLogWithActor
	for rows.Next() {
		var a repository.AuditLogWithActor
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.UserID, &a.Action, &a.Entity, &a.Details, &a.CreatedAt,
			&a.ActorName, &a.ActorRole,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
