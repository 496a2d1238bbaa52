package repository

import (
	"context"

	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
)

// AuditLogWithActor entrada de bitácora junto con nombre y rol del actor.
type AuditLogWithActor struct {
	entity.AuditLog
	ActorName string
	ActorRole string
}

// AuditLogRepository puerto de persistencia de la bitácora. Append-only:
// no expone Update ni Delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	// ListByCompany devuelve las entradas del tenant, más recientes primero.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*AuditLogWithActor, error)
}
