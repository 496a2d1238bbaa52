package audit

import (
	"context"

	"github.com/jhoicas/CajaMenor-api/internal/application/dto"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

// AuditUseCase lectura de la bitácora del tenant. La escritura no pasa por
// aquí: cada caso de uso inserta su entrada dentro de su propia transacción.
type AuditUseCase struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve la bitácora de la empresa, más recientes primero, con el
// nombre y rol del actor resueltos para presentación.
func (uc *AuditUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) ([]*dto.AuditLogResponse, error) {
	page.DefaultPage()

	rows, err := uc.auditRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AuditLogResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.AuditLogResponse{
			ID:        row.ID,
			UserID:    row.UserID,
			UserName:  row.ActorName,
			UserRole:  row.ActorRole,
			Action:    row.Action,
			Entity:    row.Entity,
			Details:   row.Details,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
