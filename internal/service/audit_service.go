package service

import (
	"context"

	"cardsbackend/internal/repository"
)

type AuditLogResponse struct {
	ID           string `json:"id"`
	Action       string `json:"action"`
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	Details      string `json:"details"`
	CreatedAt    string `json:"createdAt"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context) ([]AuditLogResponse, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns every audit row, newest first.
func (s *auditService) GetAuditLogs(ctx context.Context) ([]AuditLogResponse, error) {
	logs, err := s.auditRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, AuditLogResponse{
			ID:           l.ID.String(),
			Action:       l.Action,
			ResourceID:   l.ResourceID,
			ResourceName: l.ResourceName,
			Details:      l.Details,
			CreatedAt:    l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, nil
}
