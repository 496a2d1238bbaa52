package dto

import "time"

// AuditLogResponse entrada de bitácora con el actor resuelto para presentación.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	UserName  string         `json:"user_name"`
	UserRole  string         `json:"user_role"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
