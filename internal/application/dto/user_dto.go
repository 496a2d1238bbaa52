package dto

import "time"

// RegisterRequest entrada para registro (auth): email, password, company_id.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"omitempty,max=200"`
	Role      string `json:"role" validate:"omitempty,oneof=OWNER ACCOUNTANT EMPLOYEE"`
	BranchID  string `json:"branch_id" validate:"omitempty,uuid"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	BranchID  *string   `json:"branch_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y perfil público del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
