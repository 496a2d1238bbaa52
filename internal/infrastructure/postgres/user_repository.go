package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CajaMenor-api/internal/domain"
	"github.com/jhoicas/CajaMenor-api/internal/domain/entity"
	"github.com/jhoicas/CajaMenor-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, company_id, email, password_hash, name, role, branch_id, status, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, email, password_hash, name, role, branch_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Name, user.Role,
		user.BranchID, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email (cualquier company, para login).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get user by email")
}

// GetByEmailAndCompany obtiene un usuario por email dentro de una empresa.
func (r *UserRepo) GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, email, companyID), "get user by email and company")
}

// GetByIDAndCompany obtiene un usuario por ID acotado a la empresa.
func (r *UserRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, companyID), "get user by id and company")
}

// ListByCompany lista usuarios por company con paginación.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
			&u.BranchID, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.BranchID, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
