package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

type StaffUserRepository struct {
	db *sqlx.DB
}

func NewStaffUserRepository(db *sqlx.DB) *StaffUserRepository {
	return &StaffUserRepository{db: db}
}

func (r *StaffUserRepository) GetByEmail(email string) (*models.StaffUser, error) {
	var user models.StaffUser
	err := r.db.Get(&user, `
		SELECT id, email, password_hash, full_name, role, branch_id, is_active, last_login_at, created_at, updated_at
		FROM staff_users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *StaffUserRepository) Create(user *models.StaffUser) error {
	query := `
		INSERT INTO staff_users (id, email, password_hash, full_name, role, branch_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(query, user.ID, user.Email, user.PasswordHash, user.FullName, user.Role, user.BranchID, user.IsActive).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *StaffUserRepository) TouchLastLogin(id string) error {
	_, err := r.db.Exec(`UPDATE staff_users SET last_login_at = NOW() WHERE id = $1`, id)
	return err
}
