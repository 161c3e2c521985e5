package models

import "time"

// Staff roles.
const (
	RoleAdmin     = "admin"
	RoleVaporista = "vaporista"
)

// StaffUser is a dashboard account. Vaporistas are tied to a home branch and
// may only mutate stock there; admins manage everything.
type StaffUser struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name" json:"fullName,omitempty"`
	Role         string     `db:"role" json:"role"`
	BranchID     *string    `db:"branch_id" json:"branchId,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}
