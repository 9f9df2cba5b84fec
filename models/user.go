package models

import "time"

// Roles mirror the marketplace sides: a locador lists spaces, a
// locatario rents them.
const (
	RoleAdmin     = "admin"
	RoleLocador   = "locador"
	RoleLocatario = "locatario"
	RoleUsuario   = "usuario"
)

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleLocador, RoleLocatario, RoleUsuario:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"size:120;not null" json:"name"`
	Surname      string `gorm:"size:120;not null" json:"surname"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:120;not null" json:"-"`
	Telephone    string `gorm:"size:32;not null" json:"telephone"`
	Role         string `gorm:"size:20;not null;default:'usuario'" json:"role"`
	CpfCnpj      string `gorm:"size:14" json:"cpfCnpj,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
