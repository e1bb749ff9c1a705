package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Privilege string

const (
	PrivilegeAdmin      Privilege = "admin"
	PrivilegeManager    Privilege = "manager"
	PrivilegeTechnician Privilege = "technician"
	PrivilegeReader     Privilege = "reader"
)

func (p Privilege) IsValid() bool {
	switch p {
	case PrivilegeAdmin, PrivilegeManager, PrivilegeTechnician, PrivilegeReader:
		return true
	}

	return false
}

func (p Privilege) String() string {
	return string(p)
}

// Principal is the authenticated identity of a request. CompanyID is the tenant boundary for everything it touches.
type Principal struct {
	UserID      uuid.UUID `json:"userId"`
	CompanyID   uuid.UUID `json:"companyId"`
	Privilege   Privilege `json:"privilege"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	CompanyName string    `json:"companyName"`
}

func (p Principal) IsAdmin() bool {
	return p.Privilege == PrivilegeAdmin
}

func (p Principal) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type User struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Privilege    Privilege `json:"privilege"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) Principal() Principal {
	return Principal{
		UserID:      u.ID,
		CompanyID:   u.CompanyID,
		Privilege:   u.Privilege,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Username:    u.Username,
		CompanyName: u.CompanyName,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AccessToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
