package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin   = "admin"
	RoleAuditor = "auditor"
)

// User is an authenticated operator. Password holds the bcrypt hash and is
// never serialized back to clients.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,contains=@,max=254"`
	Password  string             `bson:"password" json:"-"`
	FirstName string             `bson:"firstName" json:"firstName" validate:"required,max=100"`
	LastName  string             `bson:"lastName" json:"lastName" validate:"required,max=100"`
	Role      string             `bson:"role" json:"role" validate:"required,oneof=admin auditor"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	if u.Role == "" {
		u.Role = RoleAuditor
	}
}

func (u *User) Validate() ValidationErrors {
	return validateStruct(u)
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAccessAudit reports whether the user may participate in audits. With
// only two roles defined the role check is redundant for active users, but
// it keeps the rule explicit should more roles appear.
func (u *User) CanAccessAudit() bool {
	return u.IsActive && (u.Role == RoleAdmin || u.Role == RoleAuditor)
}

// RegisterRequest is the registration payload; the pre-hash password rule
// (≥6 characters) lives here because User only ever stores the hash.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,contains=@,max=254"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Role      string `json:"role" validate:"omitempty,oneof=admin auditor"`
}

func (r *RegisterRequest) Validate() ValidationErrors {
	return validateStruct(r)
}
