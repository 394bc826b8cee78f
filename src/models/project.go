package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
	ProjectCancelled = "cancelled"
)

// Project is a client engagement that audits are run against.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,max=100"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=1000"`
	Client      string             `bson:"client" json:"client" validate:"required,max=100"`
	Status      string             `bson:"status" json:"status" validate:"required,oneof=active completed on-hold cancelled"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (p *Project) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Client = strings.TrimSpace(p.Client)
	if p.Status == "" {
		p.Status = ProjectActive
	}
}

func (p *Project) Validate() ValidationErrors {
	return validateStruct(p)
}

func (p *Project) IsActive() bool {
	return p.Status == ProjectActive
}
