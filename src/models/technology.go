package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Risk levels for a technology.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Technology is an asset under audit. At most one questionnaire is linked
// through the questionnaire's technologyId; the database does not enforce
// exclusivity.
type Technology struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID   *primitive.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Name        string              `bson:"name" json:"name" validate:"required,max=100"`
	Version     string              `bson:"version" json:"version" validate:"required,max=50"`
	Vendor      string              `bson:"vendor,omitempty" json:"vendor,omitempty" validate:"max=100"`
	Category    string              `bson:"category" json:"category" validate:"required,max=50"`
	RiskLevel   string              `bson:"riskLevel" json:"riskLevel" validate:"required,oneof=low medium high critical"`
	Description string              `bson:"description,omitempty" json:"description,omitempty" validate:"max=1000"`
	CreatedAt   time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (t *Technology) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Version = strings.TrimSpace(t.Version)
	t.Vendor = strings.TrimSpace(t.Vendor)
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	if t.RiskLevel == "" {
		t.RiskLevel = RiskMedium
	}
}

func (t *Technology) Validate() ValidationErrors {
	return validateStruct(t)
}

func (t *Technology) FullName() string {
	return t.Name + " " + t.Version
}

// RiskScore maps the risk level onto a 1-4 scale.
func (t *Technology) RiskScore() int {
	scores := map[string]int{
		RiskLow:      1,
		RiskMedium:   2,
		RiskHigh:     3,
		RiskCritical: 4,
	}
	if s, ok := scores[t.RiskLevel]; ok {
		return s
	}
	return 2
}

func (t *Technology) IsHighRisk() bool {
	return t.RiskLevel == RiskHigh || t.RiskLevel == RiskCritical
}
