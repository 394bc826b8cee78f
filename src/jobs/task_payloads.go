package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeAuditOverdue = "audit:overdue"

type AuditPayload struct {
	AuditID string `json:"audit_id"`
}

func NewAuditOverdueTask(auditID string) (*asynq.Task, error) {
	payload, err := json.Marshal(AuditPayload{AuditID: auditID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAuditOverdue, payload), nil
}
