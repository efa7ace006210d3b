// Package scheduler queues delayed background work through asynq. Its one
// job today is the lead follow-up email sent a few days after an estimate.
package scheduler

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeLeadFollowUp is the asynq task type for the delayed follow-up email.
const TypeLeadFollowUp = "lead:followup"

// FollowUpPayload is the task payload for a lead follow-up.
type FollowUpPayload struct {
	LeadID uuid.UUID `json:"leadId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// NewFollowUpTask builds the asynq task for a lead follow-up.
func NewFollowUpTask(leadID uuid.UUID, name, email string) (*asynq.Task, error) {
	payload, err := json.Marshal(FollowUpPayload{LeadID: leadID, Name: name, Email: email})
	if err != nil {
		return nil, fmt.Errorf("marshal follow-up payload: %w", err)
	}
	return asynq.NewTask(TypeLeadFollowUp, payload), nil
}
