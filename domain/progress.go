package domain

import (
	"fmt"
	"time"
)

type ProgressStatus string

const (
	InProgress ProgressStatus = "IN_PROGRESS"
	Completed  ProgressStatus = "COMPLETED"
)

// Progress is the durable record of one character in one campaign for the
// direct-to-store play path. Version guards read-modify-write cycles.
type Progress struct {
	ID             string         `json:"progressId"`
	CharacterID    string         `json:"characterId"`
	CampaignID     string         `json:"campaignId"`
	SessionID      string         `json:"sessionId"`
	CurrentStepID  string         `json:"currentStepId"`
	CompletedSteps []string       `json:"completedSteps,omitempty"`
	StartedAt      time.Time      `json:"startedAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Version        int            `json:"version"`
	Status         ProgressStatus `json:"status"`
	CompletionRate float64        `json:"completionRate"`
}

// Advance returns the next version of p after a choice leading to nextStepID.
// priorChoices is the number of choices already recorded for the character.
func (p Progress) Advance(fromStepID, nextStepID string, priorChoices int, at time.Time) Progress {
	next := p
	next.CompletedSteps = append(append([]string(nil), p.CompletedSteps...), fromStepID)
	next.CurrentStepID = nextStepID
	next.UpdatedAt = at
	next.Version = p.Version + 1
	if nextStepID == "" {
		next.Status = Completed
		next.CompletionRate = 1.0
	} else {
		next.Status = InProgress
		next.CompletionRate = min(0.9, float64(priorChoices)*0.1)
	}
	return next
}

// ChangeSummary renders a stat change the way players see it, e.g. "STR +5 (10 → 15)".
func ChangeSummary(target string, delta, oldValue, newValue int) string {
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s %s%d (%d → %d)", target, sign, delta, oldValue, newValue)
}
