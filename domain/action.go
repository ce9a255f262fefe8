package domain

import (
	"campaign-lab/errors"
	"fmt"
	"time"
)

type ActionType string

const (
	ChooseOption    ActionType = "choose_option"
	GetCurrentState ActionType = "get_current_state"
)

// Action is a player's command against a session.
// Inventory carries the item ids the caller knows the player holds.
type Action struct {
	Type      ActionType `json:"type"`
	OptionID  string     `json:"optionId,omitempty"`
	Inventory []string   `json:"inventory,omitempty"`
}

func (a Action) Validate() error {
	switch a.Type {
	case ChooseOption:
		if a.OptionID == "" {
			return fmt.Errorf("%w: optionId", errors.ErrMissingFields)
		}
		return nil
	case GetCurrentState:
		return nil
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownAction, a.Type)
	}
}

type SessionInfo struct {
	SessionID  string    `json:"sessionId"`
	CampaignID string    `json:"campaignId"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// ActionResult is what a player sees after an action.
// CurrentStep is nil once the player has finished the campaign.
type ActionResult struct {
	CurrentStep      *Step             `json:"currentStep"`
	AvailableOptions []Option          `json:"availableOptions"`
	Outcomes         []string          `json:"outcomes,omitempty"`
	Character        map[string]string `json:"character,omitempty"`
	Completed        bool              `json:"isCompleted"`
	SessionInfo      SessionInfo       `json:"sessionInfo"`
}
