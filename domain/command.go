package domain

import (
	"time"
)

type StartCommand struct {
	CampaignID  string `json:"campaignId" validate:"required"`
	CharacterID string `json:"characterId" validate:"required"`
}

type ActionCommand struct {
	SessionID   string `json:"sessionId" validate:"required"`
	CharacterID string `json:"characterId" validate:"required"`
	Action      Action `json:"action"`
}

type SaveCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	Force     bool   `json:"force"`
}

type EndCommand struct {
	SessionID string `json:"sessionId" validate:"required"`
	Reason    string `json:"reason"`
}

// CacheStats reports how much content a new session holds in memory.
type CacheStats struct {
	StepsLoaded    int `json:"stepsLoaded"`
	OptionsLoaded  int `json:"optionsLoaded"`
	OutcomesLoaded int `json:"outcomesLoaded"`
}

type StartInfo struct {
	CreatedAt       time.Time  `json:"createdAt"`
	AutoSaveEnabled bool       `json:"autoSaveEnabled"`
	CacheStats      CacheStats `json:"cacheStats"`
}

type StartResult struct {
	SessionID   string       `json:"sessionId"`
	CampaignID  string       `json:"campaignId"`
	CharacterID string       `json:"characterId"`
	State       ActionResult `json:"state"`
	Info        StartInfo    `json:"startInfo"`
}

type PlayAction string

const (
	PlayStart    PlayAction = "start"
	PlayContinue PlayAction = "continue"
	PlayChoose   PlayAction = "choose"
)

// PlayCommand drives the store-backed play path, one request per step.
type PlayCommand struct {
	CharacterID string     `json:"characterId" validate:"required"`
	CampaignID  string     `json:"campaignId" validate:"required"`
	Action      PlayAction `json:"action" validate:"required,oneof=start continue choose"`
	StepID      string     `json:"stepId" validate:"required_if=Action choose"`
	OptionID    string     `json:"optionId" validate:"required_if=Action choose"`
}

type PlayState struct {
	CurrentStep      Step     `json:"currentStep"`
	AvailableOptions []Option `json:"availableOptions"`
	CompletedSteps   []string `json:"completedSteps"`
}

type ChooseResult struct {
	OptionText  string    `json:"optionText"`
	Outcomes    []Outcome `json:"outcomes"`
	Changes     []string  `json:"changes"`
	NextStep    *Step     `json:"nextStep"`
	NextOptions []Option  `json:"nextOptions"`
	Completed   bool      `json:"isCompleted"`
}
