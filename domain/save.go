package domain

import "time"

// PlayerProgressRow is the per-player progress persisted on every flush.
type PlayerProgressRow struct {
	CharacterID   string    `json:"characterId"`
	CampaignID    string    `json:"campaignId"`
	CurrentStepID string    `json:"currentStepId"`
	SessionID     string    `json:"sessionId"`
	LastActionAt  time.Time `json:"lastActionAt"`
	Active        bool      `json:"isActive"`
}

// ChoiceRow is one choice appended to the durable history.
type ChoiceRow struct {
	ID          string    `json:"choiceId"`
	CharacterID string    `json:"characterId"`
	CampaignID  string    `json:"campaignId"`
	SessionID   string    `json:"sessionId"`
	StepID      string    `json:"stepId"`
	OptionID    string    `json:"optionId"`
	Result      string    `json:"result,omitempty"`
	At          time.Time `json:"timestamp"`
}

// CharacterUpdate groups the new state changes of one character with the
// sheet as it stands at snapshot time.
type CharacterUpdate struct {
	CharacterID string            `json:"characterId"`
	Stats       map[string]string `json:"updates"`
	Changes     []StateChange     `json:"changes"`
}

// SaveBatch is the delta handed to the flush adapter. It is a copy taken under
// the session lock; the adapter may take as long as it needs.
type SaveBatch struct {
	SessionID        string              `json:"sessionId"`
	CampaignID       string              `json:"campaignId"`
	Cutoff           time.Time           `json:"cutoff"`
	PlayerProgress   []PlayerProgressRow `json:"playerProgress"`
	ChoiceHistory    []ChoiceRow         `json:"choiceHistory"`
	CharacterUpdates []CharacterUpdate   `json:"characterUpdates"`
}

type SaveResult struct {
	PlayerProgressCount  int `json:"playerProgress"`
	ChoiceHistoryCount   int `json:"choiceHistory"`
	CharacterUpdateCount int `json:"characterUpdates"`
}

func (r SaveResult) Total() int {
	return r.PlayerProgressCount + r.ChoiceHistoryCount + r.CharacterUpdateCount
}

// SaveReport is returned by manual and forced saves.
type SaveReport struct {
	SessionID    string     `json:"sessionId"`
	SaveTime     time.Time  `json:"saveTime"`
	ChangesSaved int        `json:"changesSaved"`
	Breakdown    SaveResult `json:"breakdown"`
	Skipped      bool       `json:"skipped"`
}

type PlayerStats struct {
	CharacterID    string    `json:"characterId"`
	JoinTime       time.Time `json:"joinTime"`
	LastActionTime time.Time `json:"lastActionTime"`
	TotalChoices   int       `json:"totalChoices"`
	TotalActions   int       `json:"totalActions"`
	StateChanges   int       `json:"stateChanges"`
	CurrentStep    string    `json:"currentStep"`
	Active         bool      `json:"isActive"`
}

type SessionStats struct {
	SessionID         string        `json:"sessionId"`
	CampaignID        string        `json:"campaignId"`
	StartTime         time.Time     `json:"startTime"`
	EndTime           time.Time     `json:"endTime"`
	Duration          time.Duration `json:"duration"`
	TotalPlayers      int           `json:"totalPlayers"`
	TotalActions      int           `json:"totalActions"`
	TotalStateChanges int           `json:"totalStateChanges"`
	Players           []PlayerStats `json:"playersData"`
}

// AvgActionsPerPlayer rounds to the nearest integer; zero players yields zero.
func (s SessionStats) AvgActionsPerPlayer() int {
	if s.TotalPlayers == 0 {
		return 0
	}
	return (s.TotalActions + s.TotalPlayers/2) / s.TotalPlayers
}

// SessionRecord is the durable trace written when a session ends.
type SessionRecord struct {
	SessionID           string        `json:"sessionId"`
	CampaignID          string        `json:"campaignId"`
	StartedAt           time.Time     `json:"startedAt"`
	EndedAt             time.Time     `json:"endedAt"`
	Duration            time.Duration `json:"duration"`
	Players             int           `json:"players"`
	Actions             int           `json:"actions"`
	StateChanges        int           `json:"stateChanges"`
	AvgActionsPerPlayer int           `json:"avgActionsPerPlayer"`
	Reason              string        `json:"reason"`
}

func NewSessionRecord(stats SessionStats, reason string) SessionRecord {
	return SessionRecord{
		SessionID:           stats.SessionID,
		CampaignID:          stats.CampaignID,
		StartedAt:           stats.StartTime,
		EndedAt:             stats.EndTime,
		Duration:            stats.Duration,
		Players:             stats.TotalPlayers,
		Actions:             stats.TotalActions,
		StateChanges:        stats.TotalStateChanges,
		AvgActionsPerPlayer: stats.AvgActionsPerPlayer(),
		Reason:              reason,
	}
}

// EndReport is the outcome of a session teardown.
// FinalSaveError is set when the last flush failed; the session is gone anyway.
type EndReport struct {
	Stats          SessionStats `json:"stats"`
	Save           SaveReport   `json:"save"`
	FinalSaveError string       `json:"finalSaveError,omitempty"`
}
