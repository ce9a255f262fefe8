package domain

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Choice records a player selecting OptionID while standing on StepID.
// Immutable once appended.
type Choice struct {
	ID       string    `json:"choiceId"`
	OptionID string    `json:"optionId"`
	StepID   string    `json:"stepId"`
	At       time.Time `json:"timestamp"`
	Seq      uint64    `json:"-"`
}

// PlayerState is the mutable progress of one joined character.
// CurrentStepID is empty once the campaign is finished (Completed is then set).
type PlayerState struct {
	CharacterID   string            `json:"characterId"`
	Stats         map[string]string `json:"character"`
	CurrentStepID string            `json:"currentStepId,omitempty"`
	Completed     bool              `json:"completed"`
	Choices       []Choice          `json:"choiceHistory"`
	JoinedAt      time.Time         `json:"joinedAt"`
	LastActionAt  time.Time         `json:"lastActionAt"`
	Active        bool              `json:"isActive"`
}

func NewPlayerState(characterID string, stats map[string]string, startStepID string, at time.Time) *PlayerState {
	return &PlayerState{
		CharacterID:   characterID,
		Stats:         maps.Clone(stats),
		CurrentStepID: startStepID,
		JoinedAt:      at,
		LastActionAt:  at,
		Active:        true,
	}
}

// StatInt reads a stat as an integer. Missing or non-numeric values yield 0.
func (p PlayerState) StatInt(name string) int {
	return ParseStat(p.Stats[name])
}

// UsageCount counts prior choices of optionID.
func (p PlayerState) UsageCount(optionID string) int {
	count := 0
	for _, c := range p.Choices {
		if c.OptionID == optionID {
			count++
		}
	}
	return count
}

// Clone returns a deep copy safe to hand out of the session lock.
func (p PlayerState) Clone() PlayerState {
	p.Stats = maps.Clone(p.Stats)
	p.Choices = slices.Clone(p.Choices)
	return p
}

// ParseStat coerces a sheet value to an integer, truncating decimals.
func ParseStat(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}
