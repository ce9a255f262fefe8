package domain

import (
	"strconv"
	"time"
)

// OutcomeHandler applies one outcome to player. The returned StateChange is
// recorded in the change log when ok is true.
type OutcomeHandler func(player *PlayerState, outcome Outcome, at time.Time) (change StateChange, ok bool)

// OutcomeHandlers maps an outcome kind to its handler. Kinds without a handler
// are skipped by the session.
type OutcomeHandlers map[OutcomeKind]OutcomeHandler

// DefaultOutcomeHandlers only knows CHANGE_STAT.
// GAIN_ITEM and LOSE_ITEM are authored but have no behavior in the cached path.
func DefaultOutcomeHandlers() OutcomeHandlers {
	return OutcomeHandlers{
		ChangeStat: ApplyStatChange,
	}
}

// ApplyStatChange adds outcome.Value to the target stat, flooring at zero.
func ApplyStatChange(player *PlayerState, outcome Outcome, at time.Time) (StateChange, bool) {
	if outcome.Target == "" {
		return StateChange{}, false
	}
	oldValue := player.StatInt(outcome.Target)
	newValue := FlooredAdd(oldValue, outcome.Value)
	if player.Stats == nil {
		player.Stats = make(map[string]string)
	}
	player.Stats[outcome.Target] = strconv.Itoa(newValue)
	return StateChange{
		CharacterID: player.CharacterID,
		Kind:        StatChangeKind,
		Target:      outcome.Target,
		OldValue:    oldValue,
		NewValue:    newValue,
		At:          at,
	}, true
}

func FlooredAdd(value, delta int) int {
	return max(0, value+delta)
}
