package domain

import (
	"time"

	"github.com/samber/lo"
)

const StatChangeKind = "stat_change"

// StateChange is one attributed mutation of a player's sheet.
// CharacterID is a weak reference to the PlayerState.
type StateChange struct {
	ID          string    `json:"-"`
	CharacterID string    `json:"characterId"`
	Kind        string    `json:"type"`
	Target      string    `json:"target"`
	OldValue    int       `json:"oldValue"`
	NewValue    int       `json:"newValue"`
	At          time.Time `json:"timestamp"`
	Seq         uint64    `json:"-"`
}

// ActionRecord is the audit entry of one dispatched action, whatever its kind.
type ActionRecord struct {
	CharacterID string        `json:"characterId"`
	Action      Action        `json:"action"`
	At          time.Time     `json:"timestamp"`
	Result      *ActionResult `json:"result,omitempty"`
	Err         string        `json:"error,omitempty"`
}

// ChangeLog is append-only; ordering is insertion order.
type ChangeLog struct {
	Actions      []ActionRecord `json:"playerActions"`
	StateChanges []StateChange  `json:"stateChanges"`
}

func (l *ChangeLog) RecordAction(r ActionRecord) {
	l.Actions = append(l.Actions, r)
}

func (l *ChangeLog) RecordStateChange(c StateChange) {
	l.StateChanges = append(l.StateChanges, c)
}

// StateChangesSince returns the changes recorded after sequence seq.
func (l *ChangeLog) StateChangesSince(seq uint64) []StateChange {
	return lo.Filter(l.StateChanges, func(c StateChange, _ int) bool {
		return c.Seq > seq
	})
}

func (l *ChangeLog) ActionsBy(characterID string) int {
	return lo.CountBy(l.Actions, func(a ActionRecord) bool {
		return a.CharacterID == characterID
	})
}

func (l *ChangeLog) StateChangesBy(characterID string) int {
	return lo.CountBy(l.StateChanges, func(c StateChange) bool {
		return c.CharacterID == characterID
	})
}

// ChoicesSince returns the choices recorded after sequence seq.
// Sequence numbers are session-wide, so equal timestamps never hide a choice.
func ChoicesSince(choices []Choice, seq uint64) []Choice {
	return lo.Filter(choices, func(c Choice, _ int) bool {
		return c.Seq > seq
	})
}
