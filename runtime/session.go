package runtime

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type SessionState int

const (
	Created SessionState = iota
	Active
	Terminated
)

func (s SessionState) String() string {
	switch s {
	case Created:
		return "CREATED"
	case Active:
		return "ACTIVE"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Session caches one campaign being played by one or more characters.
// mu serializes every read and write of the aggregate; saveMu serializes
// flushes so two saves never ship the same delta.
type Session struct {
	mu     sync.Mutex
	saveMu sync.Mutex

	id         string
	campaignID string
	content    domain.ContentSnapshot
	players    map[string]*domain.PlayerState
	joinOrder  []string
	changes    domain.ChangeLog

	createdAt    time.Time
	lastAccessAt time.Time
	lastSaveAt   time.Time

	needsSave bool
	// version increases on every successful save. It is exposed for
	// monitoring only; conflicts inside a process are prevented by mu.
	version int
	// isLocked is reserved for cross-process exclusion and never set today.
	isLocked bool
	state    SessionState

	// seq numbers every mutation; savedSeq is the last one covered by a
	// confirmed save.
	seq      uint64
	savedSeq uint64

	handlers domain.OutcomeHandlers
	now      func() time.Time
	log      *slog.Logger
}

func newSession(id string, content domain.ContentSnapshot, handlers domain.OutcomeHandlers,
	now func() time.Time, log *slog.Logger) *Session {
	at := now()
	return &Session{
		id:           id,
		campaignID:   content.CampaignID(),
		content:      content,
		players:      make(map[string]*domain.PlayerState),
		createdAt:    at,
		lastAccessAt: at,
		version:      1,
		state:        Created,
		handlers:     handlers,
		now:          now,
		log:          log.With("session_id", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) CampaignID() string {
	return s.campaignID
}

func (s *Session) Content() domain.ContentSnapshot {
	return s.content
}

// Join adds a character at the campaign's starting step.
// A character can only join once per session.
func (s *Session) Join(characterID string, stats map[string]string) (domain.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return domain.PlayerState{}, errors.ErrSessionTerminated
	}
	if _, ok := s.players[characterID]; ok {
		return domain.PlayerState{}, fmt.Errorf("%w: %s", errors.ErrPlayerAlreadyJoined, characterID)
	}
	start, err := s.content.StartingStep()
	if err != nil {
		return domain.PlayerState{}, fmt.Errorf("campaign %s: %w", s.campaignID, err)
	}

	at := s.now()
	player := domain.NewPlayerState(characterID, stats, start.ID, at)
	s.players[characterID] = player
	s.joinOrder = append(s.joinOrder, characterID)
	s.lastAccessAt = at
	s.state = Active
	s.markDirty()

	s.log.Info("Player joined session", "character_id", characterID, "step_id", start.ID)
	return player.Clone(), nil
}

// Dispatch applies one action for characterID. Every check runs before the
// first mutation, so a failed action leaves the session untouched.
func (s *Session) Dispatch(characterID string, action domain.Action) (domain.ActionResult, error) {
	if err := action.Validate(); err != nil {
		return domain.ActionResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return domain.ActionResult{}, errors.ErrSessionTerminated
	}
	player, ok := s.players[characterID]
	if !ok {
		return domain.ActionResult{}, fmt.Errorf("%w: %s", errors.ErrPlayerNotInSession, characterID)
	}

	at := s.now()
	s.lastAccessAt = at
	inventory := domain.NewInventory(action.Inventory...)

	var (
		result domain.ActionResult
		err    error
	)
	switch action.Type {
	case domain.ChooseOption:
		result, err = s.chooseOption(player, action.OptionID, inventory, at)
	case domain.GetCurrentState:
		result = s.currentState(player, inventory)
	}
	if err != nil {
		return domain.ActionResult{}, err
	}

	player.LastActionAt = at
	s.changes.RecordAction(domain.ActionRecord{
		CharacterID: characterID,
		Action:      action,
		At:          at,
		Result:      lo.ToPtr(result),
	})
	s.markDirty()
	return result, nil
}

// CurrentState is a read-only query; it only refreshes the liveness timestamp.
func (s *Session) CurrentState(characterID string, inventory domain.Inventory) (domain.ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Terminated {
		return domain.ActionResult{}, errors.ErrSessionTerminated
	}
	player, ok := s.players[characterID]
	if !ok {
		return domain.ActionResult{}, fmt.Errorf("%w: %s", errors.ErrPlayerNotInSession, characterID)
	}
	s.lastAccessAt = s.now()
	return s.currentState(player, inventory), nil
}

func (s *Session) chooseOption(player *domain.PlayerState, optionID string,
	inventory domain.Inventory, at time.Time) (domain.ActionResult, error) {
	option, ok := s.content.Option(optionID)
	if !ok {
		return domain.ActionResult{}, fmt.Errorf("%w: %s", errors.ErrOptionNotFound, optionID)
	}
	if player.CurrentStepID == "" || option.SourceStepID != player.CurrentStepID ||
		!domain.IsAvailable(option, *player, inventory) {
		return domain.ActionResult{}, fmt.Errorf("%w: %s", errors.ErrOptionNotAvailable, optionID)
	}

	seq := s.markDirty()
	player.Choices = append(player.Choices, domain.Choice{
		ID:       uuid.NewString(),
		OptionID: option.ID,
		StepID:   player.CurrentStepID,
		At:       at,
		Seq:      seq,
	})

	outcomes := s.content.OutcomesFor(option.ID)
	for _, outcome := range outcomes {
		handler, ok := s.handlers[outcome.Kind]
		if !ok {
			s.log.Debug("No handler for outcome kind, skipping", "outcome_id", outcome.ID, "kind", outcome.Kind)
			continue
		}
		change, ok := handler(player, outcome, at)
		if !ok {
			continue
		}
		change.ID = uuid.NewString()
		change.Seq = seq
		s.changes.RecordStateChange(change)
	}

	if option.TargetStepID != "" {
		player.CurrentStepID = option.TargetStepID
	} else {
		player.CurrentStepID = ""
		player.Completed = true
	}

	result := s.currentState(player, inventory)
	result.Character = nil
	result.Outcomes = lo.FilterMap(outcomes, func(o domain.Outcome, _ int) (string, bool) {
		return o.Description, o.Description != ""
	})
	return result, nil
}

func (s *Session) currentState(player *domain.PlayerState, inventory domain.Inventory) domain.ActionResult {
	result := domain.ActionResult{
		AvailableOptions: domain.AvailableOptions(s.content, *player, inventory),
		Character:        maps.Clone(player.Stats),
		Completed:        player.Completed,
		SessionInfo: domain.SessionInfo{
			SessionID:  s.id,
			CampaignID: s.campaignID,
			JoinedAt:   player.JoinedAt,
		},
	}
	if step, ok := s.content.Step(player.CurrentStepID); ok {
		result.CurrentStep = &step
	}
	return result
}

func (s *Session) markDirty() uint64 {
	s.seq++
	s.needsSave = true
	return s.seq
}

// delta copies everything not yet covered by a confirmed save.
// The returned sequence must be handed back to markSaved.
func (s *Session) delta() (domain.SaveBatch, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deltaLocked(), s.seq
}

func (s *Session) deltaLocked() domain.SaveBatch {
	batch := domain.SaveBatch{
		SessionID:        s.id,
		CampaignID:       s.campaignID,
		Cutoff:           s.now(),
		PlayerProgress:   []domain.PlayerProgressRow{},
		ChoiceHistory:    []domain.ChoiceRow{},
		CharacterUpdates: []domain.CharacterUpdate{},
	}

	changesByCharacter := lo.GroupBy(s.changes.StateChangesSince(s.savedSeq), func(c domain.StateChange) string {
		return c.CharacterID
	})

	for _, characterID := range s.joinOrder {
		player := s.players[characterID]
		batch.PlayerProgress = append(batch.PlayerProgress, domain.PlayerProgressRow{
			CharacterID:   characterID,
			CampaignID:    s.campaignID,
			CurrentStepID: player.CurrentStepID,
			SessionID:     s.id,
			LastActionAt:  player.LastActionAt,
			Active:        player.Active,
		})
		for _, c := range domain.ChoicesSince(player.Choices, s.savedSeq) {
			batch.ChoiceHistory = append(batch.ChoiceHistory, domain.ChoiceRow{
				ID:          c.ID,
				CharacterID: characterID,
				CampaignID:  s.campaignID,
				SessionID:   s.id,
				StepID:      c.StepID,
				OptionID:    c.OptionID,
				At:          c.At,
			})
		}
		if changes, ok := changesByCharacter[characterID]; ok {
			batch.CharacterUpdates = append(batch.CharacterUpdates, domain.CharacterUpdate{
				CharacterID: characterID,
				Stats:       maps.Clone(player.Stats),
				Changes:     changes,
			})
		}
	}
	return batch
}

// markSaved records a confirmed save covering mutations up to seq.
// needsSave is only cleared when nothing happened since the delta was taken.
func (s *Session) markSaved(seq uint64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedSeq = max(s.savedSeq, seq)
	s.lastSaveAt = at
	s.version++
	if s.seq == seq {
		s.needsSave = false
	}
}

// terminate freezes the session and returns its final delta.
func (s *Session) terminate() (domain.SaveBatch, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Terminated
	return s.deltaLocked(), s.seq
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccessAt = s.now()
}

func (s *Session) NeedsSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.needsSave
}

func (s *Session) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Session) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLocked
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) LastAccessAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccessAt
}

func (s *Session) LastSaveAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveAt
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// Player returns a copy of the character's state.
func (s *Session) Player(characterID string) (domain.PlayerState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[characterID]
	if !ok {
		return domain.PlayerState{}, false
	}
	return p.Clone(), true
}

// Stats summarizes the session up to at.
func (s *Session) Stats(at time.Time) domain.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.SessionStats{
		SessionID:         s.id,
		CampaignID:        s.campaignID,
		StartTime:         s.createdAt,
		EndTime:           at,
		Duration:          at.Sub(s.createdAt),
		TotalPlayers:      len(s.players),
		TotalActions:      len(s.changes.Actions),
		TotalStateChanges: len(s.changes.StateChanges),
		Players:           make([]domain.PlayerStats, 0, len(s.players)),
	}
	for _, characterID := range s.joinOrder {
		p := s.players[characterID]
		stats.Players = append(stats.Players, domain.PlayerStats{
			CharacterID:    characterID,
			JoinTime:       p.JoinedAt,
			LastActionTime: p.LastActionAt,
			TotalChoices:   len(p.Choices),
			TotalActions:   s.changes.ActionsBy(characterID),
			StateChanges:   s.changes.StateChangesBy(characterID),
			CurrentStep:    p.CurrentStepID,
			Active:         p.Active,
		})
	}
	return stats
}
