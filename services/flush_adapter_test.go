package services

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/mocks"
	"campaign-lab/observability"
	"campaign-lab/repositories"
	"campaign-lab/runtime"
	"campaign-lab/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleBatch() domain.SaveBatch {
	return domain.SaveBatch{
		SessionID:  "crypt-hero-1",
		CampaignID: "crypt",
		Cutoff:     playTime,
		PlayerProgress: []domain.PlayerProgressRow{
			{CharacterID: "hero", CampaignID: "crypt", CurrentStepID: "S1", SessionID: "crypt-hero-1", LastActionAt: playTime, Active: true},
		},
		ChoiceHistory: []domain.ChoiceRow{
			{ID: "c-1", CharacterID: "hero", CampaignID: "crypt", SessionID: "crypt-hero-1", StepID: "S0", OptionID: "O1", At: playTime},
		},
		CharacterUpdates: []domain.CharacterUpdate{{
			CharacterID: "hero",
			Stats:       map[string]string{"STR": "15", "HP": "7"},
			Changes: []domain.StateChange{
				{CharacterID: "hero", Kind: domain.StatChangeKind, Target: "STR", OldValue: 10, NewValue: 15, At: playTime},
			},
		}},
	}
}

func Test_Flush_Writes_Every_Part_Of_The_Delta(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	adapter := NewStoreFlushAdapter(slog.Default(), s.progress, s.history, s.history, s.characters)

	// When a delta is flushed
	result, err := adapter.Save(context.Background(), sampleBatch())

	// Then each part is counted and stored
	req.NoError(err)
	req.Equal(domain.SaveResult{PlayerProgressCount: 1, ChoiceHistoryCount: 1, CharacterUpdateCount: 1}, result)
	req.Equal(3, result.Total())

	rows, err := s.progress.ListSessionProgress("crypt-hero-1")
	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("S1", rows[0].CurrentStepID)

	choices, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Len(choices, 1)

	changes, err := s.history.ListChanges("hero")
	req.NoError(err)
	req.Len(changes, 1)
	req.Equal("crypt-hero-1", changes[0].SessionID)

	// Only the stats that changed in this delta are written back
	character, err := s.characters.GetCharacter("hero")
	req.NoError(err)
	req.Equal("15", character.Stats["STR"])
	req.Equal("5", character.Stats["HP"])
	req.True(playTime.Equal(character.UpdatedAt))
}

func Test_Flush_Empty_Delta(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	adapter := NewStoreFlushAdapter(slog.Default(), s.progress, s.history, s.history, s.characters)

	result, err := adapter.Save(context.Background(), domain.SaveBatch{SessionID: "s-1"})

	req.NoError(err)
	req.Zero(result.Total())
}

func Test_Flush_Stops_On_First_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s := newStore(t)
	choices := mocks.NewMockIChoiceHistoryRepository(ctrl)
	changes := mocks.NewMockIChangeLogRepository(ctrl)
	characters := mocks.NewMockICharacterRepository(ctrl)
	adapter := NewStoreFlushAdapter(slog.Default(), s.progress, choices, changes, characters)

	// Given a history store that refuses writes
	choices.EXPECT().AppendChoices(gomock.Any()).Return(fmt.Errorf("disk full"))
	changes.EXPECT().AppendChanges(gomock.Any(), gomock.Any()).Times(0)
	characters.EXPECT().UpdateStats(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When the delta is flushed
	result, err := adapter.Save(context.Background(), sampleBatch())

	// Then the error is returned with what was written so far
	req.Error(err)
	req.Equal(1, result.PlayerProgressCount)
	req.Zero(result.ChoiceHistoryCount)
}

func Test_Flush_Honors_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	adapter := NewStoreFlushAdapter(slog.Default(), s.progress, s.history, s.history, s.characters)
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := adapter.Save(ctx, sampleBatch())

	req.ErrorIs(err, context.DeadlineExceeded)
	rows, err := s.progress.ListSessionProgress("crypt-hero-1")
	req.NoError(err)
	req.Empty(rows)
}

// failingChanges rejects the first changelog write, after progress and
// history already landed.
type failingChanges struct {
	*repositories.HistoryRepository
	failures int
}

func (f *failingChanges) AppendChanges(sessionID string, changes ...domain.StateChange) error {
	if f.failures > 0 {
		f.failures--
		return fmt.Errorf("disk full")
	}
	return f.HistoryRepository.AppendChanges(sessionID, changes...)
}

func Test_Flush_Retry_After_Partial_Failure_Does_Not_Duplicate_History(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := newStore(t)
	seed(t, s)
	log := slog.Default()
	changes := &failingChanges{HistoryRepository: s.history, failures: 1}
	adapter := NewStoreFlushAdapter(log, s.progress, s.history, changes, s.characters)
	manager := runtime.NewManager(log, runtime.DefaultConfig(), adapter,
		workers.NewSupervisor(log, 0), observability.NewMonitoringManager(log))
	t.Cleanup(func() { manager.Shutdown(ctx) })

	// Given a player who made one choice
	req.NoError(manager.CreateSession(ctx, "crypt-hero-1", cryptSnapshot(t)))
	_, err := manager.Join("crypt-hero-1", "hero", map[string]string{"STR": "10", "HP": "5"})
	req.NoError(err)
	_, err = manager.Dispatch("crypt-hero-1", "hero", domain.Action{Type: domain.ChooseOption, OptionID: "O1"})
	req.NoError(err)

	// When the first save fails half way and the next one succeeds
	_, err = manager.Save(ctx, "crypt-hero-1", true)
	req.ErrorIs(err, errors.ErrSaveAdapterFailure)
	_, err = manager.Save(ctx, "crypt-hero-1", true)
	req.NoError(err)

	// Then the replayed rows overwrite the ones written by the failed attempt
	choices, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Len(choices, 1)
	req.Equal("O1", choices[0].OptionID)
	entries, err := s.history.ListChanges("hero")
	req.NoError(err)
	req.Len(entries, 1)
	character, err := s.characters.GetCharacter("hero")
	req.NoError(err)
	req.Equal("15", character.Stats["STR"])
}
