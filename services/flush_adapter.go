package services

import (
	"campaign-lab/contract"
	"campaign-lab/domain"
	"campaign-lab/repositories"
	"context"
	"log/slog"

	"github.com/samber/lo"
)

var _ contract.FlushAdapter = (*StoreFlushAdapter)(nil)

// StoreFlushAdapter writes a session delta through the repositories. Every
// part is idempotent on replay: history rows and state changes keep the id
// they were recorded with, so a retried save overwrites its own rows.
type StoreFlushAdapter struct {
	log        *slog.Logger
	progress   repositories.IProgressRepository
	choices    repositories.IChoiceHistoryRepository
	changes    repositories.IChangeLogRepository
	characters repositories.ICharacterRepository
}

func NewStoreFlushAdapter(
	log *slog.Logger,
	progress repositories.IProgressRepository,
	choices repositories.IChoiceHistoryRepository,
	changes repositories.IChangeLogRepository,
	characters repositories.ICharacterRepository,
) *StoreFlushAdapter {
	return &StoreFlushAdapter{
		log:        log,
		progress:   progress,
		choices:    choices,
		changes:    changes,
		characters: characters,
	}
}

func (a *StoreFlushAdapter) Save(ctx context.Context, batch domain.SaveBatch) (domain.SaveResult, error) {
	var result domain.SaveResult
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if len(batch.PlayerProgress) > 0 {
		if err := a.progress.StoreSessionProgress(batch.PlayerProgress...); err != nil {
			return result, err
		}
		result.PlayerProgressCount = len(batch.PlayerProgress)
	}

	if len(batch.ChoiceHistory) > 0 {
		if err := a.choices.AppendChoices(batch.ChoiceHistory...); err != nil {
			return result, err
		}
		result.ChoiceHistoryCount = len(batch.ChoiceHistory)
	}

	for _, update := range batch.CharacterUpdates {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := a.changes.AppendChanges(batch.SessionID, update.Changes...); err != nil {
			return result, err
		}
		touched := lo.Uniq(lo.Map(update.Changes, func(c domain.StateChange, _ int) string { return c.Target }))
		if err := a.characters.UpdateStats(update.CharacterID, lo.PickByKeys(update.Stats, touched), batch.Cutoff); err != nil {
			return result, err
		}
		result.CharacterUpdateCount++
	}

	a.log.Debug("Session delta written",
		"session_id", batch.SessionID,
		"player_progress", result.PlayerProgressCount,
		"choice_history", result.ChoiceHistoryCount,
		"character_updates", result.CharacterUpdateCount,
	)
	return result, nil
}
