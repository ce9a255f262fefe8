//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=../mocks/mock_progress_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	errs "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IProgressRepository interface {
	Get(campaignID, characterID string) (domain.Progress, error)
	Create(progress domain.Progress) error
	CommitChoice(commit ChoiceCommit) error
	List(campaignID string) ([]domain.Progress, error)
	StoreSessionProgress(rows ...domain.PlayerProgressRow) error
	ListSessionProgress(sessionID string) ([]domain.PlayerProgressRow, error)
}

type ProgressRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProgressRepository(db *badger.DB, log *slog.Logger) *ProgressRepository {
	return &ProgressRepository{db: db, log: log}
}

func progressKey(campaignID, characterID string) string {
	return fmt.Sprintf("progress:%s:%s", campaignID, characterID)
}

func sessionProgressKey(sessionID, characterID string) string {
	return fmt.Sprintf("session_progress:%s:%s", sessionID, characterID)
}

func (r *ProgressRepository) Get(campaignID, characterID string) (domain.Progress, error) {
	var progress domain.Progress
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		progress, err = getJSON[domain.Progress](txn, progressKey(campaignID, characterID))
		if errs.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s/%s", errors.ErrProgressNotFound, campaignID, characterID)
		}
		return err
	})
	return progress, err
}

// Create writes the first version of a progress row.
// A row created concurrently by another request is a conflict.
func (r *ProgressRepository) Create(progress domain.Progress) error {
	key := progressKey(progress.CampaignID, progress.CharacterID)
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err == nil {
			return fmt.Errorf("%w: progress %s already exists", errors.ErrConcurrentModification, key)
		} else if !errs.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return putJSON(txn, key, progress)
	})
	return mapConflict(err)
}

// ChoiceCommit is every write of one direct-to-store choice.
// Stats are merged into the character sheet; nil leaves it untouched.
type ChoiceCommit struct {
	Progress        domain.Progress
	ExpectedVersion int
	Stats           map[string]string
	Choice          domain.ChoiceRow
	At              time.Time
}

// CommitChoice applies a choice in a single read-write transaction: the
// version check, the character update, the history row and the next progress
// version either all land or none does. Two transactions racing on the same
// row make badger report ErrConflict on commit, which is reported as the same
// concurrent modification.
func (r *ProgressRepository) CommitChoice(commit ChoiceCommit) error {
	key := progressKey(commit.Progress.CampaignID, commit.Progress.CharacterID)
	err := r.db.Update(func(txn *badger.Txn) error {
		current, err := getJSON[domain.Progress](txn, key)
		if errs.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrProgressNotFound, key)
		}
		if err != nil {
			return err
		}
		if current.Version != commit.ExpectedVersion {
			return fmt.Errorf("%w: expected version %d, found %d",
				errors.ErrConcurrentModification, commit.ExpectedVersion, current.Version)
		}
		if len(commit.Stats) > 0 {
			if err := mergeStats(txn, commit.Progress.CharacterID, commit.Stats, commit.At); err != nil {
				return err
			}
		}
		if err := putChoice(txn, commit.Choice); err != nil {
			return err
		}
		return putJSON(txn, key, commit.Progress)
	})
	return mapConflict(err)
}

func (r *ProgressRepository) List(campaignID string) ([]domain.Progress, error) {
	var rows []domain.Progress
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rows, err = scanJSON[domain.Progress](txn, fmt.Sprintf("progress:%s:", campaignID))
		return err
	})
	return rows, err
}

// StoreSessionProgress upserts one row per player of a cached session.
func (r *ProgressRepository) StoreSessionProgress(rows ...domain.PlayerProgressRow) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, row := range rows {
			if err := putJSON(txn, sessionProgressKey(row.SessionID, row.CharacterID), row); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProgressRepository) ListSessionProgress(sessionID string) ([]domain.PlayerProgressRow, error) {
	var rows []domain.PlayerProgressRow
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rows, err = scanJSON[domain.PlayerProgressRow](txn, fmt.Sprintf("session_progress:%s:", sessionID))
		return err
	})
	return rows, err
}

func mapConflict(err error) error {
	if errs.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", errors.ErrConcurrentModification, err)
	}
	return err
}
