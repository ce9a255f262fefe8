//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IChoiceHistoryRepository interface {
	AppendChoices(rows ...domain.ChoiceRow) error
	ListChoices(campaignID, characterID string) ([]domain.ChoiceRow, error)
}

type IChangeLogRepository interface {
	AppendChanges(sessionID string, changes ...domain.StateChange) error
	ListChanges(characterID string) ([]ChangeEntry, error)
}

// ChangeEntry is a stat change as kept in the character changelog.
type ChangeEntry struct {
	ID        string `json:"changeId"`
	SessionID string `json:"sessionId"`
	domain.StateChange
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// AppendChoices persists choices under
// "choice:{campaign_id}:{character_id}:{timestamp_padded}:{choice_id}"
// so a prefix scan returns a character's history in chronological order.
// A row written again with the same id and timestamp overwrites itself.
func (r *HistoryRepository) AppendChoices(rows ...domain.ChoiceRow) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, row := range rows {
			if err := putChoice(txn, row); err != nil {
				return err
			}
		}
		return nil
	})
}

func putChoice(txn *badger.Txn, row domain.ChoiceRow) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	key := fmt.Sprintf("choice:%s:%s:%019d:%s", row.CampaignID, row.CharacterID, row.At.UnixNano(), row.ID)
	return putJSON(txn, key, row)
}

func (r *HistoryRepository) ListChoices(campaignID, characterID string) ([]domain.ChoiceRow, error) {
	var rows []domain.ChoiceRow
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rows, err = scanJSON[domain.ChoiceRow](txn, fmt.Sprintf("choice:%s:%s:", campaignID, characterID))
		return err
	})
	return rows, err
}

// AppendChanges persists stat changes under
// "change:{character_id}:{timestamp_padded}:{change_id}". Changes carrying an
// id keep it, so a replayed save overwrites the same rows.
func (r *HistoryRepository) AppendChanges(sessionID string, changes ...domain.StateChange) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, change := range changes {
			entry := ChangeEntry{ID: change.ID, SessionID: sessionID, StateChange: change}
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			key := fmt.Sprintf("change:%s:%019d:%s", change.CharacterID, change.At.UnixNano(), entry.ID)
			if err := putJSON(txn, key, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *HistoryRepository) ListChanges(characterID string) ([]ChangeEntry, error) {
	var entries []ChangeEntry
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		entries, err = scanJSON[ChangeEntry](txn, fmt.Sprintf("change:%s:", characterID))
		return err
	})
	return entries, err
}
