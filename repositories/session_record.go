//go:generate go run go.uber.org/mock/mockgen -source=session_record.go -destination=../mocks/mock_session_record_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	errs "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type ISessionRecordRepository interface {
	StoreRecord(record domain.SessionRecord) error
	GetRecord(sessionID string) (domain.SessionRecord, error)
}

type SessionRecordRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRecordRepository(db *badger.DB, log *slog.Logger) *SessionRecordRepository {
	return &SessionRecordRepository{db: db, log: log}
}

func sessionRecordKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *SessionRecordRepository) StoreRecord(record domain.SessionRecord) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return putJSON(txn, sessionRecordKey(record.SessionID), record)
	})
}

func (r *SessionRecordRepository) GetRecord(sessionID string) (domain.SessionRecord, error) {
	var record domain.SessionRecord
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, err = getJSON[domain.SessionRecord](txn, sessionRecordKey(sessionID))
		if errs.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sessionID)
		}
		return err
	})
	return record, err
}
