//go:generate go run go.uber.org/mock/mockgen -source=character.go -destination=../mocks/mock_character_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	errs "errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type ICharacterRepository interface {
	StoreCharacter(character domain.Character) error
	GetCharacter(characterID string) (domain.Character, error)
	UpdateStats(characterID string, stats map[string]string, at time.Time) error
}

type CharacterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCharacterRepository(db *badger.DB, log *slog.Logger) *CharacterRepository {
	return &CharacterRepository{db: db, log: log}
}

func characterKey(characterID string) string {
	return fmt.Sprintf("character:%s", characterID)
}

func (r *CharacterRepository) StoreCharacter(character domain.Character) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return putJSON(txn, characterKey(character.ID), character)
	})
}

func (r *CharacterRepository) GetCharacter(characterID string) (domain.Character, error) {
	var character domain.Character
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		character, err = getJSON[domain.Character](txn, characterKey(characterID))
		if errs.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrCharacterNotFound, characterID)
		}
		return err
	})
	return character, err
}

// UpdateStats merges stats into the stored sheet. Stats absent from the
// update keep their stored value.
func (r *CharacterRepository) UpdateStats(characterID string, stats map[string]string, at time.Time) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return mergeStats(txn, characterID, stats, at)
	})
	return mapConflict(err)
}

func mergeStats(txn *badger.Txn, characterID string, stats map[string]string, at time.Time) error {
	character, err := getJSON[domain.Character](txn, characterKey(characterID))
	if errs.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", errors.ErrCharacterNotFound, characterID)
	}
	if err != nil {
		return err
	}
	if character.Stats == nil {
		character.Stats = make(map[string]string, len(stats))
	}
	maps.Copy(character.Stats, stats)
	character.UpdatedAt = at
	return putJSON(txn, characterKey(characterID), character)
}
