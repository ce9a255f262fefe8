//go:generate go run go.uber.org/mock/mockgen -source=inventory.go -destination=../mocks/mock_inventory_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IInventoryRepository interface {
	AddItems(characterID string, items ...domain.Item) error
	RemoveItem(characterID, itemID string) error
	ListItems(characterID string) ([]domain.Item, error)
	GetInventory(characterID string) (domain.Inventory, error)
}

type InventoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewInventoryRepository(db *badger.DB, log *slog.Logger) *InventoryRepository {
	return &InventoryRepository{db: db, log: log}
}

// One key per held item: "inventory:{character_id}:{item_id}".
func inventoryKey(characterID, itemID string) string {
	return fmt.Sprintf("inventory:%s:%s", characterID, itemID)
}

func inventoryPrefix(characterID string) string {
	return fmt.Sprintf("inventory:%s:", characterID)
}

func (r *InventoryRepository) AddItems(characterID string, items ...domain.Item) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, item := range items {
			if err := putJSON(txn, inventoryKey(characterID, item.ID), item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *InventoryRepository) RemoveItem(characterID, itemID string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(inventoryKey(characterID, itemID)))
	})
}

func (r *InventoryRepository) ListItems(characterID string) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		items, err = scanJSON[domain.Item](txn, inventoryPrefix(characterID))
		return err
	})
	return items, err
}

// GetInventory returns the set of held item ids, ready for eligibility checks.
func (r *InventoryRepository) GetInventory(characterID string) (domain.Inventory, error) {
	items, err := r.ListItems(characterID)
	if err != nil {
		return nil, err
	}
	return domain.NewInventory(lo.Map(items, func(item domain.Item, _ int) string {
		return item.ID
	})...), nil
}
