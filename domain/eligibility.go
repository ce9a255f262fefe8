package domain

import (
	"strconv"
	"strings"
)

// Inventory is the set of item ids a player holds, supplied per call.
// The core never owns inventory state.
type Inventory map[string]struct{}

func NewInventory(itemIDs ...string) Inventory {
	inv := make(Inventory, len(itemIDs))
	for _, id := range itemIDs {
		inv[id] = struct{}{}
	}
	return inv
}

func (i Inventory) Has(itemID string) bool {
	_, ok := i[itemID]
	return ok
}

// IsAvailable decides whether option is visible to player.
// Usage cap, stat requirement and item requirement must all pass.
// Pure: no side effects, same inputs give the same answer.
func IsAvailable(option Option, player PlayerState, inventory Inventory) bool {
	if option.MaxUsesPerPlayer > 0 && player.UsageCount(option.ID) >= option.MaxUsesPerPlayer {
		return false
	}
	if !meetsStat(option.Requirement, player) {
		return false
	}
	if option.RequiredItemID != "" && !inventory.Has(option.RequiredItemID) {
		return false
	}
	return true
}

// AvailableOptions lists the eligible options leaving the player's current step.
func AvailableOptions(content ContentSnapshot, player PlayerState, inventory Inventory) []Option {
	if player.CurrentStepID == "" {
		return []Option{}
	}
	res := []Option{}
	for _, o := range content.OptionsFrom(player.CurrentStepID) {
		if IsAvailable(o, player, inventory) {
			res = append(res, o)
		}
	}
	return res
}

func meetsStat(req StatRequirement, player PlayerState) bool {
	if req.IsZero() || req.Operator == "" {
		return true
	}
	required, err := strconv.Atoi(strings.TrimSpace(req.Value))
	if err != nil {
		return true
	}
	actual := player.StatInt(req.Stat)
	switch strings.TrimSpace(req.Operator) {
	case ">":
		return actual > required
	case ">=":
		return actual >= required
	case "<":
		return actual < required
	case "<=":
		return actual <= required
	case "=", "==":
		return actual == required
	default:
		return true
	}
}
