package services

import (
	"campaign-lab/domain"
	"campaign-lab/repositories"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

var playTime = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

// tickingClock moves one second forward on every read.
func tickingClock() func() time.Time {
	var ticks atomic.Int64
	return func() time.Time {
		return playTime.Add(time.Duration(ticks.Add(1)) * time.Second)
	}
}

type store struct {
	content    *repositories.ContentRepository
	characters *repositories.CharacterRepository
	inventory  *repositories.InventoryRepository
	progress   *repositories.ProgressRepository
	history    *repositories.HistoryRepository
	records    *repositories.SessionRecordRepository
}

func newStore(t *testing.T) store {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := slog.Default()
	return store{
		content:    repositories.NewContentRepository(db, log),
		characters: repositories.NewCharacterRepository(db, log),
		inventory:  repositories.NewInventoryRepository(db, log),
		progress:   repositories.NewProgressRepository(db, log),
		history:    repositories.NewHistoryRepository(db, log),
		records:    repositories.NewSessionRecordRepository(db, log),
	}
}

// crypt is S0 (start) with O1 to S1 granting STR +5, O2 to S1 gated on
// STR >= 15, O3 gated on a key and capped at one use, and O4 ending the
// campaign from S1.
func crypt() domain.CampaignContent {
	return domain.CampaignContent{
		Campaign: domain.Campaign{ID: "crypt", Title: "The Crypt"},
		Steps: []domain.Step{
			{ID: "S0", Title: "Entrance", IsStarting: true},
			{ID: "S1", Title: "Hall"},
		},
		Options: []domain.Option{
			{ID: "O1", SourceStepID: "S0", TargetStepID: "S1", Text: "Lift the gate"},
			{ID: "O2", SourceStepID: "S1", TargetStepID: "S1", Text: "Break the wall",
				Requirement: domain.StatRequirement{Stat: "STR", Operator: ">=", Value: "15"}},
			{ID: "O3", SourceStepID: "S1", TargetStepID: "S1", Text: "Open the chest",
				RequiredItemID: "key", MaxUsesPerPlayer: 1},
			{ID: "O4", SourceStepID: "S1", Text: "Leave"},
		},
		Outcomes: []domain.Outcome{
			{ID: "OC1", TriggerOptionID: "O1", Kind: domain.ChangeStat, Target: "STR", Value: 5, Description: "You feel stronger"},
			{ID: "OC2", TriggerOptionID: "O3", Kind: domain.GainItem, Target: "gem", Value: 1},
		},
	}
}

func seed(t *testing.T, s store) {
	t.Helper()
	require.NoError(t, s.content.StoreCampaign(crypt()))
	require.NoError(t, s.characters.StoreCharacter(domain.Character{
		ID:    "hero",
		Name:  "Aria",
		Stats: map[string]string{"STR": "10", "HP": "5"},
	}))
	require.NoError(t, s.inventory.AddItems("hero", domain.Item{ID: "key"}))
}
