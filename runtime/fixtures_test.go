package runtime

import (
	"campaign-lab/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// crypt is a small campaign:
//
//	S0 (start) --O1--> S1 (terminal, no options)
//	S0 --O2 [INT > 50]--> S2
//	S0 --O3 [max 1, HP -999]--> S0
//	S0 --O4--> end
//	S0 --O5 [item key]--> S2
//	S2 --O6--> S1
func crypt(t *testing.T) domain.ContentSnapshot {
	t.Helper()
	content, err := domain.NewContentSnapshot(
		domain.Campaign{ID: "crypt", Title: "The Crypt"},
		[]domain.Step{
			{ID: "S0", CampaignID: "crypt", Title: "Entrance", IsStarting: true},
			{ID: "S1", CampaignID: "crypt", Title: "Treasure room"},
			{ID: "S2", CampaignID: "crypt", Title: "Library"},
		},
		[]domain.Option{
			{ID: "O1", SourceStepID: "S0", TargetStepID: "S1", Text: "Go down"},
			{ID: "O2", SourceStepID: "S0", TargetStepID: "S2", Text: "Read the runes",
				Requirement: domain.StatRequirement{Stat: "INT", Operator: ">", Value: "50"}},
			{ID: "O3", SourceStepID: "S0", TargetStepID: "S0", Text: "Pull the lever", MaxUsesPerPlayer: 1},
			{ID: "O4", SourceStepID: "S0", Text: "Leave"},
			{ID: "O5", SourceStepID: "S0", TargetStepID: "S2", Text: "Open the door", RequiredItemID: "key"},
			{ID: "O6", SourceStepID: "S2", TargetStepID: "S1", Text: "Take the stairs"},
		},
		[]domain.Outcome{
			{ID: "OC1", TriggerOptionID: "O1", Kind: domain.ChangeStat, Target: "STR", Value: 5, Description: "You feel stronger"},
			{ID: "OC2", TriggerOptionID: "O3", Kind: domain.ChangeStat, Target: "HP", Value: -999, Description: "A trap!"},
			{ID: "OC3", TriggerOptionID: "O4", Kind: domain.GainItem, Target: "gem", Value: 1, Description: "You pocket a gem"},
		},
	)
	require.NoError(t, err)
	return content
}

func heroStats() map[string]string {
	return map[string]string{"STR": "10", "INT": "50", "HP": "5"}
}

func optionIDs(options []domain.Option) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}
	return ids
}

func choose(optionID string) domain.Action {
	return domain.Action{Type: domain.ChooseOption, OptionID: optionID}
}
