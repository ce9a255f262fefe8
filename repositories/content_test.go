package repositories

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleContent() domain.CampaignContent {
	return domain.CampaignContent{
		Campaign: domain.Campaign{ID: "crypt", Title: "The Crypt", Status: "PUBLISHED"},
		Steps: []domain.Step{
			{ID: "S0", Title: "Entrance", IsStarting: true},
			{ID: "S1", Title: "Treasure room"},
		},
		Options: []domain.Option{
			{ID: "O2", SourceStepID: "S0", TargetStepID: "S1", Text: "Sneak"},
			{ID: "O1", SourceStepID: "S0", TargetStepID: "S1", Text: "Charge",
				Requirement: domain.StatRequirement{Stat: "STR", Operator: ">=", Value: "12"}},
		},
		Outcomes: []domain.Outcome{
			{ID: "OC1", TriggerOptionID: "O1", Kind: domain.ChangeStat, Target: "HP", Value: -2},
		},
	}
}

func Test_Store_And_Load_Campaign(t *testing.T) {
	req := require.New(t)
	repository := NewContentRepository(openTestDB(t), slog.Default())

	// Given a stored campaign
	req.NoError(repository.StoreCampaign(sampleContent()))

	// When its snapshot is loaded
	content, err := repository.LoadSnapshot("crypt")

	// Then rows come back in authoring order
	req.NoError(err)
	req.Equal("The Crypt", content.Campaign().Title)
	start, err := content.StartingStep()
	req.NoError(err)
	req.Equal("S0", start.ID)
	req.Equal("crypt", start.CampaignID)
	options := content.OptionsFrom("S0")
	req.Len(options, 2)
	req.Equal("O2", options[0].ID)
	req.Equal(">=", options[1].Requirement.Operator)
	req.Len(content.OutcomesFor("O1"), 1)

	campaigns, err := repository.ListCampaigns()
	req.NoError(err)
	req.Len(campaigns, 1)
}

func Test_Store_Campaign_Replaces_Previous_Rows(t *testing.T) {
	req := require.New(t)
	repository := NewContentRepository(openTestDB(t), slog.Default())
	req.NoError(repository.StoreCampaign(sampleContent()))

	// When the campaign is seeded again with fewer options
	content := sampleContent()
	content.Options = content.Options[:1]
	content.Outcomes = nil
	req.NoError(repository.StoreCampaign(content))

	// Then the old rows are gone
	snapshot, err := repository.LoadSnapshot("crypt")
	req.NoError(err)
	_, options, outcomes := snapshot.Counts()
	req.Equal(1, options)
	req.Zero(outcomes)
}

func Test_Store_Campaign_Rejects_Broken_Content(t *testing.T) {
	req := require.New(t)
	repository := NewContentRepository(openTestDB(t), slog.Default())
	content := sampleContent()
	content.Options[0].TargetStepID = "S9"

	err := repository.StoreCampaign(content)

	req.ErrorIs(err, errors.ErrInvalidContent)
	_, err = repository.LoadSnapshot("crypt")
	req.ErrorIs(err, errors.ErrCampaignNotFound)
}
