//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=../mocks/mock_content_repository.go -package=mocks
package repositories

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	errs "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IContentRepository interface {
	StoreCampaign(content domain.CampaignContent) error
	LoadSnapshot(campaignID string) (domain.ContentSnapshot, error)
	ListCampaigns() ([]domain.Campaign, error)
}

type ContentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewContentRepository(db *badger.DB, log *slog.Logger) *ContentRepository {
	return &ContentRepository{db: db, log: log}
}

func campaignKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s", campaignID)
}

// Rows are keyed by their authoring position so a prefix scan returns them in
// the order they were written: "step:{campaign_id}:{position_padded}".
func rowKey(kind, campaignID string, position int) string {
	return fmt.Sprintf("%s:%s:%06d", kind, campaignID, position)
}

func rowPrefix(kind, campaignID string) string {
	return fmt.Sprintf("%s:%s:", kind, campaignID)
}

// StoreCampaign replaces the whole content of a campaign in one transaction.
// Content failing referential checks is rejected before anything is written.
func (r *ContentRepository) StoreCampaign(content domain.CampaignContent) error {
	if _, err := content.Snapshot(); err != nil {
		return err
	}
	campaignID := content.Campaign.ID
	return r.db.Update(func(txn *badger.Txn) error {
		for _, kind := range []string{"step", "option", "outcome"} {
			if err := deletePrefix(txn, rowPrefix(kind, campaignID)); err != nil {
				return err
			}
		}
		if err := putJSON(txn, campaignKey(campaignID), content.Campaign); err != nil {
			return err
		}
		for i, s := range content.Steps {
			s.CampaignID = campaignID
			if err := putJSON(txn, rowKey("step", campaignID, i), s); err != nil {
				return err
			}
		}
		for i, o := range content.Options {
			if err := putJSON(txn, rowKey("option", campaignID, i), o); err != nil {
				return err
			}
		}
		for i, o := range content.Outcomes {
			if err := putJSON(txn, rowKey("outcome", campaignID, i), o); err != nil {
				return err
			}
		}
		r.log.Debug("Campaign stored", "campaign_id", campaignID,
			"steps", len(content.Steps), "options", len(content.Options), "outcomes", len(content.Outcomes))
		return nil
	})
}

// LoadSnapshot reads every row of a campaign and indexes it.
func (r *ContentRepository) LoadSnapshot(campaignID string) (domain.ContentSnapshot, error) {
	var content domain.CampaignContent
	err := r.db.View(func(txn *badger.Txn) error {
		campaign, err := getJSON[domain.Campaign](txn, campaignKey(campaignID))
		if errs.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrCampaignNotFound, campaignID)
		}
		if err != nil {
			return err
		}
		content.Campaign = campaign
		if content.Steps, err = scanJSON[domain.Step](txn, rowPrefix("step", campaignID)); err != nil {
			return err
		}
		if content.Options, err = scanJSON[domain.Option](txn, rowPrefix("option", campaignID)); err != nil {
			return err
		}
		content.Outcomes, err = scanJSON[domain.Outcome](txn, rowPrefix("outcome", campaignID))
		return err
	})
	if err != nil {
		return domain.ContentSnapshot{}, err
	}
	return content.Snapshot()
}

func (r *ContentRepository) ListCampaigns() ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		campaigns, err = scanJSON[domain.Campaign](txn, "campaign:")
		return err
	})
	return campaigns, err
}
