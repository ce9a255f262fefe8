//go:generate go run go.uber.org/mock/mockgen -source=campaign_service.go -destination=../mocks/mock_campaign_service.go -package=mocks
package services

import (
	"campaign-lab/contract"
	"campaign-lab/domain"
	"campaign-lab/observability"
	"campaign-lab/repositories"
	"campaign-lab/runtime"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ICampaignService interface {
	Start(ctx context.Context, cmd domain.StartCommand) (domain.StartResult, error)
	Action(cmd domain.ActionCommand) (domain.ActionResult, error)
	State(sessionID, characterID string) (domain.ActionResult, error)
	Save(ctx context.Context, cmd domain.SaveCommand) (domain.SaveReport, error)
	End(ctx context.Context, cmd domain.EndCommand) (domain.EndReport, error)
	Stats() observability.MonitoringStats
}

// CampaignService is the cached play path: content is loaded once per session
// and every action goes through the session manager.
type CampaignService struct {
	log        *slog.Logger
	manager    contract.ISessionManager
	content    repositories.IContentRepository
	characters repositories.ICharacterRepository
	inventory  repositories.IInventoryRepository
	records    repositories.ISessionRecordRepository
	monitoring *observability.MonitoringManager
	now        func() time.Time
}

func NewCampaignService(
	log *slog.Logger,
	manager contract.ISessionManager,
	content repositories.IContentRepository,
	characters repositories.ICharacterRepository,
	inventory repositories.IInventoryRepository,
	records repositories.ISessionRecordRepository,
	monitoring *observability.MonitoringManager,
) ICampaignService {
	return &CampaignService{
		log:        log,
		manager:    manager,
		content:    content,
		characters: characters,
		inventory:  inventory,
		records:    records,
		monitoring: monitoring,
		now:        time.Now,
	}
}

// NewSessionID builds "<campaignId>-<characterId>-<uuid>".
func NewSessionID(campaignID, characterID string) string {
	return fmt.Sprintf("%s-%s-%s", campaignID, characterID, uuid.NewString())
}

func (s *CampaignService) Start(ctx context.Context, cmd domain.StartCommand) (domain.StartResult, error) {
	content, err := s.content.LoadSnapshot(cmd.CampaignID)
	if err != nil {
		return domain.StartResult{}, err
	}
	if _, err := content.StartingStep(); err != nil {
		return domain.StartResult{}, err
	}
	character, err := s.characters.GetCharacter(cmd.CharacterID)
	if err != nil {
		return domain.StartResult{}, err
	}
	inventory, err := s.inventory.GetInventory(cmd.CharacterID)
	if err != nil {
		return domain.StartResult{}, err
	}

	sessionID := NewSessionID(cmd.CampaignID, cmd.CharacterID)
	if err := s.manager.CreateSession(ctx, sessionID, content); err != nil {
		return domain.StartResult{}, err
	}
	if _, err := s.manager.Join(sessionID, cmd.CharacterID, character.Stats); err != nil {
		s.abandon(ctx, sessionID, err)
		return domain.StartResult{}, err
	}
	state, err := s.manager.CurrentState(sessionID, cmd.CharacterID, inventory)
	if err != nil {
		s.abandon(ctx, sessionID, err)
		return domain.StartResult{}, err
	}

	steps, options, outcomes := content.Counts()
	s.log.Info("Campaign session started",
		"session_id", sessionID, "campaign_id", cmd.CampaignID, "character_id", cmd.CharacterID)
	return domain.StartResult{
		SessionID:   sessionID,
		CampaignID:  cmd.CampaignID,
		CharacterID: cmd.CharacterID,
		State:       state,
		Info: domain.StartInfo{
			CreatedAt:       s.now(),
			AutoSaveEnabled: true,
			CacheStats: domain.CacheStats{
				StepsLoaded:    steps,
				OptionsLoaded:  options,
				OutcomesLoaded: outcomes,
			},
		},
	}, nil
}

func (s *CampaignService) abandon(ctx context.Context, sessionID string, cause error) {
	if _, err := s.manager.EndSession(ctx, sessionID, "start_failed"); err != nil {
		s.log.Warn("Failed to drop session after start error", "session_id", sessionID, "error", err)
	}
	s.log.Debug("Session dropped", "session_id", sessionID, "cause", cause)
}

// Action fills the inventory from the store when the caller sent none.
func (s *CampaignService) Action(cmd domain.ActionCommand) (domain.ActionResult, error) {
	action := cmd.Action
	if action.Inventory == nil {
		items, err := s.inventory.ListItems(cmd.CharacterID)
		if err != nil {
			return domain.ActionResult{}, err
		}
		action.Inventory = lo.Map(items, func(item domain.Item, _ int) string { return item.ID })
	}
	return s.manager.Dispatch(cmd.SessionID, cmd.CharacterID, action)
}

// State answers GET /campaigns/action as a get_current_state dispatch.
func (s *CampaignService) State(sessionID, characterID string) (domain.ActionResult, error) {
	return s.Action(domain.ActionCommand{
		SessionID:   sessionID,
		CharacterID: characterID,
		Action:      domain.Action{Type: domain.GetCurrentState},
	})
}

func (s *CampaignService) Save(ctx context.Context, cmd domain.SaveCommand) (domain.SaveReport, error) {
	return s.manager.Save(ctx, cmd.SessionID, cmd.Force)
}

// End tears the session down and keeps a durable record of it. A failing
// record write is logged; the session is gone either way.
func (s *CampaignService) End(ctx context.Context, cmd domain.EndCommand) (domain.EndReport, error) {
	reason := lo.Ternary(cmd.Reason == "", runtime.ReasonNormalEnd, cmd.Reason)
	report, err := s.manager.EndSession(ctx, cmd.SessionID, reason)
	if err != nil {
		return domain.EndReport{}, err
	}
	if err := s.records.StoreRecord(domain.NewSessionRecord(report.Stats, reason)); err != nil {
		s.log.Warn("Failed to store session record", "session_id", cmd.SessionID, "error", err)
	}
	return report, nil
}

// Stats merges live gauges with the last sampled process metrics.
func (s *CampaignService) Stats() observability.MonitoringStats {
	stats := s.monitoring.GetLatest()
	stats.SessionGauges = s.manager.Stats()
	stats.Uptime = s.monitoring.Uptime().String()
	return stats
}
