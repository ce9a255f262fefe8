//go:generate go run go.uber.org/mock/mockgen -source=play_service.go -destination=../mocks/mock_play_service.go -package=mocks
package services

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/repositories"
	errs "errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IPlayService interface {
	Begin(cmd domain.PlayCommand) (domain.PlayState, error)
	Choose(cmd domain.PlayCommand) (domain.ChooseResult, error)
}

// PlayService is the store-backed play path. Nothing is cached: every request
// reads the durable rows and the progress version guards the final write.
type PlayService struct {
	log        *slog.Logger
	content    repositories.IContentRepository
	characters repositories.ICharacterRepository
	inventory  repositories.IInventoryRepository
	progress   repositories.IProgressRepository
	choices    repositories.IChoiceHistoryRepository
	now        func() time.Time
}

func NewPlayService(
	log *slog.Logger,
	content repositories.IContentRepository,
	characters repositories.ICharacterRepository,
	inventory repositories.IInventoryRepository,
	progress repositories.IProgressRepository,
	choices repositories.IChoiceHistoryRepository,
) *PlayService {
	return &PlayService{
		log:        log,
		content:    content,
		characters: characters,
		inventory:  inventory,
		progress:   progress,
		choices:    choices,
		now:        time.Now,
	}
}

var _ IPlayService = (*PlayService)(nil)

func (s *PlayService) WithClock(now func() time.Time) *PlayService {
	s.now = now
	return s
}

type playContext struct {
	content   domain.ContentSnapshot
	character domain.Character
	inventory domain.Inventory
	history   []domain.ChoiceRow
}

func (s *PlayService) load(cmd domain.PlayCommand) (playContext, error) {
	var pc playContext
	var err error
	if pc.content, err = s.content.LoadSnapshot(cmd.CampaignID); err != nil {
		return pc, err
	}
	if pc.character, err = s.characters.GetCharacter(cmd.CharacterID); err != nil {
		return pc, err
	}
	if pc.inventory, err = s.inventory.GetInventory(cmd.CharacterID); err != nil {
		return pc, err
	}
	pc.history, err = s.choices.ListChoices(cmd.CampaignID, cmd.CharacterID)
	return pc, err
}

// Begin serves both start and continue: the progress row is created on the
// first call and reused afterwards.
func (s *PlayService) Begin(cmd domain.PlayCommand) (domain.PlayState, error) {
	pc, err := s.load(cmd)
	if err != nil {
		return domain.PlayState{}, err
	}

	progress, err := s.progress.Get(cmd.CampaignID, cmd.CharacterID)
	if errs.Is(err, errors.ErrProgressNotFound) {
		progress, err = s.createProgress(cmd, pc.content)
	}
	if err != nil {
		return domain.PlayState{}, err
	}

	step, ok := pc.content.Step(progress.CurrentStepID)
	if !ok {
		return domain.PlayState{}, fmt.Errorf("%w: %q", errors.ErrStepNotFound, progress.CurrentStepID)
	}
	player := playerOf(pc, progress)
	return domain.PlayState{
		CurrentStep:      step,
		AvailableOptions: domain.AvailableOptions(pc.content, player, pc.inventory),
		CompletedSteps:   lo.Ternary(progress.CompletedSteps == nil, []string{}, progress.CompletedSteps),
	}, nil
}

func (s *PlayService) createProgress(cmd domain.PlayCommand, content domain.ContentSnapshot) (domain.Progress, error) {
	start, err := content.StartingStep()
	if err != nil {
		return domain.Progress{}, err
	}
	at := s.now()
	progress := domain.Progress{
		ID:            uuid.NewString(),
		CharacterID:   cmd.CharacterID,
		CampaignID:    cmd.CampaignID,
		SessionID:     fmt.Sprintf("SES-%s-%s", cmd.CharacterID, uuid.NewString()),
		CurrentStepID: start.ID,
		StartedAt:     at,
		UpdatedAt:     at,
		Version:       1,
		Status:        domain.InProgress,
	}
	if err := s.progress.Create(progress); err != nil {
		return domain.Progress{}, err
	}
	s.log.Info("Campaign progress created",
		"campaign_id", cmd.CampaignID, "character_id", cmd.CharacterID, "session_id", progress.SessionID)
	return progress, nil
}

// Choose applies one option against the stored progress. Stats, history and
// progress are written in one transaction that re-checks the version read at
// the start; a mismatch surfaces as ErrConcurrentModification, nothing is
// written and the caller must reload.
func (s *PlayService) Choose(cmd domain.PlayCommand) (domain.ChooseResult, error) {
	pc, err := s.load(cmd)
	if err != nil {
		return domain.ChooseResult{}, err
	}
	option, ok := pc.content.Option(cmd.OptionID)
	if !ok {
		return domain.ChooseResult{}, fmt.Errorf("%w: %s", errors.ErrOptionNotFound, cmd.OptionID)
	}
	progress, err := s.progress.Get(cmd.CampaignID, cmd.CharacterID)
	if err != nil {
		return domain.ChooseResult{}, err
	}
	player := playerOf(pc, progress)
	if option.SourceStepID != progress.CurrentStepID || !domain.IsAvailable(option, player, pc.inventory) {
		return domain.ChooseResult{}, fmt.Errorf("%w: %s", errors.ErrOptionNotAvailable, cmd.OptionID)
	}

	at := s.now()
	outcomes := pc.content.OutcomesFor(option.ID)
	stats, changes := applyOutcomes(pc.character.Stats, outcomes)

	result := strings.Join(changes, ", ")
	if result == "" {
		result = fmt.Sprintf("chose %s", option.Text)
	}
	commit := repositories.ChoiceCommit{
		Progress:        progress.Advance(progress.CurrentStepID, option.TargetStepID, len(pc.history), at),
		ExpectedVersion: progress.Version,
		Choice: domain.ChoiceRow{
			ID:          uuid.NewString(),
			CharacterID: cmd.CharacterID,
			CampaignID:  cmd.CampaignID,
			SessionID:   progress.SessionID,
			StepID:      progress.CurrentStepID,
			OptionID:    option.ID,
			Result:      result,
			At:          at,
		},
		At: at,
	}
	if len(changes) > 0 {
		commit.Stats = stats
	}
	if err := s.progress.CommitChoice(commit); err != nil {
		s.log.Warn("Choice rejected",
			"campaign_id", cmd.CampaignID, "character_id", cmd.CharacterID, "version", progress.Version, "error", err)
		return domain.ChooseResult{}, err
	}

	res := domain.ChooseResult{
		OptionText:  option.Text,
		Outcomes:    lo.Ternary(outcomes == nil, []domain.Outcome{}, outcomes),
		Changes:     lo.Ternary(changes == nil, []string{}, changes),
		NextOptions: []domain.Option{},
		Completed:   option.TargetStepID == "",
	}
	if step, ok := pc.content.Step(option.TargetStepID); ok {
		res.NextStep = &step
		nextPlayer := domain.PlayerState{
			CharacterID:   cmd.CharacterID,
			Stats:         stats,
			CurrentStepID: step.ID,
			Choices:       append(player.Choices, domain.Choice{OptionID: option.ID, StepID: progress.CurrentStepID, At: at}),
		}
		res.NextOptions = domain.AvailableOptions(pc.content, nextPlayer, pc.inventory)
	}
	return res, nil
}

// playerOf rebuilds the eligibility view of a character: usage is counted
// within the progress session only.
func playerOf(pc playContext, progress domain.Progress) domain.PlayerState {
	choices := lo.FilterMap(pc.history, func(row domain.ChoiceRow, _ int) (domain.Choice, bool) {
		return domain.Choice{OptionID: row.OptionID, StepID: row.StepID, At: row.At}, row.SessionID == progress.SessionID
	})
	return domain.PlayerState{
		CharacterID:   pc.character.ID,
		Stats:         pc.character.Stats,
		CurrentStepID: progress.CurrentStepID,
		Completed:     progress.Status == domain.Completed,
		Choices:       choices,
	}
}

// applyOutcomes runs CHANGE_STAT outcomes on a copy of stats and describes
// each change. Other kinds have no effect on this path.
func applyOutcomes(stats map[string]string, outcomes []domain.Outcome) (map[string]string, []string) {
	updated := maps.Clone(stats)
	if updated == nil {
		updated = make(map[string]string)
	}
	var changes []string
	for _, o := range outcomes {
		if o.Kind != domain.ChangeStat || o.Target == "" {
			continue
		}
		oldValue := domain.ParseStat(updated[o.Target])
		newValue := domain.FlooredAdd(oldValue, o.Value)
		updated[o.Target] = strconv.Itoa(newValue)
		changes = append(changes, domain.ChangeSummary(o.Target, o.Value, oldValue, newValue))
	}
	return updated, changes
}
