package services

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/mocks"
	errs "errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPlayService(s store) *PlayService {
	return NewPlayService(slog.Default(), s.content, s.characters, s.inventory, s.progress, s.history).
		WithClock(tickingClock())
}

func optionIDs(options []domain.Option) []string {
	return lo.Map(options, func(o domain.Option, _ int) string { return o.ID })
}

func play(action domain.PlayAction, optionID string) domain.PlayCommand {
	return domain.PlayCommand{CharacterID: "hero", CampaignID: "crypt", Action: action, StepID: "", OptionID: optionID}
}

func Test_Begin_Creates_Progress_Once(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)

	// When the campaign is started
	state, err := service.Begin(play(domain.PlayStart, ""))

	// Then the player stands on the starting step
	req.NoError(err)
	req.Equal("S0", state.CurrentStep.ID)
	req.Equal([]string{"O1"}, optionIDs(state.AvailableOptions))
	req.Empty(state.CompletedSteps)
	first, err := s.progress.Get("crypt", "hero")
	req.NoError(err)
	req.Equal(1, first.Version)
	req.Equal(domain.InProgress, first.Status)

	// When it is continued
	_, err = service.Begin(play(domain.PlayContinue, ""))

	// Then the same progress row is reused
	req.NoError(err)
	again, err := s.progress.Get("crypt", "hero")
	req.NoError(err)
	req.Equal(first.SessionID, again.SessionID)
}

func Test_Choose_Applies_Outcomes_And_Advances(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)
	_, err := service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)

	// When the gate is lifted
	res, err := service.Choose(play(domain.PlayChoose, "O1"))

	// Then strength grows and the gated wall opens up
	req.NoError(err)
	req.Equal("Lift the gate", res.OptionText)
	req.Equal([]string{"STR +5 (10 → 15)"}, res.Changes)
	req.Len(res.Outcomes, 1)
	req.NotNil(res.NextStep)
	req.Equal("S1", res.NextStep.ID)
	req.Equal([]string{"O2", "O3", "O4"}, optionIDs(res.NextOptions))
	req.False(res.Completed)

	character, err := s.characters.GetCharacter("hero")
	req.NoError(err)
	req.Equal("15", character.Stats["STR"])
	req.Equal("5", character.Stats["HP"])

	progress, err := s.progress.Get("crypt", "hero")
	req.NoError(err)
	req.Equal(2, progress.Version)
	req.Equal("S1", progress.CurrentStepID)
	req.Equal([]string{"S0"}, progress.CompletedSteps)

	history, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("STR +5 (10 → 15)", history[0].Result)
	req.Equal(progress.SessionID, history[0].SessionID)
	req.Equal("S0", history[0].StepID)
}

func Test_Choose_Respects_Usage_Cap_Within_Session(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)
	_, err := service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)
	_, err = service.Choose(play(domain.PlayChoose, "O1"))
	req.NoError(err)

	// When the chest is opened once
	res, err := service.Choose(play(domain.PlayChoose, "O3"))

	// Then it is gone from the next options and cannot be chosen again
	req.NoError(err)
	req.Empty(res.Changes)
	req.Equal([]string{"O2", "O4"}, optionIDs(res.NextOptions))
	_, err = service.Choose(play(domain.PlayChoose, "O3"))
	req.ErrorIs(err, errors.ErrOptionNotAvailable)

	history, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Equal("chose Open the chest", history[1].Result)
}

func Test_Choose_Null_Target_Completes(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)
	_, err := service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)
	_, err = service.Choose(play(domain.PlayChoose, "O1"))
	req.NoError(err)

	// When the player leaves
	res, err := service.Choose(play(domain.PlayChoose, "O4"))

	// Then the campaign is completed
	req.NoError(err)
	req.True(res.Completed)
	req.Nil(res.NextStep)
	req.Empty(res.NextOptions)
	progress, err := s.progress.Get("crypt", "hero")
	req.NoError(err)
	req.Equal(domain.Completed, progress.Status)
	req.Equal(1.0, progress.CompletionRate)
	req.Empty(progress.CurrentStepID)
}

func Test_Choose_Rejections(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)

	// Given no progress yet
	_, err := service.Choose(play(domain.PlayChoose, "O1"))
	req.ErrorIs(err, errors.ErrProgressNotFound)

	_, err = service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)

	_, err = service.Choose(play(domain.PlayChoose, "O9"))
	req.ErrorIs(err, errors.ErrOptionNotFound)

	// An option leaving another step
	_, err = service.Choose(play(domain.PlayChoose, "O4"))
	req.ErrorIs(err, errors.ErrOptionNotAvailable)

	_, err = service.Begin(domain.PlayCommand{CharacterID: "hero", CampaignID: "tower", Action: domain.PlayStart})
	req.ErrorIs(err, errors.ErrCampaignNotFound)
}

func Test_Choose_Records_The_Stored_Step(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)
	_, err := service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)

	// When the client sends a step it is not standing on
	cmd := play(domain.PlayChoose, "O1")
	cmd.StepID = "S1"
	_, err = service.Choose(cmd)
	req.NoError(err)

	// Then history keeps the step the progress was on
	history, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("S0", history[0].StepID)
}

func Test_Choose_Stale_Version_Is_A_Conflict(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	s := newStore(t)
	seed(t, s)
	progress := mocks.NewMockIProgressRepository(ctrl)
	service := NewPlayService(slog.Default(), s.content, s.characters, s.inventory, progress, s.history)

	// Given a progress read at version 3 that another request advances first
	progress.EXPECT().Get("crypt", "hero").Return(domain.Progress{
		ID: "p-1", CharacterID: "hero", CampaignID: "crypt", SessionID: "SES-1",
		CurrentStepID: "S0", Version: 3, Status: domain.InProgress,
	}, nil)
	progress.EXPECT().CommitChoice(gomock.Any()).Return(errors.ErrConcurrentModification)

	// When the choice is written
	_, err := service.Choose(play(domain.PlayChoose, "O1"))

	// Then the conflict reaches the caller untouched
	req.ErrorIs(err, errors.ErrConcurrentModification)

	// And the rejected choice left neither stats nor history behind
	character, err := s.characters.GetCharacter("hero")
	req.NoError(err)
	req.Equal("10", character.Stats["STR"])
	history, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Empty(history)
}

func Test_Choose_Concurrent_Requests_Single_Winner(t *testing.T) {
	req := require.New(t)
	s := newStore(t)
	seed(t, s)
	service := newPlayService(s)
	_, err := service.Begin(play(domain.PlayStart, ""))
	req.NoError(err)

	// When two requests choose from the same progress version
	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = service.Choose(play(domain.PlayChoose, "O1"))
		}()
	}
	wg.Wait()

	// Then exactly one advances the progress
	winners := lo.CountBy(results, func(err error) bool { return err == nil })
	req.Equal(1, winners)
	for _, err := range results {
		if err != nil {
			req.True(errs.Is(err, errors.ErrConcurrentModification) || errs.Is(err, errors.ErrOptionNotAvailable), err)
		}
	}
	progress, err := s.progress.Get("crypt", "hero")
	req.NoError(err)
	req.Equal(2, progress.Version)

	// And the outcome was applied once, by the winner only
	character, err := s.characters.GetCharacter("hero")
	req.NoError(err)
	req.Equal("15", character.Stats["STR"])
	history, err := s.history.ListChoices("crypt", "hero")
	req.NoError(err)
	req.Len(history, 1)
	req.Equal("S0", history[0].StepID)
}
