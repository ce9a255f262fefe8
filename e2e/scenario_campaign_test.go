package e2e

import (
	"campaign-lab/domain"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testCampaignSuite struct {
	BaseHTTPSuite
}

func TestCampaignSuite(t *testing.T) {
	suite.Run(t, &testCampaignSuite{})
}

type endData struct {
	SessionID string              `json:"sessionId"`
	Reason    string              `json:"reason"`
	Stats     domain.SessionStats `json:"stats"`
	FinalSave domain.SaveReport   `json:"finalSave"`
}

type statsData struct {
	ActiveSessionsCount int `json:"activeSessionsCount"`
	TotalPlayersCount   int `json:"totalPlayersCount"`
}

func (s *testCampaignSuite) TestCachedSessionFlow() {
	var sessionID string

	// --- STEP 1: START ---
	s.Run("Step 1: Start a cached session", func() {
		var started domain.StartResult
		code, _ := s.Call("Start crypt as hero", http.MethodPost, "/campaigns/start",
			domain.StartCommand{CampaignID: "crypt", CharacterID: "hero"}, &started)

		s.Require().Equal(http.StatusOK, code)
		s.Require().True(strings.HasPrefix(started.SessionID, "crypt-hero-"))
		s.Require().Equal("S0", started.State.CurrentStep.ID)
		s.Require().Len(started.State.AvailableOptions, 1)
		s.Require().Equal(domain.CacheStats{StepsLoaded: 2, OptionsLoaded: 3, OutcomesLoaded: 1}, started.Info.CacheStats)
		sessionID = started.SessionID
	})

	// --- STEP 2: PLAY ---
	s.Run("Step 2: Choose an option and read the state back", func() {
		var result domain.ActionResult
		code, _ := s.Call("Push the gate", http.MethodPost, "/campaigns/action", domain.ActionCommand{
			SessionID:   sessionID,
			CharacterID: "hero",
			Action:      domain.Action{Type: domain.ChooseOption, OptionID: "O1"},
		}, &result)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("S1", result.CurrentStep.ID)
		s.Require().Empty(result.Character)
		s.Require().Equal([]string{"The gate gives way"}, result.Outcomes)

		var state domain.ActionResult
		code, _ = s.Call("Current state", http.MethodGet,
			"/campaigns/action?sessionId="+sessionID+"&characterId=hero", nil, &state)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("S1", state.CurrentStep.ID)
		s.Require().Equal("15", state.Character["STR"])

		// The slab needs STR 20
		code, res := s.Call("Lift the slab", http.MethodPost, "/campaigns/action", domain.ActionCommand{
			SessionID:   sessionID,
			CharacterID: "hero",
			Action:      domain.Action{Type: domain.ChooseOption, OptionID: "O3"},
		}, nil)
		s.Require().Equal(http.StatusBadRequest, code)
		s.Require().Equal("OPTION_NOT_AVAILABLE", res.Error)
	})

	// --- STEP 3: SAVE ---
	s.Run("Step 3: Save writes the delta once", func() {
		var report domain.SaveReport
		code, _ := s.Call("Save", http.MethodPost, "/campaigns/save", domain.SaveCommand{SessionID: sessionID}, &report)
		s.Require().Equal(http.StatusOK, code)
		s.Require().False(report.Skipped)
		s.Require().Equal(1, report.Breakdown.ChoiceHistoryCount)
		s.Require().Equal(1, report.Breakdown.CharacterUpdateCount)
		s.Require().Equal("15", s.Character("hero").Stats["STR"])

		choices, err := s.Store.History.ListChoices("crypt", "hero")
		s.Require().NoError(err)
		s.Require().Len(choices, 1)
		s.Require().Equal("O1", choices[0].OptionID)

		code, res := s.Call("Save again", http.MethodPost, "/campaigns/save", domain.SaveCommand{SessionID: sessionID}, &report)
		s.Require().Equal(http.StatusOK, code)
		s.Require().True(report.Skipped)
		s.Require().Equal("No changes to save", res.Message)
	})

	// --- STEP 4: END ---
	s.Run("Step 4: End the session and keep its record", func() {
		var stats statsData
		code, _ := s.Call("Manager stats", http.MethodGet, "/campaigns/end", nil, &stats)
		s.Require().Equal(http.StatusOK, code)
		s.Require().GreaterOrEqual(stats.ActiveSessionsCount, 1)

		var ended endData
		code, _ = s.Call("End", http.MethodPost, "/campaigns/end", domain.EndCommand{SessionID: sessionID}, &ended)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("normal_end", ended.Reason)
		s.Require().Equal(2, ended.Stats.TotalActions)
		s.Require().Equal(1, ended.Stats.TotalPlayers)

		record, err := s.Store.Records.GetRecord(sessionID)
		s.Require().NoError(err)
		s.Require().Equal(2, record.Actions)

		code, res := s.Call("Action after end", http.MethodPost, "/campaigns/action", domain.ActionCommand{
			SessionID:   sessionID,
			CharacterID: "hero",
			Action:      domain.Action{Type: domain.GetCurrentState},
		}, nil)
		s.Require().Equal(http.StatusNotFound, code)
		s.Require().Equal("SESSION_NOT_FOUND", res.Error)
	})
}

func (s *testCampaignSuite) TestDirectPlayFlow() {
	s.Run("Step 1: Start creates the progress row", func() {
		var state domain.PlayState
		code, _ := s.Call("Play start as rogue", http.MethodPost, "/campaigns/play",
			domain.PlayCommand{CharacterID: "rogue", CampaignID: "crypt", Action: domain.PlayStart}, &state)

		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("S0", state.CurrentStep.ID)
		s.Require().Empty(state.CompletedSteps)

		progress, err := s.Store.Progress.Get("crypt", "rogue")
		s.Require().NoError(err)
		s.Require().Equal(1, progress.Version)
	})

	s.Run("Step 2: Choose applies outcomes to the stored character", func() {
		var result domain.ChooseResult
		code, _ := s.Call("Push the gate", http.MethodPost, "/campaigns/play", domain.PlayCommand{
			CharacterID: "rogue", CampaignID: "crypt", Action: domain.PlayChoose, StepID: "S0", OptionID: "O1",
		}, &result)

		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal([]string{"STR +5 (8 → 13)"}, result.Changes)
		s.Require().Equal("S1", result.NextStep.ID)
		s.Require().False(result.Completed)
		s.Require().Equal("13", s.Character("rogue").Stats["STR"])

		code, res := s.Call("Push the gate twice", http.MethodPost, "/campaigns/play", domain.PlayCommand{
			CharacterID: "rogue", CampaignID: "crypt", Action: domain.PlayChoose, StepID: "S0", OptionID: "O1",
		}, nil)
		s.Require().Equal(http.StatusBadRequest, code)
		s.Require().Equal("OPTION_NOT_AVAILABLE", res.Error)
	})

	s.Run("Step 3: Continue and finish", func() {
		var state domain.PlayState
		code, _ := s.Call("Play continue", http.MethodPost, "/campaigns/play",
			domain.PlayCommand{CharacterID: "rogue", CampaignID: "crypt", Action: domain.PlayContinue}, &state)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Equal("S1", state.CurrentStep.ID)
		s.Require().Equal([]string{"S0"}, state.CompletedSteps)

		var result domain.ChooseResult
		code, _ = s.Call("Leave the crypt", http.MethodPost, "/campaigns/play", domain.PlayCommand{
			CharacterID: "rogue", CampaignID: "crypt", Action: domain.PlayChoose, StepID: "S1", OptionID: "O2",
		}, &result)
		s.Require().Equal(http.StatusOK, code)
		s.Require().True(result.Completed)
		s.Require().Nil(result.NextStep)

		progress, err := s.Store.Progress.Get("crypt", "rogue")
		s.Require().NoError(err)
		s.Require().Equal(domain.Completed, progress.Status)
		s.Require().Equal(1.0, progress.CompletionRate)
		s.Require().Equal(3, progress.Version)
	})
}
