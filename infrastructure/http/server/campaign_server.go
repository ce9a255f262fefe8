package server

import (
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// CampaignServer exposes the /campaigns routes over plain HTTP/JSON.
type CampaignServer struct {
	log       *slog.Logger
	campaigns services.ICampaignService
	play      services.IPlayService
	validate  *validator.Validate
	now       func() time.Time
}

func NewCampaignServer(log *slog.Logger, campaigns services.ICampaignService, play services.IPlayService) *CampaignServer {
	return &CampaignServer{
		log:       log,
		campaigns: campaigns,
		play:      play,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
}

func (s *CampaignServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /campaigns/start", s.handleStart)
	mux.HandleFunc("POST /campaigns/action", s.handleAction)
	mux.HandleFunc("GET /campaigns/action", s.handleState)
	mux.HandleFunc("POST /campaigns/save", s.handleSave)
	mux.HandleFunc("POST /campaigns/end", s.handleEnd)
	mux.HandleFunc("GET /campaigns/end", s.handleStats)
	mux.HandleFunc("POST /campaigns/play", s.handlePlay)
}

// decode reads a JSON body into dst and runs the struct validation tags.
func (s *CampaignServer) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingFields, err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingFields, err)
	}
	return nil
}

func (s *CampaignServer) handleStart(w http.ResponseWriter, r *http.Request) {
	var cmd domain.StartCommand
	if err := s.decode(w, r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.campaigns.Start(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, res, "")
}

func (s *CampaignServer) handleAction(w http.ResponseWriter, r *http.Request) {
	var cmd domain.ActionCommand
	if err := s.decode(w, r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.campaigns.Action(cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, res, "")
}

func (s *CampaignServer) handleState(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	characterID := r.URL.Query().Get("characterId")
	if sessionID == "" || characterID == "" {
		s.writeError(w, r, fmt.Errorf("%w: sessionId and characterId", errors.ErrMissingFields))
		return
	}
	res, err := s.campaigns.State(sessionID, characterID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, res, "")
}

func (s *CampaignServer) handleSave(w http.ResponseWriter, r *http.Request) {
	var cmd domain.SaveCommand
	if err := s.decode(w, r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.campaigns.Save(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	message := "Session saved"
	if report.Skipped {
		message = "No changes to save"
	}
	writeData(w, report, message)
}

type endResponse struct {
	SessionID      string              `json:"sessionId"`
	EndTime        time.Time           `json:"endTime"`
	Reason         string              `json:"reason"`
	Duration       int64               `json:"duration"`
	Stats          domain.SessionStats `json:"stats"`
	FinalSave      domain.SaveReport   `json:"finalSave"`
	FinalSaveError string              `json:"finalSaveError,omitempty"`
}

func (s *CampaignServer) handleEnd(w http.ResponseWriter, r *http.Request) {
	var cmd domain.EndCommand
	if err := s.decode(w, r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.campaigns.End(r.Context(), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	reason := cmd.Reason
	if reason == "" {
		reason = "normal_end"
	}
	writeData(w, endResponse{
		SessionID:      cmd.SessionID,
		EndTime:        report.Stats.EndTime,
		Reason:         reason,
		Duration:       report.Stats.Duration.Milliseconds(),
		Stats:          report.Stats,
		FinalSave:      report.Save,
		FinalSaveError: report.FinalSaveError,
	}, "Campaign session ended")
}

type statsResponse struct {
	Timestamp           time.Time `json:"timestamp"`
	ActiveSessionsCount int       `json:"activeSessionsCount"`
	TotalPlayersCount   int       `json:"totalPlayersCount"`
	SessionsNeedingSave int       `json:"sessionsNeedingSave"`
	RssBytes            uint64    `json:"rssBytes"`
	AllocMemMb          uint64    `json:"allocMemMb"`
	Uptime              string    `json:"uptime"`
}

func (s *CampaignServer) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats := s.campaigns.Stats()
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: statsResponse{
			Timestamp:           s.now(),
			ActiveSessionsCount: stats.ActiveSessions,
			TotalPlayersCount:   stats.TotalPlayers,
			SessionsNeedingSave: stats.SessionsNeedingSave,
			RssBytes:            stats.RssBytes,
			AllocMemMb:          stats.AllocMemMb,
			Uptime:              stats.Uptime,
		},
		Meta: stats,
	})
}

func (s *CampaignServer) handlePlay(w http.ResponseWriter, r *http.Request) {
	var cmd domain.PlayCommand
	if err := s.decode(w, r, &cmd); err != nil {
		s.writeError(w, r, err)
		return
	}
	var (
		data any
		err  error
	)
	switch cmd.Action {
	case domain.PlayStart, domain.PlayContinue:
		data, err = s.play.Begin(cmd)
	case domain.PlayChoose:
		data, err = s.play.Choose(cmd)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, data, "")
}
