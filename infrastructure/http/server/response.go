package server

import (
	"campaign-lab/errors"
	"encoding/json"
	errs "errors"
	"log/slog"
	"net/http"
)

// envelope is the body of every /campaigns response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

type httpError struct {
	status int
	code   string
}

// Order matters: the first matching sentinel wins.
var errorTable = []struct {
	err error
	httpError
}{
	{errors.ErrSessionNotFound, httpError{http.StatusNotFound, "SESSION_NOT_FOUND"}},
	{errors.ErrCampaignNotFound, httpError{http.StatusNotFound, "CAMPAIGN_NOT_FOUND"}},
	{errors.ErrCharacterNotFound, httpError{http.StatusNotFound, "CHARACTER_NOT_FOUND"}},
	{errors.ErrPlayerNotInSession, httpError{http.StatusForbidden, "PLAYER_NOT_IN_SESSION"}},
	{errors.ErrOptionNotFound, httpError{http.StatusBadRequest, "OPTION_NOT_FOUND"}},
	{errors.ErrOptionNotAvailable, httpError{http.StatusBadRequest, "OPTION_NOT_AVAILABLE"}},
	{errors.ErrNoStartingStep, httpError{http.StatusBadRequest, "NO_STARTING_STEP"}},
	{errors.ErrStepNotFound, httpError{http.StatusBadRequest, "STEP_NOT_FOUND"}},
	{errors.ErrProgressNotFound, httpError{http.StatusBadRequest, "PROGRESS_NOT_FOUND"}},
	{errors.ErrMissingFields, httpError{http.StatusBadRequest, "MISSING_FIELDS"}},
	{errors.ErrUnknownAction, httpError{http.StatusBadRequest, "UNKNOWN_ACTION"}},
	{errors.ErrPlayerAlreadyJoined, httpError{http.StatusConflict, "PLAYER_ALREADY_JOINED"}},
	{errors.ErrSessionExists, httpError{http.StatusConflict, "SESSION_EXISTS"}},
	{errors.ErrConcurrentModification, httpError{http.StatusConflict, "CONCURRENT_MODIFICATION"}},
	{errors.ErrSessionTerminated, httpError{http.StatusGone, "SESSION_TERMINATED"}},
	{errors.ErrTooManySessions, httpError{http.StatusServiceUnavailable, "TOO_MANY_SESSIONS"}},
	{errors.ErrSaveAdapterFailure, httpError{http.StatusInternalServerError, "SAVE_FAILED"}},
}

func mapError(err error) httpError {
	for _, entry := range errorTable {
		if errs.Is(err, entry.err) {
			return entry.httpError
		}
	}
	return httpError{http.StatusInternalServerError, "INTERNAL_ERROR"}
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func (s *CampaignServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapError(err)
	s.log.Log(r.Context(), logLevel(mapped.status), "Campaign request failed",
		"path", r.URL.Path, "code", mapped.code, "error", err)
	writeJSON(w, mapped.status, envelope{Error: mapped.code, Details: err.Error()})
}

func logLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelDebug
}
