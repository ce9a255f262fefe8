package workers

import (
	"campaign-lab/contract"
	"campaign-lab/errors"
	"context"
	errs "errors"
	"log/slog"
	"time"
)

var _ contract.Worker = (*AutosaveWorker)(nil)

// AutosaveWorker flushes one session every interval while it has unsaved changes.
// It stops once the session is gone; save failures are logged and retried on the next tick.
type AutosaveWorker struct {
	log       *slog.Logger
	saver     contract.Saver
	sessionID string
	interval  time.Duration
}

func NewAutosaveWorker(log *slog.Logger, saver contract.Saver, sessionID string, interval time.Duration) *AutosaveWorker {
	return &AutosaveWorker{
		log:       log.With("session_id", sessionID),
		saver:     saver,
		sessionID: sessionID,
		interval:  interval,
	}
}

func (w *AutosaveWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping autosave")
			return nil
		case <-ticker.C:
			saved, err := w.saver.Autosave(ctx, w.sessionID)
			switch {
			case errs.Is(err, errors.ErrSessionNotFound):
				w.log.Debug("Session gone, stopping autosave")
				return nil
			case err != nil:
				w.log.Warn("Autosave failed, will retry", "error", err)
			case saved:
				w.log.Debug("Autosave done")
			}
		}
	}
}
