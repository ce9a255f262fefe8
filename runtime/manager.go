package runtime

import (
	"campaign-lab/contract"
	"campaign-lab/domain"
	"campaign-lab/errors"
	"campaign-lab/observability"
	"campaign-lab/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	ReasonNormalEnd  = "normal_end"
	ReasonIdle       = "idle_timeout"
	ReasonShutdown   = "shutdown"
	defaultSaveLimit = 10 * time.Second
)

type Config struct {
	AutosaveInterval      time.Duration
	SessionTimeout        time.Duration
	MaxConcurrentSessions int
	SaveTimeout           time.Duration
}

func DefaultConfig() Config {
	return Config{
		AutosaveInterval:      5 * time.Minute,
		SessionTimeout:        30 * time.Minute,
		MaxConcurrentSessions: 100,
		SaveTimeout:           defaultSaveLimit,
	}
}

type entry struct {
	session *Session
	cancel  context.CancelFunc
}

var (
	_ contract.Saver           = (*Manager)(nil)
	_ contract.GaugeSource     = (*Manager)(nil)
	_ contract.ISessionManager = (*Manager)(nil)
)

// Manager is the registry of live sessions.
// Each entry carries the cancel func of its autosave worker; both are removed
// in the same critical section.
type Manager struct {
	mu         sync.RWMutex
	log        *slog.Logger
	cfg        Config
	adapter    contract.FlushAdapter
	supervisor contract.ISupervisor
	monitoring *observability.MonitoringManager
	handlers   domain.OutcomeHandlers
	now        func() time.Time
	ctx        context.Context
	cancel     context.CancelFunc
	sessions   map[string]*entry
}

func NewManager(
	log *slog.Logger,
	cfg Config,
	adapter contract.FlushAdapter,
	supervisor contract.ISupervisor,
	monitoring *observability.MonitoringManager,
) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = defaultSaveLimit
	}
	return &Manager{
		log:        log,
		cfg:        cfg,
		adapter:    adapter,
		supervisor: supervisor,
		monitoring: monitoring,
		handlers:   domain.DefaultOutcomeHandlers(),
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
		sessions:   make(map[string]*entry),
	}
}

func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) WithOutcomeHandlers(handlers domain.OutcomeHandlers) *Manager {
	m.handlers = handlers
	return m
}

// CreateSession registers a new session and its autosave worker.
// When the registry is full, idle sessions are ended first to make room.
func (m *Manager) CreateSession(ctx context.Context, sessionID string, content domain.ContentSnapshot) error {
	m.mu.Lock()
	if _, ok := m.sessions[sessionID]; ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", errors.ErrSessionExists, sessionID)
	}

	var evicted []*Session
	if len(m.sessions) >= m.cfg.MaxConcurrentSessions {
		evicted = m.evictIdleLocked()
	}
	if len(m.sessions) >= m.cfg.MaxConcurrentSessions {
		m.mu.Unlock()
		m.finalize(ctx, evicted, ReasonIdle)
		return fmt.Errorf("%w: limit is %d", errors.ErrTooManySessions, m.cfg.MaxConcurrentSessions)
	}

	session := newSession(sessionID, content, m.handlers, m.now, m.log)
	sessCtx, cancel := context.WithCancel(m.ctx)
	m.sessions[sessionID] = &entry{session: session, cancel: cancel}
	m.supervisor.Start(sessCtx, workers.NewAutosaveWorker(m.log, m, sessionID, m.cfg.AutosaveInterval))
	m.mu.Unlock()

	m.monitoring.IncrSessionsCreated()
	m.log.Info("Session created", "session_id", sessionID, "campaign_id", content.CampaignID())
	m.finalize(ctx, evicted, ReasonIdle)
	return nil
}

// evictIdleLocked detaches every session idle for longer than SessionTimeout.
// Flushing happens later, outside the registry lock.
func (m *Manager) evictIdleLocked() []*Session {
	now := m.now()
	var evicted []*Session
	for id, e := range m.sessions {
		if now.Sub(e.session.LastAccessAt()) <= m.cfg.SessionTimeout {
			continue
		}
		e.cancel()
		delete(m.sessions, id)
		evicted = append(evicted, e.session)
		m.monitoring.IncrSessionsEvicted()
		m.log.Info("Evicting idle session", "session_id", id)
	}
	return evicted
}

func (m *Manager) finalize(ctx context.Context, sessions []*Session, reason string) {
	for _, s := range sessions {
		if _, err := m.teardown(ctx, s, reason); err != nil {
			m.log.Error("Final save failed, data lost", "session_id", s.ID(), "error", err)
		}
	}
}

func (m *Manager) lookup(sessionID string) (*Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sessionID)
	}
	return e.session, nil
}

func (m *Manager) Session(sessionID string) (*Session, error) {
	return m.lookup(sessionID)
}

func (m *Manager) Join(sessionID, characterID string, stats map[string]string) (domain.PlayerState, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return domain.PlayerState{}, err
	}
	return s.Join(characterID, stats)
}

func (m *Manager) Dispatch(sessionID, characterID string, action domain.Action) (domain.ActionResult, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return domain.ActionResult{}, err
	}
	res, err := s.Dispatch(characterID, action)
	if err != nil {
		m.monitoring.IncrActionsRejected()
		return domain.ActionResult{}, err
	}
	m.monitoring.IncrActionsDispatched()
	return res, nil
}

func (m *Manager) CurrentState(sessionID, characterID string, inventory domain.Inventory) (domain.ActionResult, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return domain.ActionResult{}, err
	}
	return s.CurrentState(characterID, inventory)
}

// Save flushes the session delta. A clean session is skipped unless force is set.
// The session lock is released while the adapter runs.
func (m *Manager) Save(ctx context.Context, sessionID string, force bool) (domain.SaveReport, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return domain.SaveReport{}, err
	}
	s.touch()
	return m.flush(ctx, s, force)
}

// Autosave is called by the session's worker. It never refreshes lastAccess.
func (m *Manager) Autosave(ctx context.Context, sessionID string) (bool, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return false, err
	}
	report, err := m.flush(ctx, s, false)
	if err != nil {
		return false, err
	}
	return !report.Skipped, nil
}

func (m *Manager) flush(ctx context.Context, s *Session, force bool) (domain.SaveReport, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if !force && !s.NeedsSave() {
		return domain.SaveReport{SessionID: s.ID(), SaveTime: m.now(), Skipped: true}, nil
	}
	batch, seq := s.delta()
	return m.write(ctx, s, batch, seq)
}

func (m *Manager) write(ctx context.Context, s *Session, batch domain.SaveBatch, seq uint64) (domain.SaveReport, error) {
	saveCtx, cancel := context.WithTimeout(ctx, m.cfg.SaveTimeout)
	defer cancel()

	result, err := m.adapter.Save(saveCtx, batch)
	if err != nil {
		m.monitoring.RecordSave(s.ID(), 0, err)
		return domain.SaveReport{}, fmt.Errorf("%w: session %s: %v", errors.ErrSaveAdapterFailure, s.ID(), err)
	}
	at := m.now()
	s.markSaved(seq, at)
	m.monitoring.RecordSave(s.ID(), result.Total(), nil)
	m.log.Debug("Session saved",
		"session_id", s.ID(),
		"player_progress", result.PlayerProgressCount,
		"choice_history", result.ChoiceHistoryCount,
		"character_updates", result.CharacterUpdateCount,
	)
	return domain.SaveReport{
		SessionID:    s.ID(),
		SaveTime:     at,
		ChangesSaved: result.Total(),
		Breakdown:    result,
	}, nil
}

// EndSession removes the session and cancels its autosave worker, then forces
// a final flush. The session is removed even if that flush fails.
func (m *Manager) EndSession(ctx context.Context, sessionID, reason string) (domain.EndReport, error) {
	m.mu.Lock()
	e, ok := m.sessions[sessionID]
	if ok {
		e.cancel()
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()
	if !ok {
		return domain.EndReport{}, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, sessionID)
	}
	if reason == "" {
		reason = ReasonNormalEnd
	}
	report, err := m.teardown(ctx, e.session, reason)
	if err != nil {
		m.log.Error("Final save failed, data lost", "session_id", sessionID, "error", err)
		report.FinalSaveError = err.Error()
	}
	return report, nil
}

func (m *Manager) teardown(ctx context.Context, s *Session, reason string) (domain.EndReport, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	stats := s.Stats(m.now())
	batch, seq := s.terminate()
	m.monitoring.IncrSessionsEnded()
	m.log.Info("Session ended",
		"session_id", s.ID(),
		"reason", reason,
		"duration", stats.Duration,
		"players", stats.TotalPlayers,
		"actions", stats.TotalActions,
	)
	save, err := m.write(ctx, s, batch, seq)
	return domain.EndReport{Stats: stats, Save: save}, err
}

// Stats is a read-only snapshot for operational monitoring.
func (m *Manager) Stats() observability.SessionGauges {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gauges := observability.SessionGauges{ActiveSessions: len(m.sessions)}
	for _, e := range m.sessions {
		gauges.TotalPlayers += e.session.PlayerCount()
		if e.session.NeedsSave() {
			gauges.SessionsNeedingSave++
		}
	}
	return gauges
}

// Shutdown ends every remaining session with a final flush and stops the
// autosave workers.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	remaining := make([]*Session, 0, len(m.sessions))
	for id, e := range m.sessions {
		e.cancel()
		delete(m.sessions, id)
		remaining = append(remaining, e.session)
	}
	m.mu.Unlock()
	m.cancel()

	m.log.Info("Shutting down session manager", "sessions", len(remaining))
	m.finalize(ctx, remaining, ReasonShutdown)
}
