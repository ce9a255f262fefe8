package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RecentSaveInfo is one flush shown on the debug page.
type RecentSaveInfo struct {
	SessionID    string `json:"session_id"`
	ChangesSaved int    `json:"changes_saved"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
}

// SessionGauges is the manager's view at sampling time.
type SessionGauges struct {
	ActiveSessions      int `json:"active_sessions"`
	TotalPlayers        int `json:"total_players"`
	SessionsNeedingSave int `json:"sessions_needing_save"`
}

// MonitoringStats aggregates every metric exposed by the debug server
type MonitoringStats struct {
	// --- SESSION METRICS ---
	SessionGauges
	SessionsCreated uint64 `json:"sessions_created"`
	SessionsEnded   uint64 `json:"sessions_ended"`
	SessionsEvicted uint64 `json:"sessions_evicted"`

	// --- PLAY METRICS ---
	ActionsDispatched uint64 `json:"actions_dispatched"`
	ActionsRejected   uint64 `json:"actions_rejected"`

	// --- SAVE METRICS ---
	SavesSucceeded uint64           `json:"saves_succeeded"`
	SavesFailed    uint64           `json:"saves_failed"`
	ChangesSaved   uint64           `json:"changes_saved"`
	RecentSaves    []RecentSaveInfo `json:"recent_saves"`

	// --- SYSTEM METRICS ---
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RssBytes   uint64  `json:"rss_bytes"`
	CpuPercent float64 `json:"cpu_percent"`
	Uptime     string  `json:"uptime"`
}

// MonitoringManager collects counters from the runtime and keeps the latest snapshot
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats
	startedAt   time.Time

	sessionsCreated   uint64
	sessionsEnded     uint64
	sessionsEvicted   uint64
	actionsDispatched uint64
	actionsRejected   uint64
	savesSucceeded    uint64
	savesFailed       uint64
	changesSaved      uint64
}

const maxRecentSaves = 20

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		startedAt: time.Now(),
		latestStats: MonitoringStats{
			RecentSaves: make([]RecentSaveInfo, 0),
		},
	}
}

func (mm *MonitoringManager) IncrSessionsCreated() {
	atomic.AddUint64(&mm.sessionsCreated, 1)
}

func (mm *MonitoringManager) IncrSessionsEnded() {
	atomic.AddUint64(&mm.sessionsEnded, 1)
}

func (mm *MonitoringManager) IncrSessionsEvicted() {
	atomic.AddUint64(&mm.sessionsEvicted, 1)
}

func (mm *MonitoringManager) IncrActionsDispatched() {
	atomic.AddUint64(&mm.actionsDispatched, 1)
}

func (mm *MonitoringManager) IncrActionsRejected() {
	atomic.AddUint64(&mm.actionsRejected, 1)
}

// RecordSave counts a flush and pushes it on top of the recent list
func (mm *MonitoringManager) RecordSave(sessionID string, changesSaved int, err error) {
	status := "OK"
	if err != nil {
		status = "FAILED"
		atomic.AddUint64(&mm.savesFailed, 1)
	} else {
		atomic.AddUint64(&mm.savesSucceeded, 1)
		atomic.AddUint64(&mm.changesSaved, uint64(changesSaved))
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	save := RecentSaveInfo{
		SessionID:    sessionID,
		ChangesSaved: changesSaved,
		Status:       status,
		Timestamp:    time.Now().Format("15:04:05"),
	}
	mm.latestStats.RecentSaves = append([]RecentSaveInfo{save}, mm.latestStats.RecentSaves...)
	if len(mm.latestStats.RecentSaves) > maxRecentSaves {
		mm.latestStats.RecentSaves = mm.latestStats.RecentSaves[:maxRecentSaves]
	}
}

// Update refreshes the snapshot with the manager gauges and process metrics
func (mm *MonitoringManager) Update(gauges SessionGauges, rssBytes uint64, cpuPercent float64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.latestStats.SessionGauges = gauges
	mm.latestStats.RssBytes = rssBytes
	mm.latestStats.CpuPercent = cpuPercent
	mm.latestStats.Uptime = mm.Uptime().String()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	mm.log.Debug("Stats updated",
		"active_sessions", gauges.ActiveSessions,
		"total_players", gauges.TotalPlayers,
		"needing_save", gauges.SessionsNeedingSave,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) Uptime() time.Duration {
	return time.Since(mm.startedAt).Round(time.Second)
}

// GetLatest returns a copy with the counters loaded at call time
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	stats.RecentSaves = append([]RecentSaveInfo(nil), mm.latestStats.RecentSaves...)
	mm.mu.RUnlock()

	stats.SessionsCreated = atomic.LoadUint64(&mm.sessionsCreated)
	stats.SessionsEnded = atomic.LoadUint64(&mm.sessionsEnded)
	stats.SessionsEvicted = atomic.LoadUint64(&mm.sessionsEvicted)
	stats.ActionsDispatched = atomic.LoadUint64(&mm.actionsDispatched)
	stats.ActionsRejected = atomic.LoadUint64(&mm.actionsRejected)
	stats.SavesSucceeded = atomic.LoadUint64(&mm.savesSucceeded)
	stats.SavesFailed = atomic.LoadUint64(&mm.savesFailed)
	stats.ChangesSaved = atomic.LoadUint64(&mm.changesSaved)
	return stats
}
