package workers

import (
	"campaign-lab/contract"
	"campaign-lab/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*StatsReporterWorker)(nil)

// StatsReporterWorker samples the session gauges and this process' RSS and CPU
// into the monitoring manager every interval.
type StatsReporterWorker struct {
	log        *slog.Logger
	source     contract.GaugeSource
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewStatsReporterWorker(
	log *slog.Logger,
	source contract.GaugeSource,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
) *StatsReporterWorker {
	return &StatsReporterWorker{
		log:        log,
		source:     source,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *StatsReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *StatsReporterWorker) report(p *process.Process) {
	gauges := w.source.Stats()
	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
	}
	w.monitoring.Update(gauges, rss, cpu)
	w.log.Info("Session stats",
		"active_sessions", gauges.ActiveSessions,
		"total_players", gauges.TotalPlayers,
		"needing_save", gauges.SessionsNeedingSave,
		"rss_bytes", rss,
	)
}

// selfStats retrieves the resident memory and CPU usage of p.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return memInfo.RSS, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
