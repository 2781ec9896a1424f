package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/contract"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
)

// HealthMonitoring samples the server process (CPU, RSS) and the live
// roster size on a fixed interval and reports them as telemetry events.
type HealthMonitoring struct {
	log            *slog.Logger
	roster         contract.IRoster
	telemetryChan  chan event.Event
	metricInterval time.Duration
}

func NewHealthMonitoring(
	log *slog.Logger,
	roster contract.IRoster,
	telemetryChan chan event.Event,
	metricInterval time.Duration,
) *HealthMonitoring {
	return &HealthMonitoring{
		log:            log,
		roster:         roster,
		telemetryChan:  telemetryChan,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoring) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthMonitoring) sample(p *process.Process) {
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "err", err)
		return
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Error while finding process memory usage", "err", err)
		return
	}

	select {
	case w.telemetryChan <- event.Event{
		Type:      event.HealthSampleType,
		CreatedAt: time.Now().UTC(),
		Payload: event.HealthSample{
			RosterSize: w.roster.Size(),
			CPUPercent: cpu,
			RSSBytes:   mem.RSS,
		},
	}:
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}
