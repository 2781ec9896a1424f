package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
)

// panickyWorker panics on its first runs, then blocks until canceled.
type panickyWorker struct {
	panics int32
	runs   atomic.Int32
}

func (w *panickyWorker) Run(ctx context.Context) error {
	run := w.runs.Add(1)
	if run <= w.panics {
		panic("boom")
	}
	<-ctx.Done()
	return nil
}

type finishingWorker struct {
	runs atomic.Int32
}

func (w *finishingWorker) Run(context.Context) error {
	w.runs.Add(1)
	return nil
}

func TestSupervisor_RestartsAfterPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetry := make(chan event.Event, 8)

	// Given a worker that panics twice before settling
	worker := &panickyWorker{panics: 2}
	supervisor := NewSupervisor(log, telemetry, time.Millisecond)
	supervisor.Add(worker)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(done)
	}()

	// When both panics have been recovered
	req.Eventually(func() bool {
		return worker.runs.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	// Then each restart was reported on the telemetry channel
	for i := 0; i < 2; i++ {
		select {
		case evt := <-telemetry:
			req.Equal(event.RestartedAfterPanicType, evt.Type)
			payload, ok := evt.Payload.(event.WorkerRestartedAfterPanic)
			req.True(ok)
			req.NotEmpty(payload.WorkerName)
		case <-time.After(time.Second):
			t.Fatal("expected a restart telemetry event")
		}
	}

	// And the supervisor shuts down cleanly
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop after cancel")
	}
}

func TestSupervisor_CleanFinishIsNotRestarted(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	worker := &finishingWorker{}
	supervisor := NewSupervisor(log, nil, time.Millisecond)
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not return after worker finished")
	}
	req.Equal(int32(1), worker.runs.Load())
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	worker := &panickyWorker{}
	supervisor := NewSupervisor(log, nil, time.Millisecond)
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	req.Eventually(func() bool {
		return worker.runs.Load() == 1
	}, 2*time.Second, 5*time.Millisecond)

	supervisor.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
