package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/mocks"
)

func TestEventFanout_DeliversToEverySink(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	events := make(chan event.DomainEvent, 4)
	fanout := NewEventFanout(log, events, time.Second)

	delivered := make(chan string, 4)
	first := mocks.NewMockEventSink(ctrl)
	second := mocks.NewMockEventSink(ctrl)
	first.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt event.DomainEvent) error {
			delivered <- "first:" + evt.Name()
			return nil
		})
	second.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt event.DomainEvent) error {
			delivered <- "second:" + evt.Name()
			return nil
		})
	fanout.Add(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.StudentJoined{}

	// Sinks are served in registration order
	req.Equal("first:STUDENT_JOINED", receiveOrFail(t, delivered))
	req.Equal("second:STUDENT_JOINED", receiveOrFail(t, delivered))
}

func TestEventFanout_SinkErrorIsIsolated(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	events := make(chan event.DomainEvent, 4)
	fanout := NewEventFanout(log, events, time.Second)

	delivered := make(chan string, 4)
	broken := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)
	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(fmt.Errorf("sink down"))
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt event.DomainEvent) error {
			delivered <- evt.Name()
			return nil
		})
	fanout.Add(broken, healthy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.ServerStopped{}

	// The failure of the first sink does not starve the second
	req.Equal("SERVER_STOPPED", receiveOrFail(t, delivered))
}

func receiveOrFail(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sink delivery")
		return ""
	}
}
