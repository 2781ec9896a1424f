package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/contract"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
)

// EventFanout broadcasts domain events to the registered presentation
// sinks (console, tests, future GUIs).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across sinks, durability, or retries. EventFanout is not a
// message broker. A slow sink is cut off by the per-delivery timeout so
// the core is never blocked on presentation responsiveness.
type EventFanout struct {
	log         *slog.Logger
	events      chan event.DomainEvent
	sinkTimeout time.Duration
	sinks       []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, events: events, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// fanout delivers one event to every sink, one sink at a time.
// Sink errors are logged and isolated.
func (w *EventFanout) fanout(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.sinks {
		deliveryCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(deliveryCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "event", evt.Name(), "err", err)
		}
		cancel()
	}
}
