package event

import (
	"fmt"
	"log/slog"
)

// ChannelCapacityHandler logs channel fill samples and warns when a
// channel is close to saturation.
type ChannelCapacityHandler struct {
	log *slog.Logger
}

func NewChannelCapacityHandler(log *slog.Logger) *ChannelCapacityHandler {
	return &ChannelCapacityHandler{log: log}
}

func (h ChannelCapacityHandler) Handle(event Event) {
	switch event.Type {
	case ChannelCapacityType:
		payload, ok := event.Payload.(ChannelCapacity)
		if !ok {
			h.log.Error("unexpected payload for channel capacity event")
			return
		}
		msg := fmt.Sprintf("[CHANNEL] %s %d/%d",
			payload.ChannelName, payload.Length, payload.Capacity)
		if payload.Capacity > 0 && payload.Length*10 >= payload.Capacity*9 {
			h.log.Warn(msg + " (near saturation)")
			return
		}
		h.log.Debug(msg)
	}
}
