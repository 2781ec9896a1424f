package event

import (
	"fmt"
	"log/slog"
)

// HealthSampleHandler logs periodic process/roster samples.
type HealthSampleHandler struct {
	log *slog.Logger
}

func NewHealthSampleHandler(log *slog.Logger) *HealthSampleHandler {
	return &HealthSampleHandler{log: log}
}

func (h HealthSampleHandler) Handle(event Event) {
	switch event.Type {
	case HealthSampleType:
		payload, ok := event.Payload.(HealthSample)
		if !ok {
			h.log.Error("unexpected payload for health sample event")
			return
		}
		h.log.Debug(fmt.Sprintf("[HEALTH] students %d | CPU %.2f%% | RSS %d bytes",
			payload.RosterSize, payload.CPUPercent, payload.RSSBytes))
	}
}
