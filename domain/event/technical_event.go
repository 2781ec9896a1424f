package event

import "time"

type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	HealthSampleType        Type = "HEALTH_SAMPLE"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
)

// Event is the envelope for technical/telemetry events flowing between
// workers. Domain events use the DomainEvent interface instead.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

// HealthSample is a periodic snapshot of the server process and the
// live roster, produced by the health monitoring worker.
type HealthSample struct {
	RosterSize int
	CPUPercent float64
	RSSBytes   uint64
}

// ChannelCapacity is a periodic sample of one internal channel's fill
// level, used to spot backpressure before events start dropping.
type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}
