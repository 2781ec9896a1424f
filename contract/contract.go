//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes domain events on behalf of a presentation layer.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Peer is a registered connection the router can deliver lines to.
// Sessions implement it; tests substitute fakes.
type Peer interface {
	Student() domain.Student
	Send(line string) error
	Close() error
}

type IRoster interface {
	TryRegister(normalizedID string, peer Peer) bool
	Remove(normalizedID string)
	Lookup(normalizedID string) (Peer, bool)
	Snapshot() []Peer
	Size() int
	Clear() []Peer
}

type IRouter interface {
	BroadcastToAll(line string)
	SendPrivate(normalizedID, line string) error
}

type IAttendance interface {
	StartSession()
	RecordPresent(name, id string, at time.Time) bool
	Reset()
	ClearMemory()
	List() []domain.AttendanceRecord
}
