package event

import (
	"time"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
)

// DomainEvent is what the core publishes to presentation sinks.
// The core never renders anything itself; a console, GUI, or test
// subscribes through contract.EventSink.
type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}

type StudentJoined struct {
	Student domain.Student
	At      time.Time
}

func (e StudentJoined) Name() string          { return "STUDENT_JOINED" }
func (e StudentJoined) OccurredAt() time.Time { return e.At }

type StudentLeft struct {
	Student domain.Student
	At      time.Time
}

func (e StudentLeft) Name() string          { return "STUDENT_LEFT" }
func (e StudentLeft) OccurredAt() time.Time { return e.At }

// MessageReceived is emitted for every non-command line a student
// sends, whether or not group chat relayed it to the class.
type MessageReceived struct {
	Message domain.Message
	From    domain.Student
	Group   bool
}

func (e MessageReceived) Name() string          { return "MESSAGE_RECEIVED" }
func (e MessageReceived) OccurredAt() time.Time { return e.Message.CreatedAt }

// AttendanceChanged carries a point-in-time copy of the attendance
// list, safe for the subscriber to keep.
type AttendanceChanged struct {
	Records []domain.AttendanceRecord
	At      time.Time
}

func (e AttendanceChanged) Name() string          { return "ATTENDANCE_CHANGED" }
func (e AttendanceChanged) OccurredAt() time.Time { return e.At }

type ServerStarted struct {
	Addr string
	At   time.Time
}

func (e ServerStarted) Name() string          { return "SERVER_STARTED" }
func (e ServerStarted) OccurredAt() time.Time { return e.At }

type ServerStopped struct {
	At time.Time
}

func (e ServerStopped) Name() string          { return "SERVER_STOPPED" }
func (e ServerStopped) OccurredAt() time.Time { return e.At }
