package domain

import "time"

// AttendanceRecord marks one student present for the current session.
type AttendanceRecord struct {
	DisplayName string
	ID          string
	At          time.Time
}
