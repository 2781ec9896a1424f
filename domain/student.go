// Package domain contains core concepts of the classroom system.
// This file defines the Student identity and its uniqueness key.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"strings"
)

// Student identifies a registered class member.
// ID keeps the casing the student typed; NormalizedID is the
// uniqueness key used by the roster.
type Student struct {
	DisplayName  string
	ID           string
	NormalizedID string
}

func NewStudent(name, id string) Student {
	return Student{
		DisplayName:  strings.TrimSpace(name),
		ID:           strings.TrimSpace(id),
		NormalizedID: NormalizeID(id),
	}
}

// NormalizeID folds an identifier to its uniqueness key.
// Case-insensitive comparison is done by upper-casing, matching the
// historical behavior of the attendance records.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Display is the roster label: "Name (UID)".
func (s Student) Display() string {
	return fmt.Sprintf("%s (%s)", s.DisplayName, s.NormalizedID)
}
