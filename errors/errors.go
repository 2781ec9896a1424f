package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrEmptyWords           = fmt.Errorf("no words have been found")
	ErrServerAlreadyRunning = fmt.Errorf("server already running")
	ErrServerNotRunning     = fmt.Errorf("server not running")
	ErrDuplicateID          = fmt.Errorf("uid already registered")
	ErrNotConnected         = fmt.Errorf("student not connected")
	ErrNoTarget             = fmt.Errorf("no target selected for private message")
	ErrHandshakeIncomplete  = fmt.Errorf("connection closed before handshake completed")
)
