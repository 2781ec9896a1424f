package runtime

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
)

type SessionState int

const (
	StateConnecting SessionState = iota
	StateRegistering
	StateActive
	StateLeaving
	StateClosed
)

// Wire literals. Newline-delimited UTF-8; no machine framing beyond
// the UID_EXISTS rejection, which clients match on.
const (
	replyUIDExists      = "UID_EXISTS"
	replyInvalid        = "Invalid registration: name and uid are both required."
	replyPresent        = "You are marked as PRESENT in today's attendance."
	noticeServerStopped = "Server stopped by teacher."
	leaveCommand        = "/leave"
)

// Session handles one accepted connection: the two-line registration
// handshake, the message loop, and teardown. It implements
// contract.Peer once registered.
type Session struct {
	controller *Controller
	log        *slog.Logger
	conn       net.Conn

	writeMu sync.Mutex
	student domain.Student
	state   SessionState
}

func newSession(conn net.Conn, controller *Controller, log *slog.Logger) *Session {
	return &Session{
		controller: controller,
		log:        log,
		conn:       conn,
		state:      StateConnecting,
	}
}

func (s *Session) Student() domain.Student { return s.student }

// Send writes one line to the client. Serialized by a write mutex since
// the router, the teacher, and the session goroutine all deliver here.
func (s *Session) Send(line string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err := fmt.Fprintf(s.conn, "%s\n", line)
	return err
}

func (s *Session) Close() error {
	return s.conn.Close()
}

// run drives the session state machine to completion. It owns the
// connection: whatever path exits, the connection ends closed.
func (s *Session) run() {
	scanner := bufio.NewScanner(s.conn)

	registered := s.register(scanner)
	if !registered {
		s.state = StateClosed
		_ = s.conn.Close()
		return
	}

	s.messageLoop(scanner)
	s.teardown()
}

// register performs the handshake: read display name, then uid.
// Returns false when the session must close without any state mutation
// (peer hung up early, invalid input, duplicate uid).
func (s *Session) register(scanner *bufio.Scanner) bool {
	s.state = StateRegistering

	name, ok := readLine(scanner)
	if !ok {
		return false
	}
	uid, ok := readLine(scanner)
	if !ok {
		return false
	}

	req := domain.RegistrationRequest{
		Name: strings.TrimSpace(name),
		UID:  strings.TrimSpace(uid),
	}
	if err := domain.ValidateRegistration(req); err != nil {
		s.log.Debug("Registration rejected", "err", err)
		_ = s.Send(replyInvalid)
		return false
	}

	student := domain.NewStudent(req.Name, req.UID)

	// Check-and-insert is atomic inside the roster: no two concurrent
	// registrations with the same normalized uid can both pass.
	if !s.controller.roster.TryRegister(student.NormalizedID, s) {
		s.log.Info("Duplicate uid rejected", "uid", student.NormalizedID)
		_ = s.Send(replyUIDExists)
		return false
	}

	// Stop flips running before it clears the roster, so a registration
	// landing after the clear sees a stopped server here and backs out
	// instead of living on in a dead roster.
	if !s.controller.IsRunning() {
		s.controller.roster.Remove(student.NormalizedID)
		return false
	}

	s.student = student
	s.state = StateActive
	now := time.Now()

	s.controller.attendance.RecordPresent(student.DisplayName, student.ID, now)
	s.controller.publish(event.StudentJoined{Student: student, At: now})
	s.controller.publishAttendance()

	// Join notice goes to every session including this one; the direct
	// acknowledgment follows.
	s.controller.router.BroadcastToAll(fmt.Sprintf("%s marked as PRESENT.", student.Display()))
	_ = s.Send(replyPresent)

	s.log.Info("Student registered", "student", student.Display())
	return true
}

// messageLoop reads lines until end-of-stream, error, or /leave.
func (s *Session) messageLoop(scanner *bufio.Scanner) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, leaveCommand) {
			s.state = StateLeaving
			return
		}

		// The group-chat flag is read fresh per line, never snapshotted.
		group := s.controller.GroupChatEnabled()

		s.controller.publish(event.MessageReceived{
			Message: domain.NewMessage(s.student.NormalizedID, line),
			From:    s.student,
			Group:   group,
		})

		if group {
			s.controller.router.BroadcastToAll(
				fmt.Sprintf("%s: %s", s.student.Display(), s.controller.censor(line)))
		}
	}
	if err := scanner.Err(); err != nil {
		s.log.Debug("Connection lost", "student", s.student.Display(), "err", err)
	}
}

// teardown removes the session from the roster, closes the connection,
// and tells the class. Connection loss and explicit leave share this
// path; the departure notice is never suppressed.
func (s *Session) teardown() {
	s.controller.roster.Remove(s.student.NormalizedID)
	_ = s.conn.Close()
	s.state = StateClosed

	s.controller.router.BroadcastToAll(fmt.Sprintf("%s left the class.", s.student.Display()))
	s.controller.publish(event.StudentLeft{Student: s.student, At: time.Now()})
	s.log.Info("Student left", "student", s.student.Display())
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
