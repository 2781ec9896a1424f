package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/contract"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/moderation"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/runtime/workers"
)

// Controller owns the listening socket, the accept loop, the group-chat
// flag, and the start/stop lifecycle. It composes the roster, the
// router, and the attendance log, and publishes domain events for the
// presentation layer.
type Controller struct {
	mu         sync.Mutex
	log        *slog.Logger
	roster     contract.IRoster
	router     contract.IRouter
	attendance contract.IAttendance
	moderator  *moderation.Moderator // nil when moderation is off

	running   bool
	groupChat bool
	listener  net.Listener
	sessionWG sync.WaitGroup
	// conns tracks every accepted connection, registered or not, so
	// Stop can unblock sessions still mid-handshake.
	conns map[net.Conn]struct{}

	events          chan event.DomainEvent
	telemetry       chan event.Event
	sinks           []contract.EventSink
	sinkTimeout     time.Duration
	metricInterval  time.Duration
	restartInterval time.Duration
}

func NewController(
	log *slog.Logger,
	roster *Roster,
	router *Router,
	attendanceLog contract.IAttendance,
	moderator *moderation.Moderator,
	bufferSize int,
	sinkTimeout, metricInterval, restartInterval time.Duration,
) *Controller {
	c := &Controller{
		log:             log,
		roster:          roster,
		router:          router,
		attendance:      attendanceLog,
		moderator:       moderator,
		conns:           make(map[net.Conn]struct{}),
		events:          make(chan event.DomainEvent, bufferSize),
		telemetry:       make(chan event.Event, bufferSize),
		sinkTimeout:     sinkTimeout,
		metricInterval:  metricInterval,
		restartInterval: restartInterval,
	}

	// A peer whose send failed during a broadcast is gone: free its
	// slot immediately so the uid can register again.
	router.OnDeliveryFailure(func(peer contract.Peer) {
		roster.Remove(peer.Student().NormalizedID)
		_ = peer.Close()
	})
	return c
}

// Add registers presentation sinks. Must be called before Run.
func (c *Controller) Add(sinks ...contract.EventSink) {
	c.sinks = append(c.sinks, sinks...)
}

// Run starts the supervised background workers (event fan-out,
// telemetry, health and channel monitoring) and blocks until ctx is
// canceled. The
// listener lifecycle is separate: Start and Stop may be called any
// number of times while Run is alive.
func (c *Controller) Run(ctx context.Context) error {
	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewWorkerRestartedAfterPanicHandler(c.log, counter),
		event.NewHealthSampleHandler(c.log),
		event.NewChannelCapacityHandler(c.log),
	}

	watched := []workers.NamedChannel{
		{Name: "domain-events", Channel: c.events},
		{Name: "telemetry", Channel: c.telemetry},
	}

	supervisor := workers.NewSupervisor(c.log, c.telemetry, c.restartInterval)
	supervisor.Add(
		workers.NewEventFanout(c.log, c.events, c.sinkTimeout).Add(c.sinks...),
		workers.NewTelemetryWorker(c.log, c.telemetry, handlers),
		workers.NewHealthMonitoring(c.log, c.roster, c.telemetry, c.metricInterval),
		workers.NewChannelCapacityWorker(c.log, watched, c.telemetry, c.metricInterval),
	)
	supervisor.Run(ctx)
	return nil
}

// Start binds the listening socket and launches the accept loop.
// Nothing is mutated when the bind fails.
func (c *Controller) Start(addr string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return errors.ErrServerAlreadyRunning
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("could not start server on %s: %w", addr, err)
	}

	c.listener = listener
	c.running = true
	c.attendance.StartSession()
	c.publish(event.ServerStarted{Addr: listener.Addr().String(), At: time.Now()})

	c.sessionWG.Add(1)
	go c.acceptLoop(listener)

	c.log.Info("Server started", "addr", listener.Addr().String())
	return nil
}

// acceptLoop blocks on Accept and spawns one session goroutine per
// connection. Closing the listener is the designed cancellation path:
// the blocked Accept fails and, with running false, the loop returns.
func (c *Controller) acceptLoop(listener net.Listener) {
	defer c.sessionWG.Done()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if !c.IsRunning() {
				return
			}
			c.log.Warn("Error accepting connection", "err", err)
			continue
		}

		c.trackConn(conn)
		session := newSession(conn, c, c.log)
		c.sessionWG.Add(1)
		go func() {
			defer c.sessionWG.Done()
			defer c.untrackConn(conn)
			session.run()
		}()
	}
}

// Stop closes the listener, notifies and disconnects every registered
// session, clears the roster and the in-memory attendance (the durable
// file is untouched), and resets the group-chat flag.
func (c *Controller) Stop() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return errors.ErrServerNotRunning
	}
	c.running = false
	c.groupChat = false
	listener := c.listener
	c.listener = nil
	c.mu.Unlock()

	_ = listener.Close()

	for _, peer := range c.roster.Clear() {
		_ = peer.Send(noticeServerStopped)
		_ = peer.Close()
	}

	// Connections still mid-handshake never made it into the roster;
	// close them too or their sessions would block the Wait below.
	c.mu.Lock()
	for conn := range c.conns {
		_ = conn.Close()
	}
	c.mu.Unlock()

	c.attendance.ClearMemory()
	c.publish(event.ServerStopped{At: time.Now()})

	// In-flight session reads fail once their connections are closed.
	c.sessionWG.Wait()
	c.log.Info("Server stopped, all clients disconnected")
	return nil
}

// trackConn registers an accepted connection for forced close on Stop.
// A connection whose accept raced a Stop is closed on the spot, so its
// session fails its first read and exits instead of outliving the
// server.
func (c *Controller) trackConn(conn net.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		_ = conn.Close()
		return
	}
	c.conns[conn] = struct{}{}
}

func (c *Controller) untrackConn(conn net.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.conns, conn)
}

// Addr returns the bound listen address, or "" when stopped. Useful
// when starting on port 0.
func (c *Controller) Addr() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listener == nil {
		return ""
	}
	return c.listener.Addr().String()
}

func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SetGroupChat flips the class-wide broadcast flag. Only lines
// processed after the flip are affected; nothing is replayed.
func (c *Controller) SetGroupChat(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groupChat = enabled
}

func (c *Controller) GroupChatEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groupChat
}

// SendFromTeacher routes a teacher line: broadcast when group chat is
// on, private to targetID otherwise.
func (c *Controller) SendFromTeacher(text, targetID string) error {
	if !c.IsRunning() {
		return errors.ErrServerNotRunning
	}

	if c.GroupChatEnabled() {
		c.router.BroadcastToAll(fmt.Sprintf("Teacher: %s", text))
		return nil
	}
	if targetID == "" {
		return errors.ErrNoTarget
	}
	return c.router.SendPrivate(domain.NormalizeID(targetID),
		fmt.Sprintf("Teacher (private): %s", text))
}

// ResetAttendance clears the in-memory records, deletes the durable
// file, and tells the class.
func (c *Controller) ResetAttendance() {
	c.attendance.Reset()
	c.router.BroadcastToAll("Attendance list has been reset by the teacher.")
	c.publishAttendance()
}

// Attendance returns the current session's records for display.
func (c *Controller) Attendance() []domain.AttendanceRecord {
	return c.attendance.List()
}

// Students returns the connected students in join order.
func (c *Controller) Students() []domain.Student {
	return lo.Map(c.roster.Snapshot(), func(peer contract.Peer, _ int) domain.Student {
		return peer.Student()
	})
}

// publish hands an event to the fan-out worker without ever blocking
// the core; a full channel drops the event with a warning.
func (c *Controller) publish(e event.DomainEvent) {
	select {
	case c.events <- e:
	default:
		c.log.Warn("Event channel full, dropping event", "event", e.Name())
	}
}

func (c *Controller) publishAttendance() {
	c.publish(event.AttendanceChanged{Records: c.attendance.List(), At: time.Now()})
}

// censor applies moderation to a group-chat line when configured.
func (c *Controller) censor(line string) string {
	if c.moderator == nil {
		return line
	}
	return c.moderator.Censor(line)
}
