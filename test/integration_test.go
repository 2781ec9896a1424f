package test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/attendance"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/client"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/mocks"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/moderation"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/runtime"
)

// lineCollector gathers every server line a client receives.
type lineCollector struct {
	mu    sync.Mutex
	lines []string
}

func (lc *lineCollector) add(line string) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.lines = append(lc.lines, line)
}

func (lc *lineCollector) contains(want string) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	for _, line := range lc.lines {
		if line == want {
			return true
		}
	}
	return false
}

func Test_ClassSessionScenario(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	req.NoError(err)

	roster := runtime.NewRoster()
	router := runtime.NewRouter(log, roster)
	attendanceLog := attendance.NewLog(t.TempDir()+"/attendance.txt", log)
	controller := runtime.NewController(log, roster, router, attendanceLog, moderator,
		64, time.Second, time.Minute, 200*time.Millisecond)

	// 1. Create channels to wait for the events this scenario must produce
	joined := make(chan struct{})
	messaged := make(chan struct{})
	left := make(chan struct{})
	var joinedOnce, messagedOnce, leftOnce sync.Once

	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt event.DomainEvent) error {
			switch evt.(type) {
			case event.StudentJoined:
				joinedOnce.Do(func() { close(joined) })
			case event.MessageReceived:
				messagedOnce.Do(func() { close(messaged) })
			case event.StudentLeft:
				leftOnce.Do(func() { close(left) })
			}
			return nil
		}).AnyTimes()
	controller.Add(sink)

	go controller.Run(ctx)

	req.NoError(controller.Start("127.0.0.1:0"))
	t.Cleanup(func() {
		if controller.IsRunning() {
			_ = controller.Stop()
		}
	})
	controller.SetGroupChat(true)

	// When Alice registers through the student client
	alice, err := client.Dial(controller.Addr(), log)
	req.NoError(err)
	notice, err := alice.Register("Alice", "std1")
	req.NoError(err)
	req.Equal("Alice (STD1) marked as PRESENT.", notice)

	aliceLines := &lineCollector{}
	go func() { _ = alice.Listen(aliceLines.add) }()

	waitOrFail(t, joined, "student joined event never reached the sink")

	// And a second student under the same uid is turned away
	impostor, err := client.Dial(controller.Addr(), log)
	req.NoError(err)
	_, err = impostor.Register("Mallory", "STD1")
	req.ErrorIs(err, errors.ErrDuplicateID)
	_ = impostor.Close()

	// And Bob joins and posts a line that needs censoring
	bob, err := client.Dial(controller.Addr(), log)
	req.NoError(err)
	_, err = bob.Register("Bob", "std2")
	req.NoError(err)
	bobLines := &lineCollector{}
	go func() { _ = bob.Listen(bobLines.add) }()

	req.NoError(bob.Send("release the badger"))
	waitOrFail(t, messaged, "message event never reached the sink")

	// Then the whole class, sender included, sees the censored line
	relayed := "Bob (STD2): release the ******"
	req.Eventually(func() bool {
		return aliceLines.contains(relayed) && bobLines.contains(relayed)
	}, 2*time.Second, 10*time.Millisecond)

	// When Bob leaves, Alice is told and the attendance is untouched
	req.NoError(bob.Leave())
	waitOrFail(t, left, "student left event never reached the sink")
	req.Eventually(func() bool {
		return aliceLines.contains("Bob (STD2) left the class.")
	}, 2*time.Second, 10*time.Millisecond)

	records := controller.Attendance()
	req.Len(records, 2)
	req.Equal("STD1", records[0].ID)
	req.Equal("STD2", records[1].ID)

	// And stopping the class notifies the remaining student
	req.NoError(controller.Stop())
	req.Eventually(func() bool {
		return aliceLines.contains("Server stopped by teacher.")
	}, 2*time.Second, 10*time.Millisecond)
}

func waitOrFail(t *testing.T, ch chan struct{}, message string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Timeout: "+message)
	}
}
