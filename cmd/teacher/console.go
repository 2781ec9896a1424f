package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/domain/event"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/runtime"
)

const entryTimeLayout = "2006-01-02 15:04:05"

// console is the teacher's presentation layer: it renders core events
// and turns typed commands into controller calls. The core never waits
// on it; events arrive through the fan-out worker.
type console struct {
	log        *slog.Logger
	controller *runtime.Controller
	addr       string
	out        io.Writer
}

func newConsole(log *slog.Logger, controller *runtime.Controller, addr string, out io.Writer) *console {
	return &console{log: log, controller: controller, addr: addr, out: out}
}

// Consume implements contract.EventSink.
func (c *console) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ServerStarted:
		c.system(fmt.Sprintf("Server started on %s. Waiting for students...", evt.Addr))
	case event.ServerStopped:
		c.system("Server stopped. All clients disconnected.")
	case event.StudentJoined:
		c.printLine(color.New(color.FgGreen).Render(
			fmt.Sprintf("%s joined.", evt.Student.Display())))
	case event.StudentLeft:
		c.printLine(color.New(color.FgYellow).Render(
			fmt.Sprintf("%s left the class.", evt.Student.Display())))
	case event.MessageReceived:
		c.printLine(fmt.Sprintf("%s: %s", evt.From.Display(), evt.Message.Content))
	case event.AttendanceChanged:
		c.system(fmt.Sprintf("Attendance updated (%d present).", len(evt.Records)))
	}
	return nil
}

// Loop reads teacher commands from stdin until /quit, EOF, or ctx
// cancellation (checked between commands).
func (c *console) Loop(ctx context.Context) {
	c.printHelp()
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !c.dispatch(line) {
			return
		}
	}
}

// dispatch runs one command; returns false when the console must exit.
func (c *console) dispatch(line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch strings.ToLower(command) {
	case "/start":
		if err := c.controller.Start(c.addr); err != nil {
			c.errorLine(err)
		}
	case "/stop":
		if err := c.controller.Stop(); err != nil {
			c.errorLine(err)
		}
	case "/group":
		c.handleGroup(args)
	case "/send":
		if len(args) < 2 {
			c.system("Usage: /send <uid> <message>")
			return true
		}
		if err := c.controller.SendFromTeacher(strings.Join(args[1:], " "), args[0]); err != nil {
			c.errorLine(err)
		}
	case "/broadcast":
		if len(args) == 0 {
			c.system("Usage: /broadcast <message>")
			return true
		}
		if err := c.controller.SendFromTeacher(strings.Join(args, " "), ""); err != nil {
			c.errorLine(err)
		}
	case "/attendance":
		c.renderAttendance(c.controller.Attendance())
	case "/who":
		c.renderRoster(c.controller.Students())
	case "/reset":
		c.controller.ResetAttendance()
		c.system("Attendance list has been reset.")
	case "/help":
		c.printHelp()
	case "/quit":
		return false
	default:
		c.system(fmt.Sprintf("Unknown command %q, try /help", command))
	}
	return true
}

func (c *console) handleGroup(args []string) {
	if len(args) != 1 {
		c.system("Usage: /group on|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		c.controller.SetGroupChat(true)
		c.system("Group Chat ENABLED.")
	case "off":
		c.controller.SetGroupChat(false)
		c.system("Group Chat DISABLED.")
	default:
		c.system("Usage: /group on|off")
	}
}

func (c *console) renderAttendance(records []domain.AttendanceRecord) {
	if len(records) == 0 {
		c.system("No students are marked present yet.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Name", "UID", "Present At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, record := range records {
		table.Append([]string{record.DisplayName, record.ID, record.At.Format(entryTimeLayout)})
	}
	table.Render()
}

func (c *console) renderRoster(students []domain.Student) {
	if len(students) == 0 {
		c.system("No students connected.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Name", "UID"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, student := range students {
		table.Append([]string{student.DisplayName, student.NormalizedID})
	}
	table.Render()
}

func (c *console) printHelp() {
	c.printLine("Commands: /start /stop /group on|off /send <uid> <text> " +
		"/broadcast <text> /attendance /who /reset /help /quit")
}

func (c *console) system(msg string) {
	c.printLine(color.New(color.FgCyan).Render("[SYSTEM] " + msg))
}

func (c *console) errorLine(err error) {
	c.printLine(color.New(color.FgRed).Render(err.Error()))
}

func (c *console) printLine(line string) {
	fmt.Fprintln(c.out, line)
}
