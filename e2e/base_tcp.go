package e2e

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseTCPSuite connects to a live teacher server over the newline
// protocol and offers step helpers for scenario tests.
type BaseTCPSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseTCPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerAddr == "" {
		s.T().Skip("CLASS_SERVER_ADDR not set, skipping e2e suite")
	}
}

// Step prints a colorized header so scenario output reads as a script
func (s *BaseTCPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// StudentConn is a raw wire-level connection to the server, useful for
// probing the protocol below the client library.
type StudentConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (s *BaseTCPSuite) DialStudent() *StudentConn {
	conn, err := net.Dial("tcp", s.Config.ServerAddr)
	s.Require().NoError(err, "Failed to connect to server at "+s.Config.ServerAddr)
	s.T().Cleanup(func() { _ = conn.Close() })
	return &StudentConn{conn: conn, reader: bufio.NewReader(conn)}
}

func (c *StudentConn) SendLine(line string) error {
	_, err := fmt.Fprintf(c.conn, "%s\n", line)
	return err
}

// ReadLine waits up to timeout for one server line, without the
// trailing newline.
func (c *StudentConn) ReadLine(timeout time.Duration) (string, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return line[:len(line)-1], nil
}

func (c *StudentConn) Close() error {
	return c.conn.Close()
}
