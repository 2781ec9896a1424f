// Package client implements the student side of the classroom wire
// protocol: a two-line registration handshake followed by free-text
// lines in both directions.
package client

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
)

const (
	replyUIDExists = "UID_EXISTS"
	leaveCommand   = "/leave"
)

type Client struct {
	log     *slog.Logger
	conn    net.Conn
	scanner *bufio.Scanner
}

func Dial(addr string, log *slog.Logger) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not connect to server at %s: %w", addr, err)
	}
	return &Client{log: log, conn: conn, scanner: bufio.NewScanner(conn)}, nil
}

// Register sends the handshake (display name, then uid) and waits for
// the server's first line. Returns errors.ErrDuplicateID when the uid
// is already taken; otherwise returns that first line, which is the
// join notice for the class.
func (c *Client) Register(name, uid string) (string, error) {
	if err := c.Send(name); err != nil {
		return "", err
	}
	if err := c.Send(uid); err != nil {
		return "", err
	}

	if !c.scanner.Scan() {
		return "", errors.ErrHandshakeIncomplete
	}
	first := c.scanner.Text()
	if strings.Contains(first, replyUIDExists) {
		return "", errors.ErrDuplicateID
	}
	return first, nil
}

// Listen delivers every subsequent server line to onLine until the
// connection closes.
func (c *Client) Listen(onLine func(line string)) error {
	for c.scanner.Scan() {
		onLine(c.scanner.Text())
	}
	return c.scanner.Err()
}

func (c *Client) Send(text string) error {
	_, err := fmt.Fprintf(c.conn, "%s\n", text)
	return err
}

// Leave requests graceful departure and closes the connection.
func (c *Client) Leave() error {
	if err := c.Send(leaveCommand); err != nil {
		c.log.Debug("Leave command not delivered", "err", err)
	}
	return c.conn.Close()
}

func (c *Client) Close() error {
	return c.conn.Close()
}
