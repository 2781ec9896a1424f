package main

import (
	"bufio"
	goerrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/client"
	"github.com/gautamsinghkgs/RealTime-Chat-And-Attendance-System/errors"
)

// Exit codes for the client application.
const (
	exitOK        = 0
	exitRuntime   = 1
	exitConfig    = 2
	exitDuplicate = 3
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the connection lifecycle: configuration, handshake,
// server listener, and the stdin send loop.
func run() (int, error) {
	name := flag.String("name", "", "display name")
	uid := flag.String("uid", "", "unique identifier")
	flag.Parse()

	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	stdin := bufio.NewScanner(os.Stdin)
	displayName := promptIfEmpty(stdin, *name, "Enter Name: ")
	identifier := promptIfEmpty(stdin, *uid, "Enter UID: ")
	if displayName == "" || identifier == "" {
		return exitConfig, fmt.Errorf("both name and uid are required")
	}

	// 2. Connect and register.
	c, err := client.Dial(config.ServerAddress, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = c.Close()
	}()

	first, err := c.Register(displayName, identifier)
	if err != nil {
		if goerrors.Is(err, errors.ErrDuplicateID) {
			fmt.Println("UID already exists. Try again with a different UID.")
			return exitDuplicate, nil
		}
		return exitRuntime, err
	}
	fmt.Println(first)

	// 3. Print every server line as it arrives.
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Listen(func(line string) {
			fmt.Println(line)
		})
	}()

	// 4. Send stdin lines until /leave or EOF.
	for stdin.Scan() {
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "/leave") {
			_ = c.Leave()
			break
		}
		if err := c.Send(line); err != nil {
			return exitRuntime, fmt.Errorf("connection lost: %w", err)
		}
	}

	<-done
	return exitOK, nil
}

func promptIfEmpty(stdin *bufio.Scanner, value, prompt string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	fmt.Print(prompt)
	if !stdin.Scan() {
		return ""
	}
	return strings.TrimSpace(stdin.Text())
}
