package main

// Config defines the student-side environment variables.
type Config struct {
	ServerAddress string `env:"CLASS_SERVER_ADDR,default=localhost:5000"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}
