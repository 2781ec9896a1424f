package main

import "time"

type Config struct {
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=5000"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	AttendanceFile    string        `env:"ATTENDANCE_FILE,default=attendance.txt"`
	CensoredWordsFile *string       `env:"CENSORED_WORDS_FILE"`
	CensoredChar      string        `env:"CENSORED_CHARACTER,default=*"`
	BufferSize        int           `env:"BUFFER_SIZE,default=256"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s"`
	MetricInterval    time.Duration `env:"METRIC_INTERVAL,default=30s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}
