package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/jobs"
)

const defaultAuditTopic = "dispatch.audit"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	KafkaHost         string
	KafkaAuditTopic   string
	RebalanceSchedule string
	Timezone          string
	LogLevel          string
	CatalogSeedFile   string
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Location is the time zone whose calendar date is "today" for the fleet.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means audit events are not published.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) AuditTopic() string {
	if c.KafkaAuditTopic == "" {
		return defaultAuditTopic
	}
	return c.KafkaAuditTopic
}

func (c Config) Schedule() string {
	if c.RebalanceSchedule == "" {
		return jobs.DefaultRebalanceSchedule
	}
	return c.RebalanceSchedule
}

// Level parses LOG_LEVEL, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
