package cmd_test

import (
	"log/slog"
	"testing"

	"dispatch/cmd"
	"dispatch/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	var c cmd.Config

	assert.Equal(t, jobs.DefaultRebalanceSchedule, c.Schedule())
	assert.Equal(t, "dispatch.audit", c.AuditTopic())
	assert.Empty(t, c.KafkaBrokers())
	assert.Equal(t, slog.LevelInfo, c.Level())

	loc, err := c.Location()
	require.NoError(t, err)
	assert.NotNil(t, loc)
}

func TestConfig_KafkaBrokers(t *testing.T) {
	c := cmd.Config{KafkaHost: "kafka-1:9092, kafka-2:9092,,"}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.KafkaBrokers())
}

func TestConfig_Location(t *testing.T) {
	loc, err := cmd.Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = cmd.Config{Timezone: "Mars/Olympus"}.Location()
	require.ErrorContains(t, err, "invalid TIMEZONE")
}

func TestConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, cmd.Config{LogLevel: "debug"}.Level())
	assert.Equal(t, slog.LevelWarn, cmd.Config{LogLevel: "WARN"}.Level())
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "chatty"}.Level())
}

func TestConfig_DSN(t *testing.T) {
	c := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "dispatch", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=dispatch sslmode=disable", c.DSN())
}
