package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "restaurant"

[restaurant]
opening_time = "11:00"
last_start_time = "21:30"
timezone = "Europe/Moscow"

[rabbitmq]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "11:00", cfg.Restaurant.OpeningTime)
	assert.Equal(t, "reservations", cfg.RabbitMQ.Exchange)
	assert.False(t, cfg.Redis.Enabled)

	loc, err := cfg.Restaurant.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Restaurant, cfg.Restaurant)
}

func TestLoad_SecretsFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("RABBITMQ_URL", "amqp://user:pass@mq:5672/")
	t.Setenv("REDIS_PASSWORD", "r3dis")

	cfg, err := Load(writeConfig(t, `
[database]
password = "from-file"
`))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "amqp://user:pass@mq:5672/", cfg.RabbitMQ.URL)
	assert.Equal(t, "r3dis", cfg.Redis.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed toml", "[server\nhttp_port = 1"},
		{"bad opening time", "[restaurant]\nopening_time = \"25:00\""},
		{"last start before opening", "[restaurant]\nopening_time = \"12:00\"\nlast_start_time = \"11:00\""},
		{"unknown timezone", "[restaurant]\ntimezone = \"Mars/Olympus\""},
		{"exchange required", "[rabbitmq]\nenabled = true\nexchange = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
