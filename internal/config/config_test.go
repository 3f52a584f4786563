package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("MONNAS_JWT_SECRET", "test-secret")
	t.Setenv("MONNAS_ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("MONNAS_DB_PASSWORD", "s3cret")
}

func TestLoad_Defaults(t *testing.T) {
	setSecrets(t)
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "monnas"
dbname = "monnas"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, domain.PolicyPendingOnly, cfg.PublicPolicy())
	assert.Equal(t, domain.PolicyAllStatuses, cfg.AdminPolicy())
	assert.True(t, cfg.ConflictCheckEnabled())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
	assert.Equal(t, time.Minute, cfg.TickInterval())
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location().String())

	public, err := cfg.PublicSlots()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPublicSlots, public)
	assert.Len(t, cfg.Services().All(), len(domain.DefaultServices))

	rules, err := cfg.BookingRules()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBookingRules(), rules)
}

func TestLoad_Overrides(t *testing.T) {
	setSecrets(t)
	path := writeConfig(t, `
[availability]
public_policy = "all_statuses"

[booking]
conflict_check = false

[catalog]
public_slots = ["09:00", "10:00:00"]

[[catalog.services]]
id = "cosmetologia"
name = "Cosmetología"
price = 50000
channels = ["public"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PolicyAllStatuses, cfg.PublicPolicy())
	assert.False(t, cfg.ConflictCheckEnabled())

	public, err := cfg.PublicSlots()
	require.NoError(t, err)
	assert.Equal(t, domain.SlotCatalog{types.TimeString("09:00"), types.TimeString("10:00")}, public)

	services := cfg.Services()
	s, ok := services.Get("cosmetologia")
	require.True(t, ok)
	assert.Equal(t, int64(50000), s.Price)
	assert.Empty(t, services.ForChannel(domain.ChannelAdmin))
}

func TestLoad_Invalid(t *testing.T) {
	setSecrets(t)

	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown policy", content: "[availability]\nadmin_policy = \"sometimes\"\n"},
		{name: "bad slot", content: "[catalog]\nadmin_slots = [\"9am\"]\n"},
		{name: "duplicate slot", content: "[catalog]\nadmin_slots = [\"09:00\", \"09:00\"]\n"},
		{name: "bad timezone", content: "[server]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "bad channel", content: "[[catalog.services]]\nid = \"x\"\nname = \"X\"\nchannels = [\"phone\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("MONNAS_JWT_SECRET", "")
	t.Setenv("MONNAS_ADMIN_PASSWORD_HASH", "")
	os.Unsetenv("MONNAS_JWT_SECRET")
	os.Unsetenv("MONNAS_ADMIN_PASSWORD_HASH")

	_, err := Load(writeConfig(t, ""))
	require.Error(t, err)
}
