//go:build integration

package settings

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/monnas-booking/internal/domain"
)

func TestRepository_GetSave(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer client.Close()

	repo := NewRepository(client)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationSettings(), got)

	changed := domain.DefaultNotificationSettings()
	changed.ReminderMinutes = 60
	changed.Sound = false
	require.NoError(t, repo.Save(ctx, changed))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, changed, got)

	require.NoError(t, client.Set(ctx, Key, "{broken", 0).Err())
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrDecodeSettings)
}
