package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationSettings(), got)

	custom := domain.DefaultNotificationSettings()
	custom.ReminderMinutes = 15
	custom.Sound = false
	require.NoError(t, repo.Save(ctx, custom))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
