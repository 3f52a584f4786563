package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// Key ключ, под которым хранятся настройки уведомлений
const Key = "monnas:notification_settings"

// Repository хранит настройки уведомлений администратора в Redis
type Repository struct {
	client redis.Cmdable
}

// NewRepository создает репозиторий настроек
func NewRepository(client redis.Cmdable) *Repository {
	return &Repository{client: client}
}

// Get возвращает сохраненные настройки или значения по умолчанию, если ничего не сохранено
func (r *Repository) Get(ctx context.Context) (domain.NotificationSettings, error) {
	raw, err := r.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultNotificationSettings(), nil
	}
	if err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("%w: Get: %v", ErrReadSettings, err)
	}

	settings := domain.DefaultNotificationSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.NotificationSettings{}, fmt.Errorf("%w: Get: %v", ErrDecodeSettings, err)
	}
	return settings, nil
}

// Save сохраняет настройки без срока жизни
func (r *Repository) Save(ctx context.Context, settings domain.NotificationSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrWriteSettings, err)
	}

	if err := r.client.Set(ctx, Key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrWriteSettings, err)
	}
	return nil
}
