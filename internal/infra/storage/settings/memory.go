package settings

import (
	"context"
	"sync"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// MemoryRepository хранит настройки в памяти процесса, когда Redis выключен
type MemoryRepository struct {
	mu       sync.RWMutex
	settings domain.NotificationSettings
}

// NewMemoryRepository создает репозиторий с настройками по умолчанию
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{settings: domain.DefaultNotificationSettings()}
}

func (r *MemoryRepository) Get(_ context.Context) (domain.NotificationSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *MemoryRepository) Save(_ context.Context, settings domain.NotificationSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}
