package occupancy

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

const keyPrefix = "monnas:occupancy"

// Cache хранит последний известный снимок занятых слотов по дням.
// Снимок читается, только когда основное хранилище недоступно.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш снимков. ttl=0 хранит снимки бессрочно
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key возвращает ключ снимка для политики и даты
func Key(policy domain.OccupancyPolicy, date types.Date) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, policy, date)
}

// Save перезаписывает снимки переданных дней одним пайплайном.
// День без занятых слотов сохраняется как пустой список.
func (c *Cache) Save(ctx context.Context, policy domain.OccupancyPolicy, byDate map[types.Date][]domain.OccupiedSlot) error {
	if len(byDate) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for date, slots := range byDate {
		if slots == nil {
			slots = []domain.OccupiedSlot{}
		}
		raw, err := json.Marshal(slots)
		if err != nil {
			return fmt.Errorf("%w: Save - marshal %s: %v", ErrWriteSnapshot, date, err)
		}
		pipe.Set(ctx, Key(policy, date), raw, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrWriteSnapshot, err)
	}
	return nil
}

// Load читает снимки дней. Дни без снимка в результат не попадают
func (c *Cache) Load(ctx context.Context, policy domain.OccupancyPolicy, dates []types.Date) (map[types.Date][]domain.OccupiedSlot, error) {
	out := make(map[types.Date][]domain.OccupiedSlot, len(dates))
	if len(dates) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, Key(policy, d))
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Load: %v", ErrReadSnapshot, err)
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var slots []domain.OccupiedSlot
		if err := json.Unmarshal([]byte(s), &slots); err != nil {
			return nil, fmt.Errorf("%w: Load - decode %s: %v", ErrReadSnapshot, keys[i], err)
		}
		out[dates[i]] = slots
	}
	return out, nil
}
