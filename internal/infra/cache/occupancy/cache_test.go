package occupancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/types"
)

func TestKey(t *testing.T) {
	d := types.NewDate(2025, time.March, 10)
	assert.Equal(t, "monnas:occupancy:pending_only:2025-03-10", Key(domain.PolicyPendingOnly, d))
	assert.NotEqual(t, Key(domain.PolicyPendingOnly, d), Key(domain.PolicyAllStatuses, d))
}
