package admin_session

import (
	"time"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// SessionResponse состояние текущей сессии администратора.
// Панель по RemainingSeconds планирует выход по истечении сессии.
type SessionResponse struct {
	ID               string    `json:"id"`
	IssuedAt         time.Time `json:"issuedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

func fromDomainSession(s domain.AdminSession, now time.Time) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		IssuedAt:         s.IssuedAt,
		ExpiresAt:        s.ExpiresAt,
		RemainingSeconds: int64(s.Remaining(now) / time.Second),
	}
}
