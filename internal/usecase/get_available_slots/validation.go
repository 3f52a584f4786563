package get_available_slots

import (
	"fmt"

	"github.com/m04kA/monnas-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Channel.IsValid() {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	// Исключение нужно только при редактировании, а редактирует только администратор
	if req.ExcludeID != nil {
		if req.Channel != domain.ChannelAdmin {
			return fmt.Errorf("%w: excludeId is only accepted in the admin panel", ErrInvalidInput)
		}
		if *req.ExcludeID <= 0 {
			return fmt.Errorf("%w: excludeId must be positive", ErrInvalidInput)
		}
	}

	return nil
}
