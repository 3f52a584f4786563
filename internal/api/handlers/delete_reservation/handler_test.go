package delete_reservation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/delete_reservation"
	"github.com/m04kA/monnas-booking/internal/api/handlers/delete_reservation/mocks"
	"github.com/m04kA/monnas-booking/internal/service/reservations"
)

func request(id string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/reservations/"+id, nil)
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		refresh bool
		want    int
	}{
		{name: "deleted", refresh: true, want: http.StatusNoContent},
		{name: "not found", err: reservations.ErrReservationNotFound, want: http.StatusNotFound},
		{name: "storage failure", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReservationService(ctrl)
			notifications := mocks.NewMockNotificationCenter(ctrl)

			service.EXPECT().Delete(gomock.Any(), int64(42)).Return(tt.err)
			if tt.refresh {
				notifications.EXPECT().Refresh(gomock.Any()).Return(nil)
			}

			rec := httptest.NewRecorder()
			handler.NewHandler(service, notifications, nopLogger{}).Handle(rec, request("42"))

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
