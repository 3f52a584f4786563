package confirm_reservation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/confirm_reservation"
	"github.com/m04kA/monnas-booking/internal/api/handlers/confirm_reservation/mocks"
	"github.com/m04kA/monnas-booking/internal/service/reservations"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
)

func request(id string) *http.Request {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/"+id+"/confirm", nil)
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHandle_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReservationService(ctrl)
	notifications := mocks.NewMockNotificationCenter(ctrl)

	service.EXPECT().Confirm(gomock.Any(), int64(42)).
		Return(&models.ReservationResponse{ID: 42, Status: "confirmed"}, nil)
	notifications.EXPECT().Refresh(gomock.Any()).Return(errors.New("refresh failed"))

	rec := httptest.NewRecorder()
	handler.NewHandler(service, notifications, nopLogger{}).Handle(rec, request("42"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReservationService(ctrl)
	notifications := mocks.NewMockNotificationCenter(ctrl)

	service.EXPECT().Confirm(gomock.Any(), int64(42)).Return(nil, reservations.ErrReservationNotFound)

	rec := httptest.NewRecorder()
	handler.NewHandler(service, notifications, nopLogger{}).Handle(rec, request("42"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	handler.NewHandler(mocks.NewMockReservationService(ctrl), mocks.NewMockNotificationCenter(ctrl), nopLogger{}).
		Handle(rec, request("0"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
