package get_reservation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	handler "github.com/m04kA/monnas-booking/internal/api/handlers/get_reservation"
	"github.com/m04kA/monnas-booking/internal/api/handlers/get_reservation/mocks"
	"github.com/m04kA/monnas-booking/internal/service/reservations"
	"github.com/m04kA/monnas-booking/internal/service/reservations/models"
)

func request(id string) *http.Request {
	return mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/"+id, nil), map[string]string{"id": id})
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		setup func(m *mocks.MockReservationService)
		want  int
	}{
		{
			name: "found",
			id:   "42",
			setup: func(m *mocks.MockReservationService) {
				m.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&models.ReservationResponse{ID: 42}, nil)
			},
			want: http.StatusOK,
		},
		{
			name: "not found",
			id:   "43",
			setup: func(m *mocks.MockReservationService) {
				m.EXPECT().GetByID(gomock.Any(), int64(43)).Return(nil, reservations.ErrReservationNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name: "storage failure",
			id:   "44",
			setup: func(m *mocks.MockReservationService) {
				m.EXPECT().GetByID(gomock.Any(), int64(44)).Return(nil, errors.New("db down"))
			},
			want: http.StatusInternalServerError,
		},
		{
			name:  "bad id",
			id:    "abc",
			setup: func(*mocks.MockReservationService) {},
			want:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockReservationService(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			handler.NewHandler(service, nopLogger{}).Handle(rec, request(tt.id))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
