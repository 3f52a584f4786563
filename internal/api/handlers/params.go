package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/monnas-booking/pkg/types"
)

var (
	// ErrInvalidID возвращается, когда ID в пути не является положительным числом
	ErrInvalidID = errors.New("handlers: invalid id")

	// ErrInvalidMonth возвращается при некорректных параметрах year/month
	ErrInvalidMonth = errors.New("handlers: invalid year or month")
)

// PathID читает положительный ID из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryDate читает обязательную дату YYYY-MM-DD из query параметра
func QueryDate(r *http.Request, name string) (types.Date, error) {
	return types.ParseDate(r.URL.Query().Get(name))
}

// QueryMonth читает year и month из query параметров
func QueryMonth(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		return 0, 0, ErrInvalidMonth
	}
	return year, month, nil
}

// OptionalQuery возвращает nil для отсутствующего или пустого параметра
func OptionalQuery(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}
