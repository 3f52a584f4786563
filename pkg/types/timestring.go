package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
type TimeString string

const timeLayout = "15:04"

// NewTimeString создает TimeString из времени суток переданного time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются, чтобы значения из БД совпадали со значениями каталога
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(strings.TrimSpace(s)).Normalize()
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Normalize приводит "HH:MM:SS", "HH:MM:SS.ffffff" и другие значения вида "HH:MM:..." к "HH:MM"
func (t TimeString) Normalize() TimeString {
	s := string(t)
	if len(s) > len(timeLayout) && s[2] == ':' && s[5] == ':' {
		return TimeString(s[:5])
	}
	return t
}

// Validate проверяет формат "HH:MM" и диапазоны часов и минут
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != len(timeLayout) || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	t = t.Normalize()
	if err := t.Validate(); err != nil {
		return 0, err
	}
	h, _ := strconv.Atoi(string(t)[:2])
	m, _ := strconv.Atoi(string(t)[3:])
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
// Выход за пределы суток считается ошибкой
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s%+d min is out of day range", ErrInvalidTimeString, t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Hour возвращает час в виде "HH:00"
func (t TimeString) Hour() string {
	if len(t) < 2 {
		return ""
	}
	return string(t)[:2] + ":00"
}

// IsBefore возвращает true, если t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Normalize() < other.Normalize()
}

// IsAfter возвращает true, если t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Normalize() > other.Normalize()
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// On возвращает момент времени t в дату d и часовой пояс loc
func (t TimeString) On(d Date, loc *time.Location) (time.Time, error) {
	total, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year, d.Month, d.Day, total/60, total%60, 0, 0, loc), nil
}

// Scan реализует sql.Scanner
// lib/pq отдает колонку TIME как time.Time, TEXT как string или []byte
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		*t = TimeString(v).Normalize()
		return nil
	case []byte:
		*t = TimeString(string(v)).Normalize()
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t.Normalize()), nil
}
