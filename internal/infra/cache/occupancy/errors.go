package occupancy

import "errors"

var (
	// ErrReadSnapshot возвращается при ошибке чтения снимка занятости
	ErrReadSnapshot = errors.New("occupancy.cache: failed to read snapshot")

	// ErrWriteSnapshot возвращается при ошибке записи снимка занятости
	ErrWriteSnapshot = errors.New("occupancy.cache: failed to write snapshot")
)
