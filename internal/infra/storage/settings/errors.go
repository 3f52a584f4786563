package settings

import "errors"

var (
	// ErrReadSettings возвращается при ошибке чтения настроек из Redis
	ErrReadSettings = errors.New("settings.repository: failed to read settings")

	// ErrWriteSettings возвращается при ошибке записи настроек в Redis
	ErrWriteSettings = errors.New("settings.repository: failed to write settings")

	// ErrDecodeSettings возвращается, когда сохраненные настройки повреждены
	ErrDecodeSettings = errors.New("settings.repository: failed to decode settings")
)
