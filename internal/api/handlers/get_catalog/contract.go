package get_catalog

import "github.com/m04kA/monnas-booking/internal/domain"

// ServiceCatalog каталог услуг студии
type ServiceCatalog interface {
	ForChannel(ch domain.Channel) []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
}
