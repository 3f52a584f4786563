package get_catalog

import "github.com/m04kA/monnas-booking/internal/domain"

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Slots    []string          `json:"slots"`
	Services []ServiceResponse `json:"services"`
}

// ServiceResponse услуга студии
type ServiceResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// NewCatalogResponse собирает каталог канала
func NewCatalogResponse(slots domain.SlotCatalog, services []domain.Service) *CatalogResponse {
	resp := &CatalogResponse{
		Slots:    make([]string, 0, len(slots)),
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, s.Normalize().String())
	}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return resp
}
