package get_catalog

import (
	"net/http"

	"github.com/m04kA/monnas-booking/internal/api/handlers"
	"github.com/m04kA/monnas-booking/internal/domain"
)

type Handler struct {
	channel  domain.Channel
	slots    domain.SlotCatalog
	services ServiceCatalog
	logger   Logger
}

// NewHandler создает обработчик каталога слотов и услуг канала
func NewHandler(channel domain.Channel, slots domain.SlotCatalog, services ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		channel:  channel,
		slots:    slots,
		services: services,
		logger:   logger,
	}
}

// Handle GET /api/v1/catalog
// Handle GET /api/v1/admin/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := NewCatalogResponse(h.slots, h.services.ForChannel(h.channel))

	h.logger.Info("GET %s - Catalog: channel=%s, slots=%d, services=%d",
		r.URL.Path, h.channel, len(resp.Slots), len(resp.Services))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
