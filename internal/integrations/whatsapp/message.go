package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/ptr"
	"github.com/m04kA/monnas-booking/pkg/types"
)

const (
	noEmail    = "No proporcionado"
	noComments = "Ninguno"
)

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// ServiceNamer возвращает отображаемое имя услуги по идентификатору
type ServiceNamer interface {
	Name(id string) string
}

// Handoff формирует ссылку wa.me с текстом о новом бронировании для студии
type Handoff struct {
	baseURL  string
	phone    string
	services ServiceNamer
}

// NewHandoff создает построитель ссылки
func NewHandoff(baseURL, phone string, services ServiceNamer) *Handoff {
	return &Handoff{
		baseURL:  strings.TrimRight(baseURL, "/"),
		phone:    strings.TrimLeft(phone, "+"),
		services: services,
	}
}

// Enabled сообщает, задан ли номер студии
func (h *Handoff) Enabled() bool {
	return h != nil && h.phone != ""
}

// URL возвращает ссылку для передачи бронирования в WhatsApp
func (h *Handoff) URL(r *domain.Reservation) string {
	text := strings.ReplaceAll(url.QueryEscape(h.Message(r)), "+", "%20")
	return fmt.Sprintf("%s/%s?text=%s", h.baseURL, h.phone, text)
}

// Message возвращает текст сообщения о бронировании
func (h *Handoff) Message(r *domain.Reservation) string {
	names := make([]string, 0, len(r.SelectedServices))
	for _, id := range r.SelectedServices {
		names = append(names, h.services.Name(id))
	}

	email := strings.TrimSpace(ptr.Deref(r.ClientEmail, ""))
	if email == "" {
		email = noEmail
	}
	comments := strings.TrimSpace(ptr.Deref(r.Comments, ""))
	if comments == "" {
		comments = noComments
	}

	var b strings.Builder
	b.WriteString("🌸 *NUEVA RESERVA - MONNAS ESTÉTICA* 🌸\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", r.ClientName)
	fmt.Fprintf(&b, "📞 *Teléfono:* %s\n", r.ClientPhone)
	fmt.Fprintf(&b, "📧 *Email:* %s\n\n", email)
	fmt.Fprintf(&b, "📅 *Fecha:* %s\n", LongDate(r.SelectedDate))
	fmt.Fprintf(&b, "🕐 *Hora:* %s\n\n", r.SelectedTime.Normalize())
	fmt.Fprintf(&b, "💅 *Servicios solicitados:*\n%s\n\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "💬 *Comentarios adicionales:*\n%s\n\n", comments)
	b.WriteString("_Reserva realizada desde la web_")
	return b.String()
}

// LongDate форматирует дату по-испански: "lunes, 10 de marzo de 2025"
func LongDate(d types.Date) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[d.Weekday()], d.Day, months[d.Month-1], d.Year)
}
