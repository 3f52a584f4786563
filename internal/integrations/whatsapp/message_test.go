package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/monnas-booking/internal/domain"
	"github.com/m04kA/monnas-booking/pkg/ptr"
	"github.com/m04kA/monnas-booking/pkg/types"
)

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:               12,
		ClientName:       "Lucía Pérez",
		ClientPhone:      "2494 555-123",
		SelectedDate:     types.NewDate(2025, time.March, 10),
		SelectedTime:     "09:30:00",
		SelectedServices: []string{"cosmetologia", "tricologia"},
	}
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "lunes, 10 de marzo de 2025", LongDate(types.NewDate(2025, time.March, 10)))
	assert.Equal(t, "domingo, 1 de junio de 2025", LongDate(types.NewDate(2025, time.June, 1)))
}

func TestHandoff_Message(t *testing.T) {
	h := NewHandoff("https://wa.me", "5492494245650", domain.NewServiceCatalog(domain.DefaultServices))

	msg := h.Message(newReservation())

	assert.True(t, strings.HasPrefix(msg, "🌸 *NUEVA RESERVA - MONNAS ESTÉTICA* 🌸"))
	assert.Contains(t, msg, "👤 *Cliente:* Lucía Pérez")
	assert.Contains(t, msg, "📧 *Email:* No proporcionado")
	assert.Contains(t, msg, "📅 *Fecha:* lunes, 10 de marzo de 2025")
	assert.Contains(t, msg, "🕐 *Hora:* 09:30")
	assert.Contains(t, msg, "Cosmetología, Tricología Facial")
	assert.Contains(t, msg, "💬 *Comentarios adicionales:*\nNinguno")
	assert.True(t, strings.HasSuffix(msg, "_Reserva realizada desde la web_"))

	r := newReservation()
	r.ClientEmail = ptr.Ptr("lucia@mail.com")
	r.Comments = ptr.Ptr("Piel sensible")
	msg = h.Message(r)
	assert.Contains(t, msg, "📧 *Email:* lucia@mail.com")
	assert.Contains(t, msg, "Piel sensible")

	r = newReservation()
	r.ClientEmail = ptr.Ptr("   ")
	r.Comments = ptr.Ptr("")
	msg = h.Message(r)
	assert.Contains(t, msg, "📧 *Email:* No proporcionado")
	assert.Contains(t, msg, "💬 *Comentarios adicionales:*\nNinguno")
}

func TestHandoff_URL(t *testing.T) {
	h := NewHandoff("https://wa.me/", "+5492494245650", domain.NewServiceCatalog(domain.DefaultServices))
	r := newReservation()
	r.Comments = ptr.Ptr("a+b & c")

	raw := h.URL(r)
	require.True(t, strings.HasPrefix(raw, "https://wa.me/5492494245650?text="))
	assert.NotContains(t, raw, " ")
	assert.NotContains(t, raw, "+")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, h.Message(r), parsed.Query().Get("text"))

	assert.True(t, h.Enabled())
	assert.False(t, NewHandoff("https://wa.me", "", nil).Enabled())
}
