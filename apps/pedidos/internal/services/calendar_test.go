package services_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"pedidos.sainthonore.com/apps/pedidos/internal/models"
	"pedidos.sainthonore.com/apps/pedidos/internal/services"
)

func deadline(brand, country string, date time.Time) models.DeadlineEvent {
	return models.DeadlineEvent{
		Provider: "Proveedor1",
		Brand:    brand,
		Country:  country,
		Tenant:   "brand1",
		Date:     date,
	}
}

func TestFeedItems(t *testing.T) {
	service := &services.CalendarService{}

	items := service.FeedItems([]models.DeadlineEvent{
		deadline("CHANEL", "COLOMBIA",
			time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC)),
		deadline("DIOR", "CHILE",
			time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)),
	})

	assert.Len(t, items, 2)

	assert.Equal(t, "CHANEL – PEDIDO", items[0].Title)
	assert.Equal(t, "2025-01-30", items[0].Start)
	assert.True(t, items[0].AllDay)
	assert.Equal(t, "#f58220", items[0].BackgroundColor)
	assert.Equal(t, "#f58220", items[0].BorderColor)

	assert.Equal(t, "DIOR – PEDIDO", items[1].Title)
	assert.Equal(t, "2025-06-06", items[1].Start)
}

func TestFeedItemsEmpty(t *testing.T) {
	service := &services.CalendarService{}

	items := service.FeedItems(nil)

	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestDocument(t *testing.T) {
	service := &services.CalendarService{}
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	events := []models.DeadlineEvent{
		deadline("CHANEL", "COLOMBIA",
			time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC)),
		deadline("CHANEL", "COLOMBIA",
			time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)),
	}

	document := service.Document(events, now)

	cal, err := ics.ParseCalendar(bytes.NewReader(document))
	assert.Nil(t, err)
	assert.Len(t, cal.Events(), 2)

	for _, vevent := range cal.Events() {
		assert.Equal(
			t,
			"CHANEL – PEDIDO",
			vevent.GetProperty(ics.ComponentPropertySummary).Value,
		)

		start, err := vevent.GetStartAt()
		assert.Nil(t, err)
		end, err := vevent.GetEndAt()
		assert.Nil(t, err)
		assert.Equal(t, time.Hour, end.Sub(start))
	}

	serialized := string(document)
	assert.Contains(t, serialized, "VERSION:2.0")
	assert.Contains(t, serialized, "PRODID:-//Saint Honore//Pedidos//ES")
	assert.Equal(t, 2, strings.Count(serialized, "BEGIN:VALARM"))
	assert.Equal(t, 2, strings.Count(serialized, "ACTION:DISPLAY"))
	// Reminder fires exactly one day before the deadline.
	assert.Equal(t, 2, strings.Count(serialized, "TRIGGER:-P1D"))
	assert.Contains(t, serialized, "Recordatorio: pedido CHANEL")
}

func TestDocumentDistinctUIDsForDuplicateRows(t *testing.T) {
	service := &services.CalendarService{}
	now := time.Now()

	date := time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC)
	document := service.Document([]models.DeadlineEvent{
		deadline("CHANEL", "COLOMBIA", date),
		deadline("CHANEL", "COLOMBIA", date),
	}, now)

	cal, err := ics.ParseCalendar(bytes.NewReader(document))
	assert.Nil(t, err)

	uids := map[string]bool{}
	for _, vevent := range cal.Events() {
		uids[vevent.GetProperty(ics.ComponentPropertyUniqueId).Value] = true
	}
	assert.Len(t, uids, 2)
}

func TestDocumentEmpty(t *testing.T) {
	service := &services.CalendarService{}

	document := service.Document(nil, time.Now())

	cal, err := ics.ParseCalendar(bytes.NewReader(document))
	assert.Nil(t, err)
	assert.Empty(t, cal.Events())
}
