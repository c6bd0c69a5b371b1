package services

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"pedidos.sainthonore.com/apps/pedidos/internal/dtos"
	"pedidos.sainthonore.com/apps/pedidos/internal/models"
)

const (
	deadlineColor = "#f58220"
	// Kept ASCII-only, some downstream calendar clients choke on
	// accented characters in PRODID.
	productID = "-//Saint Honore//Pedidos//ES"
)

// CalendarService projects filtered deadline events into the two
// output formats: FullCalendar feed items and an RFC-5545 document.
type CalendarService struct{}

func (service *CalendarService) FeedItems(
	events []models.DeadlineEvent,
) []dtos.FeedItem {
	items := make([]dtos.FeedItem, 0, len(events))
	for _, event := range events {
		items = append(items, dtos.FeedItem{
			Title:           summaryFor(event),
			Start:           event.Date.Format("2006-01-02"),
			AllDay:          true,
			BackgroundColor: deadlineColor,
			BorderColor:     deadlineColor,
		})
	}
	return items
}

// Document renders one VEVENT per deadline. The deadline is
// conceptually all-day but encoded as a one-hour slot starting at
// midnight, which renders more reliably across clients. Every event
// carries a DISPLAY alarm one day ahead.
func (service *CalendarService) Document(
	events []models.DeadlineEvent,
	now time.Time,
) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)

	for i, event := range events {
		uid := fmt.Sprintf(
			"%s-%s-%d@pedidos.sainthonore.com",
			event.Brand,
			event.Date.Format("20060102"),
			i,
		)

		vevent := cal.AddEvent(uid)
		vevent.SetSummary(summaryFor(event))
		vevent.SetStartAt(event.Date)
		vevent.SetEndAt(event.Date.Add(time.Hour))
		vevent.SetDtStampTime(now.UTC())

		alarm := vevent.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger("-P1D")
		alarm.SetProperty(
			ics.ComponentPropertyDescription,
			fmt.Sprintf("Recordatorio: pedido %s", event.Brand),
		)
	}

	return []byte(cal.Serialize())
}

func summaryFor(event models.DeadlineEvent) string {
	return fmt.Sprintf("%s – PEDIDO", event.Brand)
}
