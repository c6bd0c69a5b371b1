package pedidos

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/contexttools"
	"pedidos.sainthonore.com/internal/constants"
	"pedidos.sainthonore.com/internal/models"
)

func (app *Pedidos) apiRoutes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET %s/providers", prefix),
		app.Services.Auth.Access(app.providersHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/countries", prefix),
		app.Services.Auth.Access(app.countriesHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/events", prefix),
		app.Services.Auth.Access(app.eventsHandler),
	)
	mux.HandleFunc(
		fmt.Sprintf("GET %s/ics", prefix),
		app.Services.Auth.Access(app.icsHandler),
	)
}

// The calendar widget refetches these endpoints on every selector
// change, so responses must never be cached by the browser.
//
//nolint:gochecknoglobals //fixed header set
var noStore = http.Header{"Cache-Control": []string{"no-store"}}

func (app *Pedidos) providersHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	providers, err := app.Services.Events.Providers(r.Context(), user.Name)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, providers, noStore)
	if err != nil {
		panic(err)
	}
}

func (app *Pedidos) countriesHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	provider := r.URL.Query().Get("provider")

	countries, err := app.Services.Events.Countries(r.Context(), user.Name, provider)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	err = httptools.WriteJSON(w, http.StatusOK, countries, noStore)
	if err != nil {
		panic(err)
	}
}

func (app *Pedidos) eventsHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	provider := r.URL.Query().Get("provider")
	country := r.URL.Query().Get("country")
	if country == "" {
		http.Error(w, "missing country", http.StatusBadRequest)
		return
	}

	events, err := app.Services.Events.Events(
		r.Context(),
		user.Name,
		provider,
		country,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	items := app.Services.Calendar.FeedItems(events)

	err = httptools.WriteJSON(w, http.StatusOK, items, noStore)
	if err != nil {
		panic(err)
	}
}

func (app *Pedidos) icsHandler(w http.ResponseWriter, r *http.Request) {
	user := contexttools.GetValue[models.User](r.Context(), constants.UserContextKey)
	if user == nil {
		panic(errors.New("not signed in"))
	}

	provider := r.URL.Query().Get("provider")
	country := r.URL.Query().Get("country")
	if country == "" {
		http.Error(w, "missing country", http.StatusBadRequest)
		return
	}

	events, err := app.Services.Events.Events(
		r.Context(),
		user.Name,
		provider,
		country,
	)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	document := app.Services.Calendar.Document(events, time.Now())

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("pedidos_%s.ics", country)),
	)

	_, err = w.Write(document)
	if err != nil {
		app.logger.Error("failed to write calendar document", "error", err)
	}
}
