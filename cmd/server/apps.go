package main

import (
	"log/slog"
	"net/http"

	"pedidos.sainthonore.com/apps/pedidos"
	"pedidos.sainthonore.com/internal/auth"
	"pedidos.sainthonore.com/internal/config"
)

type Apps struct {
	apps []App
}

type App interface {
	Routes(prefix string, mux *http.ServeMux)
	GetName() string
}

func NewApps(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
) *Apps {
	apps := &Apps{
		apps: []App{},
	}

	apps.addApp(pedidos.New(authService, logger, cfg))

	return apps
}

func (apps *Apps) Routes(mux *http.ServeMux) http.Handler {
	for _, app := range apps.apps {
		app.Routes(app.GetName(), mux)
	}
	return mux
}

func (apps *Apps) addApp(app App) {
	apps.apps = append(apps.apps, app)
}

func (apps *Apps) GetNames() []string {
	names := []string{}
	for _, app := range apps.apps {
		names = append(names, app.GetName())
	}
	return names
}
