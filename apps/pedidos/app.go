//nolint:revive //it is what it is
package pedidos

import (
	"embed"
	"html/template"
	"log/slog"

	"pedidos.sainthonore.com/apps/pedidos/internal/repositories"
	"pedidos.sainthonore.com/apps/pedidos/internal/services"
	"pedidos.sainthonore.com/internal/auth"
	"pedidos.sainthonore.com/internal/config"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

//go:embed static/*
var static embed.FS

type Pedidos struct {
	logger   *slog.Logger
	Config   config.Config
	static   embed.FS
	tpl      *template.Template
	Services *services.Services
}

func New(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
) *Pedidos {
	var source repositories.Source = repositories.NewTableSource()
	if cfg.CatalogPath != "" {
		source = repositories.NewSpreadsheetSource(cfg.CatalogPath)
	}

	return NewInner(authService, logger, cfg, source)
}

func NewInner(
	authService auth.Service,
	logger *slog.Logger,
	cfg config.Config,
	source repositories.Source,
) *Pedidos {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	return &Pedidos{
		logger: logger,
		Config: cfg,
		static: static,
		tpl:    tpl,
		Services: services.New(
			repositories.New(source),
			authService,
			services.MatchPolicyFromString(cfg.MatchPolicy),
		),
	}
}

func (app *Pedidos) GetName() string {
	return "pedidos"
}
