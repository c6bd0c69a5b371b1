package services

import (
	"html/template"

	"github.com/gorilla/securecookie"
	"github.com/xdoubleu/essentia/v2/pkg/config"
	cfg "pedidos.sainthonore.com/internal/config"
)

type Services struct {
	Auth *AuthService
}

func New(
	cfg cfg.Config,
	tpl *template.Template,
) *Services {
	return &Services{
		Auth: &AuthService{
			signer:           securecookie.New([]byte(cfg.SessionSecret), nil),
			credentials:      parseCredentials(cfg.TenantCredentials),
			tpl:              tpl,
			useSecureCookies: cfg.Env == config.ProdEnv,
			sessionExpiry:    cfg.SessionExpiry,
		},
	}
}
