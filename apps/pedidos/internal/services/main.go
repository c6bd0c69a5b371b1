package services

import (
	"pedidos.sainthonore.com/apps/pedidos/internal/repositories"
	"pedidos.sainthonore.com/internal/auth"
)

type Services struct {
	Auth     auth.Service
	Events   *EventService
	Calendar *CalendarService
}

func New(
	repos *repositories.Repositories,
	authService auth.Service,
	policy MatchPolicy,
) *Services {
	return &Services{
		Auth:     authService,
		Events:   &EventService{catalog: repos.Catalog, policy: policy},
		Calendar: &CalendarService{},
	}
}
