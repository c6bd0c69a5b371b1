package services

import (
	"context"
	"slices"
	"strings"

	"pedidos.sainthonore.com/apps/pedidos/internal/models"
	"pedidos.sainthonore.com/apps/pedidos/internal/repositories"
)

// MatchPolicy decides how tenant, provider and country labels are
// compared. The source sheets are hand-maintained, so the default
// policy forgives case and stray whitespace.
type MatchPolicy string

const (
	MatchExact      MatchPolicy = "exact"
	MatchNormalized MatchPolicy = "normalized"
)

func MatchPolicyFromString(value string) MatchPolicy {
	if MatchPolicy(value) == MatchExact {
		return MatchExact
	}
	return MatchNormalized
}

func (p MatchPolicy) equal(a, b string) bool {
	if p == MatchExact {
		return a == b
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

type EventService struct {
	catalog *repositories.CatalogRepository
	policy  MatchPolicy
}

// Providers returns the distinct providers with deadlines visible to
// the tenant, sorted ascending.
func (service *EventService) Providers(
	ctx context.Context,
	tenant string,
) ([]string, error) {
	events, err := service.visible(ctx, tenant, "", "")
	if err != nil {
		return nil, err
	}

	providers := []string{}
	for _, event := range events {
		providers = append(providers, event.Provider)
	}

	return distinctSorted(providers), nil
}

// Countries returns the distinct countries with deadlines visible to
// the tenant, sorted ascending. An empty provider means any provider.
func (service *EventService) Countries(
	ctx context.Context,
	tenant string,
	provider string,
) ([]string, error) {
	events, err := service.visible(ctx, tenant, provider, "")
	if err != nil {
		return nil, err
	}

	countries := []string{}
	for _, event := range events {
		countries = append(countries, event.Country)
	}

	return distinctSorted(countries), nil
}

// Events returns every matching deadline in catalog order. Repeated
// identical rows stay repeated: each occurrence is a distinct calendar
// entry. Empty provider/country selectors mean any.
func (service *EventService) Events(
	ctx context.Context,
	tenant string,
	provider string,
	country string,
) ([]models.DeadlineEvent, error) {
	return service.visible(ctx, tenant, provider, country)
}

func (service *EventService) visible(
	ctx context.Context,
	tenant string,
	provider string,
	country string,
) ([]models.DeadlineEvent, error) {
	catalog, err := service.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	events := []models.DeadlineEvent{}
	for _, event := range catalog {
		if !service.policy.equal(event.Tenant, tenant) {
			continue
		}
		if provider != "" && !service.policy.equal(event.Provider, provider) {
			continue
		}
		if country != "" && !service.policy.equal(event.Country, country) {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func distinctSorted(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}
