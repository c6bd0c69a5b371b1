package mocks

import (
	"context"
	"net/http"

	"pedidos.sainthonore.com/internal/auth"
	"pedidos.sainthonore.com/internal/constants"
	"pedidos.sainthonore.com/internal/models"
)

func NewMockedAuthService(tenant string) auth.Service {
	return &MockedAuthService{
		tenant: tenant,
	}
}

type MockedAuthService struct {
	tenant string
}

func (m *MockedAuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inject a mock user into the context
		user := models.User{
			Name: m.tenant,
		}

		ctx := context.WithValue(r.Context(), constants.UserContextKey, user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Inject a mock user into the context
		user := models.User{
			Name: m.tenant,
		}

		ctx := context.WithValue(r.Context(), constants.UserContextKey, user)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func (m *MockedAuthService) GetAllUsers() ([]models.User, error) {
	return []models.User{}, nil
}

func (m *MockedAuthService) SignOut() *http.Cookie {
	return &http.Cookie{
		Name:   "session",
		Value:  "",
		MaxAge: -1,
		Path:   "/",
	}
}
