package services

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/securecookie"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	errortools "github.com/xdoubleu/essentia/v2/pkg/errortools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
	"github.com/xhit/go-str2duration/v2"
	"pedidos.sainthonore.com/cmd/server/internal/dtos"
	"pedidos.sainthonore.com/internal/constants"
	"pedidos.sainthonore.com/internal/models"
)

const sessionCookie = "session"

// AuthService is the session gate: it signs the tenant name into a
// tamper-proof cookie and resolves it back on every request. There is
// no external identity provider; accounts come from configuration.
type AuthService struct {
	signer           *securecookie.SecureCookie
	credentials      map[string]string
	tpl              *template.Template
	useSecureCookies bool
	sessionExpiry    string
}

func (service *AuthService) GetAllUsers() ([]models.User, error) {
	names := make([]string, 0, len(service.credentials))
	for name := range service.credentials {
		names = append(names, name)
	}
	slices.Sort(names)

	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, models.User{Name: name})
	}
	return users, nil
}

func (service *AuthService) SignInWithCredentials(
	signInDto *dtos.SignInDto,
) (*http.Cookie, error) {
	password, ok := service.credentials[signInDto.Username]
	if !ok || password != signInDto.Password {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid credentials"),
		)
	}

	expiry := service.sessionExpiry
	if !signInDto.RememberMe {
		// Session-scoped cookie, gone when the browser closes.
		expiry = ""
	}

	return service.CreateCookie(signInDto.Username, expiry)
}

func (service *AuthService) GetUser(cookieValue string) (*models.User, error) {
	var tenant string
	err := service.signer.Decode(sessionCookie, cookieValue, &tenant)
	if err != nil {
		return nil, errortools.NewUnauthorizedError(
			errors.New("invalid session cookie"),
		)
	}

	return &models.User{Name: tenant}, nil
}

func (service *AuthService) SignOut() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		Path:     "/",
	}
}

func (service *AuthService) CreateCookie(
	tenant string,
	expiry string,
) (*http.Cookie, error) {
	value, err := service.signer.Encode(sessionCookie, tenant)
	if err != nil {
		return nil, err
	}

	//nolint:exhaustruct //expiry is set below when known
	cookie := http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		Secure:   service.useSecureCookies,
		Path:     "/",
	}

	if expiry != "" {
		ttl, err := str2duration.ParseDuration(expiry)
		if err != nil {
			return nil, err
		}
		cookie.Expires = time.Now().Add(ttl)
	}

	return &cookie, nil
}

func (service *AuthService) Access(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCookie, err := r.Cookie(sessionCookie)

		if err != nil {
			httptools.UnauthorizedResponse(w, r,
				errortools.NewUnauthorizedError(errors.New("no session in cookies")))
			return
		}

		user, err := service.GetUser(tokenCookie.Value)
		if err != nil {
			httptools.HandleError(w, r, err)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next.ServeHTTP(w, r)
	})
}

func (service *AuthService) TemplateAccess(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := service.getCurrentUser(r)

		if user == nil {
			accounts, err := service.GetAllUsers()
			if err != nil {
				panic(err)
			}

			tpltools.RenderWithPanic(service.tpl, w, "sign-in.html", accounts)
			return
		}

		r = r.WithContext(service.contextSetUser(r.Context(), *user))
		next(w, r)
	})
}

func (service *AuthService) getCurrentUser(r *http.Request) *models.User {
	tokenCookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	user, err := service.GetUser(tokenCookie.Value)
	if err != nil {
		return nil
	}

	return user
}

func (service *AuthService) contextSetUser(
	ctx context.Context,
	user models.User,
) context.Context {
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		//nolint:exhaustruct //other fields are optional
		hub.Scope().SetUser(sentry.User{
			Username: user.Name,
		})
	}

	return context.WithValue(ctx, constants.UserContextKey, user)
}

func parseCredentials(raw string) map[string]string {
	credentials := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		name, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" {
			continue
		}
		credentials[name] = password
	}
	return credentials
}
