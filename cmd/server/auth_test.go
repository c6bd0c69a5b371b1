package main

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"pedidos.sainthonore.com/cmd/server/internal/dtos"
)

func TestSignInHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	signInDto := dtos.SignInDto{
		Username:   "brand1",
		Password:   "brand1",
		RememberMe: true,
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	var session *http.Cookie
	for _, cookie := range rs.Cookies() {
		if cookie.Name == "session" {
			session = cookie
		}
	}
	assert.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
}

func TestSignInHandlerWrongPassword(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/api/auth/signin",
	)

	signInDto := dtos.SignInDto{
		Username:   "brand1",
		Password:   "wrong",
		RememberMe: false,
	}

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(signInDto)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	// No session cookie on failed sign-in.
	for _, cookie := range rs.Cookies() {
		assert.NotEqual(t, "session", cookie.Name)
	}
}

func TestSignOutHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/api/auth/signout",
	)

	tReq.SetFollowRedirect(false)

	tReq.AddCookie(sessionCookie("brand1"))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)
}

func TestSignInPage(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	assert.Nil(t, err)

	// Anonymous visitors get the demo account list.
	assert.Contains(t, string(body), "Cuentas de demostraci")
	assert.Contains(t, string(body), "brand1")
	assert.Contains(t, string(body), "brand10")
}

func TestHomeWithSession(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/",
	)

	tReq.AddCookie(sessionCookie("brand1"))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestAPIRequiresSession(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/pedidos/api/providers",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}

func TestProvidersWithSession(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/pedidos/api/providers",
	)

	tReq.AddCookie(sessionCookie("brand1"))

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)

	var providers []string
	err := json.NewDecoder(rs.Body).Decode(&providers)
	assert.Nil(t, err)
	// The embedded reference table scopes everything to brand1.
	assert.Equal(t, []string{"Proveedor1", "Proveedor2", "Proveedor3"}, providers)
}

func TestTamperedSessionRejected(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/pedidos/api/providers",
	)

	tReq.AddCookie(&http.Cookie{Name: "session", Value: "forged"})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnauthorized, rs.StatusCode)
}
