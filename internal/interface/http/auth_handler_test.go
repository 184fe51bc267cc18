package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Registration successful", env.Message)
	assert.Equal(t, "alice", env.data()["username"])
}

func TestRegisterDuplicate(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decode(t, w).Message)
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/register", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/register", gin.H{"password": "secret"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsSessionCookies(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	require.NotNil(t, app.cookie("access_token"))
	require.NotNil(t, app.cookie("refresh_token"))
	assert.NotEmpty(t, app.cookie("access_token").Value)
}

func TestLoginFailures(t *testing.T) {
	app := newTestApp(t)
	w := app.do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(http.MethodPost, "/api/login", gin.H{"username": "ghost", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Username not found", decode(t, w).Message)

	w = app.do(http.MethodPost, "/api/login", gin.H{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect password", decode(t, w).Message)
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/books", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	w := app.do(http.MethodPost, "/api/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decode(t, w).data()["username"])
	assert.NotEmpty(t, app.cookie("access_token").Value)
}

func TestRefreshWithoutCookie(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t)
	app.signup("alice", "secret")

	w := app.do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, app.cookie("access_token"))
	assert.Nil(t, app.cookie("refresh_token"))

	w = app.do(http.MethodGet, "/api/books", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
