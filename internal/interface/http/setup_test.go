package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/application"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/infrastructure/jsonstore"
	handlers "github.com/Uzma-Jawed/read-n-quote-app/internal/interface/http"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/router"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/router/modules"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/validation"
)

// testApp serves the full /api surface against a temp-dir store and
// carries session cookies between requests like a browser would.
type testApp struct {
	t       *testing.T
	engine  *gin.Engine
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := jsonstore.New(t.TempDir(), logger)
	require.NoError(t, err)

	users := jsonstore.NewUserRepository(store)
	books := jsonstore.NewBookRepository(store)
	quotes := jsonstore.NewQuoteRepository(store)

	jwt := helpers.NewJWTManager("access-test-secret", "refresh-test-secret", 15*time.Minute, 24*time.Hour)

	authSvc := application.NewAuthService(users, books, quotes, jwt, logger)
	bookSvc := application.NewBookService(books, logger)
	quoteSvc := application.NewQuoteService(quotes, books, logger)
	analyticsSvc := application.NewAnalyticsService(books, quotes, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, "", false), jwt))
	reg.Add(modules.NewBookModule(handlers.NewBookHandler(bookSvc, logger), jwt))
	reg.Add(modules.NewQuoteModule(handlers.NewQuoteHandler(quoteSvc, logger), jwt))
	reg.Add(modules.NewAnalyticsModule(handlers.NewAnalyticsHandler(analyticsSvc, logger), jwt))
	reg.RegisterAll()

	return &testApp{t: t, engine: engine}
}

func (a *testApp) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range a.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		a.storeCookie(ck)
	}
	return w
}

func (a *testApp) storeCookie(ck *http.Cookie) {
	for i, existing := range a.cookies {
		if existing.Name == ck.Name {
			if ck.MaxAge < 0 {
				a.cookies = append(a.cookies[:i], a.cookies[i+1:]...)
			} else {
				a.cookies[i] = ck
			}
			return
		}
	}
	if ck.MaxAge >= 0 {
		a.cookies = append(a.cookies, ck)
	}
}

func (a *testApp) cookie(name string) *http.Cookie {
	for _, ck := range a.cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

// signup registers and logs in a user, leaving the session cookies on
// the app.
func (a *testApp) signup(username, password string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/register", gin.H{"username": username, "password": password})
	require.Equal(a.t, http.StatusCreated, w.Code)
	w = a.do(http.MethodPost, "/api/login", gin.H{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code)
}

// addBook creates a book through the API and returns its id.
func (a *testApp) addBook(body gin.H) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/books", body)
	require.Equal(a.t, http.StatusCreated, w.Code)
	return decode(a.t, w).data()["id"].(string)
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
}

func (e envelope) data() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(e.Data, &m); err != nil {
		return nil
	}
	return m
}

func (e envelope) dataList() []map[string]any {
	var l []map[string]any
	if err := json.Unmarshal(e.Data, &l); err != nil {
		return nil
	}
	return l
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}
