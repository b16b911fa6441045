package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/infrastructure/cache"
	"portfolio.backend/internal/infrastructure/datasources"
	"portfolio.backend/internal/infrastructure/storage"
	"portfolio.backend/pkg/redis"
)

const e2ePassword = "let-me-in"

type e2eApp struct {
	cfg    *config.Config
	server *httptest.Server
	redis  *miniredis.Miniredis
}

func newE2EApp(t *testing.T, setupRoute bool) *e2eApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	cfg := baseTestConfig(t)
	cfg.Setup.RouteEnabled = setupRoute
	hash, err := bcrypt.GenerateFromPassword([]byte(e2ePassword), bcrypt.MinCost)
	require.NoError(t, err)
	cfg.Admin.PasswordHash = string(hash)

	db, err := datasources.OpenMigrated(cfg.Database)
	require.NoError(t, err)

	store := storage.NewLocalStore(cfg.Media.Root, cfg.Media.URL)
	deps, err := newRouteDeps(cfg, db, store, cache.NewHomepageCache(redis.GetClient(), time.Minute))
	require.NoError(t, err)
	r, err := buildRouter(cfg, deps)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &e2eApp{cfg: cfg, server: srv, redis: mr}
}

func (a *e2eApp) expect(t *testing.T) *httpexpect.Expect {
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  a.server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Client: &http.Client{
			Jar: httpexpect.NewCookieJar(),
		},
	})
}

func (a *e2eApp) noRedirect(t *testing.T) *httpexpect.Expect {
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  a.server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
	})
}

func login(e *httpexpect.Expect) string {
	return e.POST("/api/v1/auth/login").
		WithJSON(map[string]string{"password": e2ePassword}).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("accessToken").String().Raw()
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)

	e.GET("/health").Expect().Status(http.StatusOK).
		JSON().Object().
		HasValue("status", "ok").
		HasValue("service", serviceName).
		HasValue("version", serviceVersion)

	e.GET("/health").Expect().Header("X-Request-ID").NotEmpty()

	e.GET("/metrics").Expect().Status(http.StatusOK).
		Body().Contains("portfolio_http_requests_total")
}

func TestRouter_SetupRouteGated(t *testing.T) {
	disabled := newE2EApp(t, false)
	disabled.expect(t).GET("/setup-data").WithQuery("key", "setup").Expect().Status(http.StatusNotFound)

	enabled := newE2EApp(t, true)
	e := enabled.expect(t)
	e.GET("/setup-data").WithQuery("key", "nope").Expect().Status(http.StatusForbidden).Body().IsEqual("Forbidden")
	e.GET("/setup-data").WithQuery("key", "setup").Expect().Status(http.StatusOK).Body().IsEqual("Data populated successfully!")
	e.GET("/setup-data").WithQuery("key", "setup").Expect().Status(http.StatusOK).Body().IsEqual("Data already exists!")

	e.GET("/").Expect().Status(http.StatusOK).Body().
		Contains("Habib Nidal").
		Contains("Wearable Emergency Alert System")
}

func TestRouter_ContactFlowWithFlash(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)

	// the client follows the 303 and carries the flash cookie to the homepage
	e.POST("/contact").
		WithFormField("name", "Ada").
		WithFormField("email", "ada@example.com").
		WithFormField("subject", "Hello").
		WithFormField("message", "Nice site").
		Expect().Status(http.StatusOK).
		Body().Contains("Thank you for your message! I will get back to you soon.")

	// shown once
	e.GET("/").Expect().Status(http.StatusOK).Body().NotContains("Thank you for your message!")

	e.POST("/contact").
		WithFormField("name", "Ada").
		WithFormField("email", " ").
		Expect().Status(http.StatusOK).
		Body().Contains("Please fill in all fields.")

	raw := app.noRedirect(t)
	raw.GET("/contact").Expect().Status(http.StatusSeeOther).Header("Location").IsEqual("/")

	token := login(e)
	e.GET("/api/v1/admin/messages").WithHeader("Authorization", "Bearer "+token).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("items").Array().Length().IsEqual(1)
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)

	e.GET("/api/v1/admin/stats").Expect().Status(http.StatusUnauthorized)
	e.GET("/api/v1/admin/stats").WithHeader("Authorization", "Bearer garbage").Expect().Status(http.StatusUnauthorized)
	e.POST("/api/v1/auth/login").WithJSON(map[string]string{"password": "wrong"}).Expect().Status(http.StatusUnauthorized)
}

func TestRouter_AdminWritesInvalidateHomepageCache(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)
	token := login(e)
	auth := func(r *httpexpect.Request) *httpexpect.Request {
		return r.WithHeader("Authorization", "Bearer "+token)
	}

	e.GET("/api/v1/homepage").Expect().Status(http.StatusOK).JSON().Object().Value("profile").IsNull()
	assert.True(t, app.redis.Exists(cache.HomepageKey))

	auth(e.POST("/api/v1/admin/seed")).Expect().Status(http.StatusOK)
	assert.False(t, app.redis.Exists(cache.HomepageKey))

	e.GET("/api/v1/homepage").Expect().Status(http.StatusOK).
		JSON().Object().Value("profile").Object().HasValue("name", "Habib Nidal")

	auth(e.POST("/api/v1/admin/projects")).
		WithJSON(map[string]interface{}{"title": "New", "description": "Fresh", "order": 9}).
		Expect().Status(http.StatusCreated)
	assert.False(t, app.redis.Exists(cache.HomepageKey))

	e.GET("/api/v1/homepage").Expect().Status(http.StatusOK).
		JSON().Object().Value("projects").Array().Length().IsEqual(4)
}

func TestRouter_IdempotentCreate(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)
	token := login(e)

	create := func() *httpexpect.Response {
		return e.POST("/api/v1/admin/skill-categories").
			WithHeader("Authorization", "Bearer "+token).
			WithHeader("Idempotency-Key", "cat-1").
			WithJSON(map[string]interface{}{"name": "Tools", "order": 1}).
			Expect()
	}

	first := create().Status(http.StatusCreated).JSON().Object().Value("id").String().Raw()
	replay := create().Status(http.StatusCreated)
	replay.Header("X-Idempotency-Hit").IsEqual("true")
	replay.JSON().Object().HasValue("id", first)

	e.GET("/api/v1/admin/skill-categories").WithHeader("Authorization", "Bearer "+token).
		Expect().Status(http.StatusOK).
		JSON().Object().Value("items").Array().Length().IsEqual(1)
}

func TestRouter_MediaImportServesFiles(t *testing.T) {
	app := newE2EApp(t, false)
	e := app.expect(t)
	token := login(e)

	require.NoError(t, os.WriteFile(filepath.Join(app.cfg.Media.ImportDir, "back.jpg"), []byte("background"), 0o644))

	e.POST("/api/v1/admin/seed").WithHeader("Authorization", "Bearer "+token).Expect().Status(http.StatusOK)
	e.POST("/api/v1/admin/media/import").WithHeader("Authorization", "Bearer "+token).
		Expect().Status(http.StatusOK).
		JSON().Object().HasValue("attached", 1)

	e.GET("/media/backgrounds/back.jpg").Expect().Status(http.StatusOK).Body().IsEqual("background")
}

func TestRegisterMediaRoute_SkipsRemoteBackends(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	registerMediaRoute(r, config.MediaConfig{Backend: storage.BackendS3, URL: "/media/", Root: t.TempDir()})
	assert.Empty(t, r.Routes())

	r = gin.New()
	registerMediaRoute(r, config.MediaConfig{Backend: storage.BackendLocal, URL: "https://cdn.example.com/", Root: t.TempDir()})
	assert.Empty(t, r.Routes())

	r = gin.New()
	registerMediaRoute(r, config.MediaConfig{Backend: storage.BackendLocal, URL: "/media/", Root: t.TempDir()})
	assert.NotEmpty(t, r.Routes())
}

func TestApplyCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r, []string{"http://localhost:3000"})
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
