package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"portfolio.backend/internal/infrastructure/models"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/infrastructure/storage"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/interfaces/http/views"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
)

const (
	testSetupKey = "setup-key"
	testPassword = "admin-password"
)

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	jwt       *jwt.JWTService
	importDir string
	mediaRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	profiles := repositories.NewProfileRepository(db)
	educations := repositories.NewEducationRepository(db)
	projects := repositories.NewProjectRepository(db)
	categories := repositories.NewSkillCategoryRepository(db)
	skills := repositories.NewSkillRepository(db)
	certifications := repositories.NewCertificationRepository(db)
	messages := repositories.NewContactMessageRepository(db)
	uow := repositories.NewUnitOfWork(db)

	env := &testEnv{db: db, importDir: t.TempDir(), mediaRoot: t.TempDir()}
	store := storage.NewLocalStore(env.mediaRoot, "/media/")

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	env.jwt = jwt.NewJWTService("test-secret", time.Minute, time.Hour)

	seedUC := usecases.NewSeedUsecase(profiles, educations, categories, skills, projects, certifications, uow, nil)
	mediaUC := usecases.NewMediaUsecase(profiles, projects, categories, skills, certifications, store, nil)
	homepageUC := usecases.NewHomepageUsecase(profiles, educations, projects, categories, certifications, nil)
	contentUC := usecases.NewContentUsecase(profiles, educations, projects, categories, skills, certifications, nil)
	contactUC := usecases.NewContactUsecase(messages)
	bootstrapUC := usecases.NewBootstrapUsecase(profiles, seedUC, testSetupKey)
	authUC := usecases.NewAdminAuthUsecase(string(hash), env.jwt)

	home := NewHomeHandler(homepageUC)
	contact := NewContactHandler(contactUC)
	setup := NewSetupHandler(bootstrapUC)
	auth := NewAuthHandler(authUC)
	content := NewContentHandler(contentUC)
	admin := NewAdminHandler(contentUC, contactUC, seedUC, mediaUC, env.importDir)

	tmpl, err := views.Templates(store.URL)
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", home.Index)
	r.POST("/contact", contact.Submit)
	r.GET("/contact", contact.RedirectHome)
	r.GET("/setup-data", setup.SetupData)

	v1 := r.Group("/api/v1")
	v1.GET("/homepage", home.Homepage)
	v1.POST("/auth/login", auth.Login)
	v1.POST("/auth/refresh", auth.RefreshToken)

	a := v1.Group("/admin", middleware.AuthMiddleware(env.jwt), middleware.RequireAdmin())
	a.GET("/stats", admin.Stats)
	a.POST("/seed", admin.Seed)
	a.POST("/media/import", admin.ImportMedia)
	a.POST("/bootstrap", setup.Bootstrap)
	a.GET("/projects", content.ListProjects)
	a.POST("/projects", content.CreateProject)
	a.GET("/projects/:id", content.GetProject)
	a.PUT("/projects/:id", content.UpdateProject)
	a.PATCH("/projects/:id/order", content.ReorderProject)
	a.DELETE("/projects/:id", content.DeleteProject)
	a.POST("/skill-categories", content.CreateSkillCategory)
	a.GET("/skill-categories", content.ListSkillCategories)
	a.DELETE("/skill-categories/:id", content.DeleteSkillCategory)
	a.POST("/skills", content.CreateSkill)
	a.POST("/educations", content.CreateEducation)
	a.POST("/certifications", content.CreateCertification)
	a.POST("/profiles", content.CreateProfile)
	a.GET("/messages", contact.ListMessages)
	a.GET("/messages/:id", contact.GetMessage)
	a.PATCH("/messages/:id/read", contact.MarkRead)
	a.DELETE("/messages/:id", contact.DeleteMessage)

	env.router = r
	return env
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	pair, err := e.jwt.GenerateTokenPair(usecases.AdminSubject, jwt.RoleAdmin)
	require.NoError(t, err)
	return pair.AccessToken
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

func (e *testEnv) adminJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+e.adminToken(t))
	return e.do(req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
