package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makemate/agency-backend/config"
	"github.com/makemate/agency-backend/internal/container"
	"github.com/makemate/agency-backend/internal/interface/middleware"
)

func newRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *container.Container, *test.Hook) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := container.New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RealIP())
	reg := NewRegistry(r)
	InitModules(reg, c)
	reg.RegisterAll()
	return r, c, hook
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:             "makemate-api",
		MailSendEnabled:     true,
		MailDriver:          config.MailDriverLog,
		MailNotifyMode:      config.NotifyModeAsync,
		MailTimeout:         time.Second,
		MailFrom:            "no-reply@makemate.com",
		NotifyEmail:         "hello@makemate.com",
		CompanyName:         "makemate",
		DebugMetricsEnabled: true,
	}
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_ContactNotifiesThroughLogTransport(t *testing.T) {
	r, c, hook := newRouter(t, testConfig())

	w := do(r, http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","subject":"Hi","message":"1234567890","agreement":true}`)
	c.Contacts.Wait()

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Contact form submitted successfully", body["message"])
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body["request_id"])
	assert.NotContains(t, body, "errors")

	var captured *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "email captured by log transport" {
			captured = e
		}
	}
	require.NotNil(t, captured)
	assert.Equal(t, "hello@makemate.com", captured.Data["to"])
	assert.Equal(t, "jo@x.com", captured.Data["reply_to"])
	assert.Equal(t, "New Contact Form Submission: Hi", captured.Data["subject"])
}

func TestRoutes_NewsletterAndMetrics(t *testing.T) {
	r, c, _ := newRouter(t, testConfig())

	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/newsletter", `{"email":"a@b.com"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/newsletter", `{"email":"a@b.com"}`).Code)
	assert.Len(t, c.Newsletters.All(), 1)

	w := do(r, http.MethodGet, "/api/debug/vars", "")
	require.Equal(t, http.StatusOK, w.Code)

	var vars map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
	assert.EqualValues(t, 1, vars["store_newsletters"])
	assert.EqualValues(t, 0, vars["store_contacts"])
	assert.Contains(t, vars, "newsletter_duplicates")
	assert.Contains(t, vars, "contact_submissions")
}

func TestRoutes_DebugVarsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMetricsEnabled = false
	r, _, _ := newRouter(t, cfg)

	w := do(r, http.MethodGet, "/api/debug/vars", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Not found","request_id":"`+w.Header().Get(middleware.RequestIDHeader)+`"}`, w.Body.String())
}

func TestRoutes_MailDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MailSendEnabled = false
	r, c, hook := newRouter(t, cfg)

	w := do(r, http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","subject":"Hi","message":"1234567890","agreement":true}`)
	c.Contacts.Wait()

	assert.Equal(t, http.StatusCreated, w.Code)
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "email captured by log transport", e.Message)
	}
}

func TestRoutes_DebugVarsReportOwnStore(t *testing.T) {
	first, _, _ := newRouter(t, testConfig())
	second, _, _ := newRouter(t, testConfig())

	require.Equal(t, http.StatusCreated, do(first, http.MethodPost, "/api/newsletter", `{"email":"a@b.com"}`).Code)

	for _, tc := range []struct {
		engine http.Handler
		want   int
	}{{first, 1}, {second, 0}} {
		w := do(tc.engine, http.MethodGet, "/api/debug/vars", "")
		require.Equal(t, http.StatusOK, w.Code)
		var vars map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vars))
		assert.EqualValues(t, tc.want, vars["store_newsletters"])
	}
}

func TestRegistry_UseAppliesToAPIRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	r := gin.New()
	reg := NewRegistry(r)
	reg.Use(middleware.AccessLog(logger))
	reg.Add(moduleFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}))
	reg.RegisterAll()

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/api/ping", "").Code)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "/api/ping", hook.LastEntry().Data["path"])

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/elsewhere", "").Code)
	assert.Len(t, hook.AllEntries(), 1)
}

type moduleFunc func(rg *gin.RouterGroup)

func (f moduleFunc) Register(rg *gin.RouterGroup) { f(rg) }
