package settings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripweaver/internal/app/middleware"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hs256"

func newSettingsRouter() (*gin.Engine, *Handlers) {
	gin.SetMode(gin.TestMode)
	handlers := NewHandlers(testSecret, zap.NewNop())
	r := gin.New()
	r.GET("/api/v1/settings", handlers.GetSettings)
	r.PUT("/api/v1/settings", handlers.PutSettings)
	return r, handlers
}

func settingsRequest(r *gin.Engine, method, body, sessionID string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/settings", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionID})
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSettings(t *testing.T, w *httptest.ResponseRecorder) Settings {
	t.Helper()
	var settings Settings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	return settings
}

func TestSettings_Defaults(t *testing.T) {
	r, _ := newSettingsRouter()

	w := settingsRequest(r, http.MethodGet, "", "visitor")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Settings{Theme: ThemeLight}, decodeSettings(t, w))
}

func TestSettings_PutAndGet(t *testing.T) {
	r, _ := newSettingsRouter()

	w := settingsRequest(r, http.MethodPut, `{"theme":"dark","display_name":"Rui"}`, "visitor")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Settings{Theme: ThemeDark, DisplayName: "Rui"}, decodeSettings(t, w))

	w = settingsRequest(r, http.MethodGet, "", "visitor")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Settings{Theme: ThemeDark, DisplayName: "Rui"}, decodeSettings(t, w))
}

func TestSettings_RejectsUnknownTheme(t *testing.T) {
	r, _ := newSettingsRouter()

	w := settingsRequest(r, http.MethodPut, `{"theme":"sepia"}`, "visitor")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettings_ProfileCookieSurvivesStoreLoss(t *testing.T) {
	r, _ := newSettingsRouter()

	w := settingsRequest(r, http.MethodPut, `{"theme":"dark","display_name":"Rui"}`, "visitor")
	require.Equal(t, http.StatusOK, w.Code)

	var profile *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == ProfileCookie {
			profile = cookie
		}
	}
	require.NotNil(t, profile, "PUT should set the signed profile cookie")

	// A fresh handler models a restarted server with an empty store; the
	// signed cookie restores the settings.
	freshRouter, _ := newSettingsRouter()
	w = settingsRequest(freshRouter, http.MethodGet, "", "visitor", profile)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Settings{Theme: ThemeDark, DisplayName: "Rui"}, decodeSettings(t, w))
}

func TestSettings_TamperedCookieFallsBackToDefaults(t *testing.T) {
	r, _ := newSettingsRouter()

	tampered := &http.Cookie{Name: ProfileCookie, Value: "not-a-valid-token"}
	w := settingsRequest(r, http.MethodGet, "", "visitor", tampered)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Settings{Theme: ThemeLight}, decodeSettings(t, w))
}
