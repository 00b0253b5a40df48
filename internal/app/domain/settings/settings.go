package settings

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tripweaver/internal/app/middleware"
	"tripweaver/internal/app/models"
)

// Settings are the local session fields the UI echoes back: display
// theme and signed-in display name. The planning pipeline reads none of
// this and behaves identically with or without it.
type Settings struct {
	Theme       string `json:"theme"`
	DisplayName string `json:"display_name"`
}

const (
	// ProfileCookie carries the settings across browser sessions as a
	// signed token, so they survive server restarts and cache eviction.
	ProfileCookie     = "trip_profile"
	profileExpiration = 90 * 24 * time.Hour

	ThemeLight = "light"
	ThemeDark  = "dark"
)

type profileClaims struct {
	DisplayName string `json:"name"`
	Theme       string `json:"theme"`
	jwt.RegisteredClaims
}

// Handlers serves GET/PUT /api/v1/settings. Values live in an in-memory
// store keyed by session ID, mirrored into the signed profile cookie.
type Handlers struct {
	store     *cache.Cache
	jwtSecret []byte
	logger    *zap.Logger
}

func NewHandlers(jwtSecret string, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:     cache.New(cache.NoExpiration, 0),
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

// GetSettings returns the stored settings, falling back to the signed
// profile cookie and finally to defaults.
func (h *Handlers) GetSettings(c *gin.Context) {
	id := h.sessionID(c)
	if found, ok := h.store.Get(id); ok {
		c.JSON(http.StatusOK, found.(Settings))
		return
	}

	if settings, err := h.fromCookie(c); err == nil {
		h.store.Set(id, settings, cache.NoExpiration)
		c.JSON(http.StatusOK, settings)
		return
	}

	c.JSON(http.StatusOK, Settings{Theme: ThemeLight})
}

// PutSettings stores the settings and refreshes the profile cookie.
func (h *Handlers) PutSettings(c *gin.Context) {
	var settings Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if settings.Theme == "" {
		settings.Theme = ThemeLight
	}
	if settings.Theme != ThemeLight && settings.Theme != ThemeDark {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.Wrapf(models.ErrValidation, "unknown theme %q", settings.Theme).Error()})
		return
	}

	h.store.Set(h.sessionID(c), settings, cache.NoExpiration)

	token, err := h.signProfile(settings)
	if err != nil {
		h.logger.Error("failed to sign profile cookie", zap.Error(err))
	} else {
		c.SetCookie(ProfileCookie, token, int(profileExpiration.Seconds()), "/", "", false, true)
	}

	c.JSON(http.StatusOK, settings)
}

func (h *Handlers) sessionID(c *gin.Context) string {
	id, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		return "anonymous"
	}
	return id
}

func (h *Handlers) signProfile(settings Settings) (string, error) {
	claims := profileClaims{
		DisplayName: settings.DisplayName,
		Theme:       settings.Theme,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(profileExpiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
}

func (h *Handlers) fromCookie(c *gin.Context) (Settings, error) {
	raw, err := c.Cookie(ProfileCookie)
	if err != nil || raw == "" {
		return Settings{}, errors.New("no profile cookie")
	}

	var claims profileClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return Settings{}, errors.Wrap(err, "invalid profile cookie")
	}

	theme := claims.Theme
	if theme != ThemeLight && theme != ThemeDark {
		theme = ThemeLight
	}
	return Settings{Theme: theme, DisplayName: claims.DisplayName}, nil
}
