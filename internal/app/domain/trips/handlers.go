package trips

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"tripweaver/internal/app/export"
	"tripweaver/internal/app/middleware"
	"tripweaver/internal/app/models"
	"tripweaver/internal/app/observability/metrics"
	"tripweaver/internal/app/planner"
	"tripweaver/internal/app/render"
	"tripweaver/internal/app/session"
)

// Handlers owns the trip plan API: submission, current view, reset,
// export and share. All view state mutations go through the session's
// transition methods.
type Handlers struct {
	planner *planner.Service
	logger  *zap.Logger
}

func NewHandlers(plannerService *planner.Service, logger *zap.Logger) *Handlers {
	return &Handlers{
		planner: plannerService,
		logger:  logger,
	}
}

// viewPayload is the state machine's externally visible shape.
type viewPayload struct {
	State session.ViewState    `json:"state"`
	View  *render.RenderedView `json:"view,omitempty"`
	Error string               `json:"error,omitempty"`
}

func payloadFor(snap session.Snapshot) viewPayload {
	payload := viewPayload{State: snap.State, Error: snap.Message}
	if snap.Plan != nil {
		payload.View = render.Render(snap.Plan)
	}
	return payload
}

// CreateTrip handles POST /api/v1/trips: it binds the preferences, moves
// the session into Loading, issues the single generation request and
// lands in Result or Error. A submission while one is already in flight
// is a no-op answered with 409.
func (h *Handlers) CreateTrip(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	var prefs models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sess.BeginSubmission(); err != nil {
		h.logger.Debug("submission rejected", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.GeneratePlan(c.Request.Context(), prefs)
	if err != nil {
		// Every generation failure collapses to one user-facing message;
		// the classified cause was already logged and counted upstream.
		if failErr := sess.Fail(models.GenerationFailedMessage); failErr != nil {
			h.logger.Error("failed to record generation failure", zap.Error(failErr))
		}
		c.JSON(http.StatusBadGateway, payloadFor(sess.Snapshot()))
		return
	}

	if err := sess.Complete(plan); err != nil {
		h.logger.Error("failed to install generated plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payloadFor(sess.Snapshot()))
}

// CurrentTrip handles GET /api/v1/trips/current.
func (h *Handlers) CurrentTrip(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	c.JSON(http.StatusOK, payloadFor(sess.Snapshot()))
}

// ResetTrip handles POST /api/v1/trips/reset: back to the form, plan
// discarded. Rejected while a generation is in flight.
func (h *Handlers) ResetTrip(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	if err := sess.Reset(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payloadFor(sess.Snapshot()))
}

// ExportTrip handles GET /api/v1/trips/export. Export is best-effort: a
// capture failure is reported without touching the session state or the
// current plan.
func (h *Handlers) ExportTrip(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	snap := sess.Snapshot()
	if snap.State != session.StateResult || snap.Plan == nil {
		h.recordExport(c.Request.Context(), "pdf", "no_plan")
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrNoActivePlan.Error()})
		return
	}

	document, err := export.PDF(render.Render(snap.Plan))
	if err != nil {
		h.recordExport(c.Request.Context(), "pdf", "error")
		h.logger.Warn("document export failed",
			zap.String("destination", snap.Plan.Destination),
			zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrExportUnavailable) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": "export failed"})
		return
	}

	h.recordExport(c.Request.Context(), "pdf", "success")
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(snap.Plan.Destination)+`"`)
	c.Data(http.StatusOK, "application/pdf", document)
}

// ShareTrip handles GET /api/v1/trips/share with a plain-text synopsis.
func (h *Handlers) ShareTrip(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	snap := sess.Snapshot()
	if snap.State != session.StateResult || snap.Plan == nil {
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrNoActivePlan.Error()})
		return
	}
	h.recordExport(c.Request.Context(), "share", "success")
	c.String(http.StatusOK, export.ShareSummary(snap.Plan))
}

// ShareTripQR handles GET /api/v1/trips/share/qr with a PNG QR code of
// the share summary.
func (h *Handlers) ShareTripQR(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	snap := sess.Snapshot()
	if snap.State != session.StateResult || snap.Plan == nil {
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrNoActivePlan.Error()})
		return
	}
	png, err := export.ShareQR(snap.Plan)
	if err != nil {
		h.recordExport(c.Request.Context(), "qr", "error")
		h.logger.Warn("QR share failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "share failed"})
		return
	}
	h.recordExport(c.Request.Context(), "qr", "success")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handlers) recordExport(ctx context.Context, kind, outcome string) {
	if m := metrics.Get(); m != nil {
		m.ExportsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", kind),
			attribute.String("outcome", outcome),
		))
	}
}
