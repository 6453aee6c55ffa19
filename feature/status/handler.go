package status

import (
	"fridge-manager/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for status checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/", h.HandleStatusCheck)
}

// HandleStatusCheck runs every backend probe.
// @Summary Service Status
// @Description Probes the detection backend, object storage, history database and catalog lookup. Disabled backends report disabled, not error.
// @Tags status
// @Accept json
// @Produce json
// @Success 200 {object} Report "Status Report"
// @Router /status [get]
func (h *Handler) HandleStatusCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Running status checks")

	report := h.service.Check(c.Context())
	if !report.Healthy {
		l.Warn("Service is degraded")
	}
	return c.JSON(report)
}
