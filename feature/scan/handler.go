package scan

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/imaging"
	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
	"fridge-manager/core/vision"
)

// Handler handles HTTP requests for scans.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the scan routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/scan", h.HandleScan)
}

// HandleScan processes one uploaded shelf photo.
// @Summary Scan a shelf photo
// @Description Runs object detection and barcode decoding on the uploaded image and reconciles the inventory with the result.
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Shelf photo (jpeg, png or gif)"
// @Success 200 {object} Result "Reconciled batch"
// @Failure 400 {object} map[string]string "Invalid or missing image"
// @Failure 502 {object} map[string]string "Detection backend failure"
// @Failure 500 {object} map[string]string "Persistence failure"
// @Router /scan [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing file field 'image'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable upload",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable upload",
		})
	}

	result, err := h.service.ProcessImage(c.Context(), data)
	if err != nil {
		return h.scanError(c, l, err)
	}

	return c.JSON(result)
}

// scanError maps pipeline failures onto HTTP statuses.
func (h *Handler) scanError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, imaging.ErrInvalidImage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, vision.ErrInference):
		l.Error("Detection backend failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, pantry.ErrPersistence):
		l.Error("Inventory persistence failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
