package products

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/catalog"
	"fridge-manager/core/logger"
)

// Handler handles HTTP requests for product lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/:code", h.HandleGetProduct)
}

// HandleGetProduct returns product metadata for a barcode.
// @Summary Get Product by Barcode
// @Description Looks up a packaged product in Open Food Facts by its barcode payload.
// @Tags products
// @Accept json
// @Produce json
// @Param code path string true "Barcode payload (e.g. '3017620422003')"
// @Success 200 {object} catalog.Product "Product Metadata"
// @Failure 404 {object} map[string]string "Unknown Product"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /products/{code} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	product, err := h.service.GetProduct(c.Context(), code)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Product lookup failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(product)
}
