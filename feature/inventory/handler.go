package inventory

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fridge-manager/core/logger"
	"fridge-manager/core/pantry"
)

// Handler handles HTTP requests for the pantry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pantry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pantry")
	group.Get("/", h.HandleGetInventory)
	group.Post("/items", h.HandleAddItem)
	group.Get("/unresolved", h.HandleListUnresolved)
	group.Post("/resolve", h.HandleResolve)
	group.Get("/history", h.HandleHistory)
	group.Delete("/:identity", h.HandleRemoveItem)
}

// HandleGetInventory returns the current inventory snapshot.
// @Summary Get Inventory
// @Description Returns every stored item with quantities, categories and expiry estimates.
// @Tags pantry
// @Accept json
// @Produce json
// @Success 200 {object} pantry.Snapshot "Inventory Snapshot"
// @Router /pantry [get]
func (h *Handler) HandleGetInventory(c *fiber.Ctx) error {
	return c.JSON(h.service.Snapshot())
}

// HandleAddItem records a manual inventory entry.
// @Summary Add Item Manually
// @Description Records a hand entered item. Quantity is absolute and replaces the stored value; zero removes the item.
// @Tags pantry
// @Accept json
// @Produce json
// @Param item body ManualItem true "Item to record"
// @Success 200 {object} map[string]interface{} "Applied Plan and Inventory"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/items [post]
func (h *Handler) HandleAddItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var item ManualItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "field 'name' is required",
		})
	}

	plan, err := h.service.Add(c.Context(), item)
	if err != nil {
		l.Error("Manual add failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"plan":      plan,
		"inventory": h.service.Snapshot(),
	})
}

// HandleListUnresolved lists queued evidence awaiting a binding.
// @Summary List Unresolved Observations
// @Description Returns raw labels and barcode payloads that scans produced but nothing could name yet.
// @Tags pantry
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Unresolved Queue"
// @Router /pantry/unresolved [get]
func (h *Handler) HandleListUnresolved(c *fiber.Ctx) error {
	items := h.service.Unresolved()
	return c.JSON(fiber.Map{
		"items": items,
		"total": len(items),
	})
}

// HandleResolve binds a queued raw value to an identity.
// @Summary Resolve Unresolved Observation
// @Description Binds a queued raw value to an identity and replays the parked evidence into the inventory.
// @Tags pantry
// @Accept json
// @Produce json
// @Param binding body ResolveRequest true "Binding for the queued raw value"
// @Success 200 {object} map[string]interface{} "Applied Plan and Inventory"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Queued"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/resolve [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "field 'raw' is required",
		})
	}

	plan, err := h.service.Resolve(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNotQueued) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Resolve failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"plan":      plan,
		"inventory": h.service.Snapshot(),
	})
}

// HandleHistory returns recent scan batches.
// @Summary Get Scan History
// @Description Returns recent reconciliation batches, newest first.
// @Tags pantry
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of records (default 20, max 100)"
// @Success 200 {object} map[string]interface{} "Scan History"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	limit := c.QueryInt("limit", 0)

	records, err := h.service.History(c.Context(), limit)
	if err != nil {
		l.Error("History read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"total":   len(records),
	})
}

// HandleRemoveItem is the explicit removal signal: without a count the item
// leaves the inventory entirely; with one, that many units are taken out.
// @Summary Remove Item
// @Description Removes an item from the inventory. Without a count the item is removed entirely; a count removes that many units (a count at or above the stored quantity also removes the item).
// @Tags pantry
// @Accept json
// @Produce json
// @Param identity path string true "Item identity (e.g. 'apple')"
// @Param count query int false "Units to remove (omitted or 0 removes the item entirely)"
// @Success 200 {object} map[string]interface{} "Remaining Entry and Inventory"
// @Failure 404 {object} map[string]string "Unknown Identity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/{identity} [delete]
func (h *Handler) HandleRemoveItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	identity := c.Params("identity")
	count := c.QueryInt("count", 0)

	entry, err := h.service.Remove(c.Context(), identity, count)
	if err != nil {
		if errors.Is(err, pantry.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Item removal failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"remaining": entry,
		"inventory": h.service.Snapshot(),
	})
}
