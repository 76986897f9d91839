package catalog

import (
	"errors"

	"factory-planner/core/logger"
	"factory-planner/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/items", h.HandleListItems)
	group.Get("/tiers", h.HandleListTiers)
	group.Get("/items/:key", h.HandleGetItem)
	group.Get("/items/:key/recipe", h.HandleGetRecipe)
	group.Post("/reload", h.HandleReload)
}

// HandleListItems lists all items.
// @Summary List Items
// @Description List every item in the recipe catalog.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.ItemView "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.Items(c.Context())
	if err != nil {
		return h.fail(c, "List items failed", err)
	}
	return c.JSON(items)
}

// HandleListTiers lists items grouped by tier.
// @Summary List Item Tiers
// @Description List items grouped by tier, lowest tier first.
// @Tags catalog
// @Produce json
// @Success 200 {array} []models.ItemView "Tiers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/tiers [get]
func (h *Handler) HandleListTiers(c *fiber.Ctx) error {
	tiers, err := h.service.Tiers(c.Context())
	if err != nil {
		return h.fail(c, "List tiers failed", err)
	}
	return c.JSON(tiers)
}

// HandleGetItem returns a single item.
// @Summary Get Item
// @Tags catalog
// @Produce json
// @Param key path string true "Item key"
// @Success 200 {object} models.ItemView "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/items/{key} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.Item(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, "Get item failed", err)
	}
	return c.JSON(item)
}

// HandleGetRecipe returns the recipe and per-building rate for an item.
// @Summary Get Item Recipe
// @Description Recipe used to produce the item and the rate of a single building ("N/A" when undefined).
// @Tags catalog
// @Produce json
// @Param key path string true "Item key"
// @Success 200 {object} models.RecipeView "Recipe"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/items/{key}/recipe [get]
func (h *Handler) HandleGetRecipe(c *fiber.Ctx) error {
	view, err := h.service.RecipeFor(c.Context(), c.Params("key"))
	if err != nil {
		return h.fail(c, "Get recipe failed", err)
	}
	return c.JSON(view)
}

// HandleReload re-reads the catalog from its source.
// @Summary Reload Catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Reload result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	n, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, "Catalog reload failed", err)
	}
	return c.JSON(fiber.Map{"status": "reloaded", "items": n})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	var nre *reconcile.NoRecipeError
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrUnknownItem) || errors.As(err, &nre) {
		status = fiber.StatusNotFound
	} else {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
