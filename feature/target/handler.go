package target

import (
	"errors"

	"factory-planner/core/logger"
	"factory-planner/core/reconcile"
	"factory-planner/feature/catalog"
	"factory-planner/feature/target/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for build targets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the target routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/targets")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/item", h.HandleSelectItem)
	group.Put("/:id/buildings", h.HandleEditBuildings)
	group.Put("/:id/rate", h.HandleEditRate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList lists all targets.
// @Summary List Targets
// @Description List build targets with reconciled building counts and rates.
// @Tags targets
// @Produce json
// @Success 200 {array} models.TargetView "Targets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /targets [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	views, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "List targets failed", err)
	}
	return c.JSON(views)
}

// HandleCreate adds a target.
// @Summary Create Target
// @Description Add a target producing the item with one building. The item may be empty.
// @Tags targets
// @Accept json
// @Produce json
// @Param body body models.CreateRequest false "Item"
// @Success 201 {object} models.TargetView "Created"
// @Failure 404 {object} map[string]string "Unknown item"
// @Failure 409 {object} map[string]string "Session full"
// @Router /targets [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	view, err := h.service.Create(c.Context(), req.Item)
	if err != nil {
		return h.fail(c, "Create target failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleGet returns one target.
// @Summary Get Target
// @Tags targets
// @Produce json
// @Param id path string true "Target ID"
// @Success 200 {object} models.TargetView "Target"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /targets/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	view, err := h.service.View(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get target failed", err)
	}
	return c.JSON(view)
}

// HandleSelectItem changes the item of a target.
// @Summary Select Target Item
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param body body models.ItemRequest true "Item"
// @Success 200 {object} models.TargetView "Target"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /targets/{id}/item [put]
func (h *Handler) HandleSelectItem(c *fiber.Ctx) error {
	var req models.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	view, err := h.service.SelectItem(c.Context(), c.Params("id"), req.Item)
	if err != nil {
		return h.fail(c, "Select item failed", err)
	}
	return c.JSON(view)
}

// HandleEditBuildings sets the building count.
// @Summary Edit Building Count
// @Description Make the building count authoritative. Accepts integers, decimals and fractions.
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param body body models.ValueRequest true "Building count"
// @Success 200 {object} models.TargetView "Target"
// @Failure 400 {object} models.EditError "Malformed number, target unchanged"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /targets/{id}/buildings [put]
func (h *Handler) HandleEditBuildings(c *fiber.Ctx) error {
	var req models.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	view, err := h.service.EditBuildings(c.Context(), c.Params("id"), req.Value)
	return h.edited(c, view, err)
}

// HandleEditRate sets the production rate.
// @Summary Edit Production Rate
// @Description Make the rate, in the configured unit, authoritative.
// @Tags targets
// @Accept json
// @Produce json
// @Param id path string true "Target ID"
// @Param body body models.ValueRequest true "Rate"
// @Success 200 {object} models.TargetView "Target"
// @Failure 400 {object} models.EditError "Malformed number, target unchanged"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /targets/{id}/rate [put]
func (h *Handler) HandleEditRate(c *fiber.Ctx) error {
	var req models.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	view, err := h.service.EditRate(c.Context(), c.Params("id"), req.Value)
	return h.edited(c, view, err)
}

// HandleDelete removes a target.
// @Summary Delete Target
// @Tags targets
// @Param id path string true "Target ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /targets/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, "Delete target failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) edited(c *fiber.Ctx, view *models.TargetView, err error) error {
	var pe *reconcile.ParseError
	if errors.As(err, &pe) && view != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.EditError{Error: pe.Error(), Target: view})
	}
	if err != nil {
		return h.fail(c, "Edit target failed", err)
	}
	return c.JSON(view)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrTargetNotFound), errors.Is(err, catalog.ErrUnknownItem):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrTooManyTargets):
		status = fiber.StatusConflict
	default:
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
