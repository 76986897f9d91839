package integrity

import (
	"factory-planner/core/logger"
	_ "factory-planner/feature/integrity/checks" // swagger models

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/data", h.HandleDataCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/drift", h.HandleDriftCheck)
	group.Post("/drift/sync", h.HandleDriftSync)
}

// HandleIntegrityCheck runs every check.
// @Summary Run All Integrity Checks
// @Description Runs the structure, data file, schema and drift checks. A failing check is reported in place.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if data, err := h.service.CheckCatalogData(ctx); err != nil {
		report["data"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["data"] = data
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if drift, err := h.service.CheckDrift(ctx, false); err != nil {
		report["drift"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["drift"] = drift
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the bucket layout.
// @Summary Check Structure
// @Description Checks that the data/ and images/ folders exist in the bucket. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{"status": "fixed", "fixed": missing})
		}
	}

	return c.JSON(fiber.Map{"status": "checked", "missing": missing})
}

// HandleDataCheck inspects the recipe data file.
// @Summary Check Recipe Data
// @Description Checks that the recipe data file exists in the bucket and builds into a valid catalog.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DataReport "Data Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/data [get]
func (h *Handler) HandleDataCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckCatalogData(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Data check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSchemaCheck compares the catalog tables with their models.
// @Summary Check Catalog Schema
// @Description Checks that the catalog tables exist with the expected columns.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleDriftCheck compares the data file with the database mirror.
// @Summary Check Catalog Drift
// @Description Lists items, buildings and recipes that differ between the bucket data file and the database tables.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DriftReport "Drift Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/drift [get]
func (h *Handler) HandleDriftCheck(c *fiber.Ctx) error {
	return h.drift(c, false)
}

// HandleDriftSync rewrites the database mirror from the data file.
// @Summary Sync Catalog Mirror
// @Description Replaces the database catalog with the bucket data file when they differ.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DriftReport "Drift Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/drift/sync [post]
func (h *Handler) HandleDriftSync(c *fiber.Ctx) error {
	return h.drift(c, true)
}

func (h *Handler) drift(c *fiber.Ctx, sync bool) error {
	report, err := h.service.CheckDrift(c.Context(), sync)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Drift check failed", zap.Error(err), zap.Bool("sync", sync))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
