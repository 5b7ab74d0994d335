package integrity

import (
	"errors"

	"data-exporter/core/logger"

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
	group.Get("/input", h.HandleInputCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/outputs", h.HandleOutputsCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Input, Schema, Outputs). Outputs lists every target and may take a while.
// @Tags integrity
// @Produce json
// @Success 200 {object} integrity.Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.Run(c.Context()))
}

// HandleInputCheck checks the input dump holds the tables exports read.
// @Summary Check Input
// @Description Checks that every required data table exists in the input dump.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Input Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/input [get]
func (h *Handler) HandleInputCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckInput(c.Context())
	if err != nil {
		l.Error("Input check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing input tables detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSchemaCheck checks the exported_files table schema.
// @Summary Check Schema
// @Description Validates that the database target table matches the exported file model (columns, types).
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 404 {object} map[string]string "Database target disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, "Schema check failed", err)
	}
	return c.JSON(report)
}

// HandleOutputsCheck compares the remote output targets with the output directory.
// @Summary Check Outputs
// @Description Reports documents missing, stale or differing in the bucket and database targets.
// @Tags integrity
// @Produce json
// @Success 200 {object} reconcile.Summary "Outputs Summary"
// @Failure 404 {object} map[string]string "No remote target enabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/outputs [get]
func (h *Handler) HandleOutputsCheck(c *fiber.Ctx) error {
	summary, err := h.service.CheckOutputs(c.Context())
	if err != nil {
		return h.fail(c, "Outputs check failed", err)
	}
	return c.JSON(summary)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, ErrSkipped) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
