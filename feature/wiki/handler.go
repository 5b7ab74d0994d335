package wiki

import (
	"errors"
	"io/fs"
	"net/url"

	"data-exporter/core/logger"
	"data-exporter/core/unreal"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for wiki documents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the wiki routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/wiki")
	group.Get("/items", h.HandleListItems)
	group.Get("/items/:name", h.HandleGetItem)
	group.Get("/recipes", h.HandleListRecipes)
	group.Get("/recipes/:rowName", h.HandleGetRecipe)
	group.Get("/enums/:ref", h.HandleGetEnum)
}

// HandleListItems returns every documented item.
// @Summary List Items
// @Description Get every documented item keyed by wiki name.
// @Tags wiki
// @Produce json
// @Success 200 {object} map[string]wiki.WikiItem "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	all, err := h.service.WikiItems(c.Context())
	if err != nil {
		return h.fail(c, "Listing items failed", err)
	}
	return c.JSON(all)
}

// HandleGetItem returns a single documented item.
// @Summary Get Item
// @Description Get a documented item by wiki name.
// @Tags wiki
// @Produce json
// @Param name path string true "Wiki name (e.g. 'Scrap Metal')"
// @Success 200 {object} wiki.WikiItem "Item"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/items/{name} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item name"})
	}

	item, ok, err := h.service.WikiItem(c.Context(), name)
	if err != nil {
		return h.fail(c, "Item lookup failed", err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	return c.JSON(item)
}

// HandleListRecipes returns every recipe variant.
// @Summary List Recipes
// @Description Get every recipe variant in table order.
// @Tags wiki
// @Produce json
// @Success 200 {array} wiki.WikiRecipe "Recipes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/recipes [get]
func (h *Handler) HandleListRecipes(c *fiber.Ctx) error {
	all, err := h.service.WikiRecipes(c.Context())
	if err != nil {
		return h.fail(c, "Listing recipes failed", err)
	}
	return c.JSON(all)
}

// HandleGetRecipe returns the variants of one recipe.
// @Summary Get Recipe
// @Description Get every variant of a recipe row.
// @Tags wiki
// @Produce json
// @Param rowName path string true "Recipe row name"
// @Success 200 {array} wiki.WikiRecipe "Recipe variants"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/recipes/{rowName} [get]
func (h *Handler) HandleGetRecipe(c *fiber.Ctx) error {
	variants, err := h.service.RecipesFor(c.Context(), c.Params("rowName"))
	if err != nil {
		return h.fail(c, "Recipe lookup failed", err)
	}
	if len(variants) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "recipe not found"})
	}
	return c.JSON(variants)
}

// HandleGetEnum resolves an enum reference.
// @Summary Get Enum Display Name
// @Description Resolve an enum reference to its display name.
// @Tags wiki
// @Produce json
// @Param ref path string true "Enum reference (e.g. 'E_RecipeCategory::NewEnumerator0')"
// @Success 200 {object} map[string]string "Display name"
// @Failure 400 {object} map[string]string "Malformed reference"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /wiki/enums/{ref} [get]
func (h *Handler) HandleGetEnum(c *fiber.Ctx) error {
	ref, err := url.PathUnescape(c.Params("ref"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid enum reference"})
	}

	name, err := h.service.EnumDisplayName(c.Context(), ref)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"value": ref, "displayName": name})
	case errors.Is(err, unreal.ErrMalformedEnumReference):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, unreal.ErrObjectNotFound),
		errors.Is(err, unreal.ErrEnumEntryNotFound),
		errors.Is(err, unreal.ErrEnumDisplayNameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return h.fail(c, "Enum lookup failed", err)
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
