package wiki_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"data-exporter/core/loader"
	"data-exporter/feature/wiki"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, service *wiki.Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	manager := loader.NewManager(zap.NewNop())
	manager.Register(wiki.NewFeature(service, true))
	require.NoError(t, manager.LoadAll(app))
	return app
}

func TestHandler(t *testing.T) {
	service, _, _ := newService(zap.NewNop())
	app := newTestApp(t, service)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"ListItems", "/wiki/items", fiber.StatusOK, `"Old Pistol"`},
		{"GetItem", "/wiki/items/Old%20Pistol", fiber.StatusOK, `"rowName":"pistol"`},
		{"GetIgnoredItem", "/wiki/items/Heater", fiber.StatusNotFound, `"item not found"`},
		{"ListRecipes", "/wiki/recipes", fiber.StatusOK, `"recipe_mystery"`},
		{"GetRecipe", "/wiki/recipes/recipe_pistol", fiber.StatusOK, `"resultItem":"Old Pistol"`},
		{"GetMissingRecipe", "/wiki/recipes/recipe_none", fiber.StatusNotFound, `"recipe not found"`},
		{"GetEnum", "/wiki/enums/E_RecipeCategory::NewEnumerator0", fiber.StatusOK, `"displayName":"Weapon"`},
		{"GetMalformedEnum", "/wiki/enums/E_RecipeCategory", fiber.StatusBadRequest, `"error"`},
		{"GetMissingEnum", "/wiki/enums/E_RecipeCategory::NewEnumerator9", fiber.StatusNotFound, `"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestHandler_ParseFailure(t *testing.T) {
	service := wiki.NewService(&fakeItems{err: errBoom}, &fakeRecipes{}, fakeEnums{}, wiki.DefaultOverrides(), zap.NewNop())
	app := newTestApp(t, service)

	resp, err := app.Test(httptest.NewRequest("GET", "/wiki/items", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "boom")
}

func TestFeature(t *testing.T) {
	service, _, _ := newService(zap.NewNop())

	f := wiki.NewFeature(service, false)
	assert.Equal(t, "wiki", f.Name())
	assert.False(t, f.IsEnabled())

	app := fiber.New()
	manager := loader.NewManager(zap.NewNop())
	manager.Register(f)
	require.NoError(t, manager.LoadAll(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/wiki/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
