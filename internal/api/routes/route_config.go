package routes

import (
	"time"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	CuisineHandler    handlers.CuisineHandler
	AllergenHandler   handlers.AllergenHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	ExamplesHandler   handlers.ExamplesHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Cuisines()
	c.Allergens()
	c.Ingredients()
	c.Recipes()
	c.Examples()
	c.TestRoute()
	c.GuestRoute()
	c.App.Static("/static", "./uploads")
}

func (c *Config) Cuisines() {
	cuisine := c.App.Group("/api/v1/cuisines")
	// cuisine routes
	{
		cuisine.Get("", c.CuisineHandler.GetCuisines)
		cuisine.Post("", c.CuisineHandler.CreateCuisine)
		cuisine.Get("/:id", c.CuisineHandler.GetCuisineDetail)
		cuisine.Put("/:id", c.CuisineHandler.UpdateCuisine)
		cuisine.Delete("/:id", c.CuisineHandler.DeleteCuisine)
	}
}

func (c *Config) Allergens() {
	allergen := c.App.Group("/api/v1/allergens")
	// allergen routes
	{
		allergen.Get("", c.AllergenHandler.GetAllergens)
		allergen.Post("", c.AllergenHandler.CreateAllergen)
		allergen.Get("/:id", c.AllergenHandler.GetAllergenDetail)
		allergen.Put("/:id", c.AllergenHandler.UpdateAllergen)
		allergen.Delete("/:id", c.AllergenHandler.DeleteAllergen)
	}
}

func (c *Config) Ingredients() {
	ingredient := c.App.Group("/api/v1/ingredients")
	// ingredient routes
	{
		ingredient.Get("", c.IngredientHandler.GetIngredients)
		ingredient.Post("", c.IngredientHandler.CreateIngredient)
		ingredient.Get("/:id", c.IngredientHandler.GetIngredientDetail)
		ingredient.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredient.Delete("/:id", c.IngredientHandler.DeleteIngredient)
		ingredient.Get("/:id/recipes", c.RecipeHandler.GetRecipesByIngredient)
	}
}

func (c *Config) Recipes() {
	recipe := c.App.Group("/api/v1/recipes")

	// Basic CRUD operations
	recipe.Get("", c.RecipeHandler.GetRecipes)
	recipe.Post("", c.RecipeHandler.CreateRecipe)
	recipe.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipe.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipe.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	// Special operations
	recipe.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Examples() {
	examples := c.App.Group("/api/v1/examples")
	// framework feature demos
	{
		examples.Post("/body", c.ExamplesHandler.CreateItemWithBody)
		examples.Get("/query-validation", c.ExamplesHandler.QueryValidation)
		examples.Get("/path-validation/:id", c.ExamplesHandler.PathValidation)
		examples.Get("/query-model", c.ExamplesHandler.QueryModel)
		examples.Post("/nested-models", c.ExamplesHandler.CreateProduct)
		examples.Post("/form", c.ExamplesHandler.HandleForm)
		examples.Post("/form-model", c.ExamplesHandler.HandleFormModel)
		examples.Get("/format-example", c.ExamplesHandler.FormatExample)
		examples.Post("/upload-image", c.ExamplesHandler.UploadImage)
	}
}

func (c *Config) TestRoute() {
	test := c.App.Group("/api/v1/test")
	test.Get("", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello, World!"})
	})
	test.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "API is running",
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"endpoints": fiber.Map{
				"recipes":  "/api/v1/recipes",
				"examples": "/api/v1/examples",
			},
		})
	})
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
