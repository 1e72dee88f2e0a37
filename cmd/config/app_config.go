package config

import (
	"os"
	"time"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/routes"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/internal/utils"
	"recipe-catalog/internal/utils/storage"
	"recipe-catalog/pkg/allergen"
	"recipe-catalog/pkg/cuisine"
	"recipe-catalog/pkg/ingredient"
	"recipe-catalog/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	if err := os.MkdirAll("./uploads", os.ModePerm); err != nil {
		log.Fatalf("error creating uploads directory: %v", err)
	}

	// Repository
	cuisineRepository := cuisine.NewCuisineRepository(db)
	allergenRepository := allergen.NewAllergenRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	cuisineService := cuisine.NewCuisineService(cuisineRepository)
	allergenService := allergen.NewAllergenService(allergenRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)

	// Handler
	cuisineHandler := handlers.NewCuisineHandler(cuisineService, validator)
	allergenHandler := handlers.NewAllergenHandler(allergenService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	examplesHandler := handlers.NewExamplesHandler(validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		CuisineHandler:    cuisineHandler,
		AllergenHandler:   allergenHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		ExamplesHandler:   examplesHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
