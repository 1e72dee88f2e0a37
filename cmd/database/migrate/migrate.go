package migration

import (
	"fmt"
	"log"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// RecipeAllergen carries a composite primary key, so the join table
	// must be registered before AutoMigrate builds the relation.
	if err := db.SetupJoinTable(&entities.Recipe{}, "Allergens", &entities.RecipeAllergen{}); err != nil {
		log.Fatalf("Error setting up recipe allergen join table: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Cuisine{}); err != nil {
		log.Fatalf("Error migrating cuisine database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Allergen{}); err != nil {
		log.Fatalf("Error migrating allergen database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe ingredient database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
