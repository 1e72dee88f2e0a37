package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gormDB, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestCreateRecipeRollsBackWhenCuisineMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuisines"`).WillReturnRows(countRows(0))
	mock.ExpectRollback()

	err := repo.CreateRecipe(context.Background(), &entities.Recipe{
		Title:        "Pasta",
		Instructions: "Boil water then cook the pasta",
		CookingTime:  20,
		Difficulty:   2,
		CuisineID:    99,
	}, nil)

	if !errors.Is(err, domain.ErrCuisineNotFound) {
		t.Fatalf("CreateRecipe() error = %v, want ErrCuisineNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreateRecipeRollsBackWhenAllergenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuisines"`).WillReturnRows(countRows(1))
	// two requested allergen ids, only one exists
	mock.ExpectQuery(`SELECT count\(\*\) FROM "allergens"`).WillReturnRows(countRows(1))
	mock.ExpectRollback()

	err := repo.CreateRecipe(context.Background(), &entities.Recipe{
		Title:        "Pasta",
		Instructions: "Boil water then cook the pasta",
		CookingTime:  20,
		Difficulty:   2,
		CuisineID:    1,
	}, []uint{2, 99})

	if !errors.Is(err, domain.ErrAllergenNotFound) {
		t.Fatalf("CreateRecipe() error = %v, want ErrAllergenNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreateRecipeRollsBackWhenIngredientMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuisines"`).WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "ingredients"`).WillReturnRows(countRows(0))
	mock.ExpectRollback()

	err := repo.CreateRecipe(context.Background(), &entities.Recipe{
		Title:        "Pasta",
		Instructions: "Boil water then cook the pasta",
		CookingTime:  20,
		Difficulty:   2,
		CuisineID:    1,
		Ingredients: []entities.RecipeIngredient{
			{IngredientID: 42, Quantity: 1, Measurement: entities.MeasurementGram},
		},
	}, nil)

	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("CreateRecipe() error = %v, want ErrIngredientNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestDeleteRecipeRemovesLinksAndKeepsReferences(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Pasta"))
	mock.ExpectExec(`DELETE FROM "recipe_allergens"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "recipe_ingredients"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "recipes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteRecipe(context.Background(), 1); err != nil {
		t.Fatalf("DeleteRecipe() error = %v", err)
	}

	// No delete may ever touch cuisines, allergens or ingredients.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestDeleteRecipeNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))
	mock.ExpectRollback()

	err := repo.DeleteRecipe(context.Background(), 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("DeleteRecipe() error = %v, want gorm.ErrRecordNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUpdateRecipeValidatesNewCuisineInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Pasta"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cuisines"`).WillReturnRows(countRows(0))
	mock.ExpectRollback()

	err := repo.UpdateRecipe(context.Background(), 1, map[string]interface{}{"cuisine_id": uint(9)})
	if !errors.Is(err, domain.ErrCuisineNotFound) {
		t.Fatalf("UpdateRecipe() error = %v, want ErrCuisineNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestGetRecipesByIngredientUnknownIngredient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "ingredients"`).WillReturnRows(countRows(0))

	_, err := repo.GetRecipesByIngredient(context.Background(), 42)
	if !errors.Is(err, domain.ErrIngredientNotFound) {
		t.Fatalf("GetRecipesByIngredient() error = %v, want ErrIngredientNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestGetRecipesAppliesDifficultyFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	// Preload order is not part of the contract.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE difficulty =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "instructions", "cooking_time", "difficulty", "cuisine_id"}).
			AddRow(1, "Pasta", "Boil water then cook the pasta", 20, 5, 1))
	mock.ExpectQuery(`FROM "cuisines"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Italian"))
	mock.ExpectQuery(`FROM "(recipe_)?allergens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery(`FROM "recipe_ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipe_id", "ingredient_id", "quantity", "measurement"}))

	recipes, err := repo.GetRecipes(context.Background(), 0, 10, 5)
	if err != nil {
		t.Fatalf("GetRecipes() error = %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("GetRecipes() returned %d recipes, want 1", len(recipes))
	}
	if recipes[0].Difficulty != 5 {
		t.Errorf("Difficulty = %d, want 5", recipes[0].Difficulty)
	}
	if recipes[0].Cuisine == nil || recipes[0].Cuisine.Name != "Italian" {
		t.Errorf("Cuisine = %+v, want Italian", recipes[0].Cuisine)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSaveRecipeImageURL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecipeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "recipes" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.SaveRecipeImageURL(context.Background(), 1, "https://example.com/recipes/recipe-1.png"); err != nil {
		t.Fatalf("SaveRecipeImageURL() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
