package ingredient

import (
	"context"
	"errors"
	"testing"

	"recipe-catalog/domain"

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

func TestDeleteIngredientBlockedWhenRecipeUsesIt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Tomato"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "recipe_ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := repo.DeleteIngredient(context.Background(), 1)
	if !errors.Is(err, domain.ErrIngredientInUse) {
		t.Fatalf("DeleteIngredient() error = %v, want ErrIngredientInUse", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestDeleteIngredientRemovesUnreferencedRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Tomato"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "recipe_ingredients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM "ingredients"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteIngredient(context.Background(), 1); err != nil {
		t.Fatalf("DeleteIngredient() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
