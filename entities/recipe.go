package entities

type Recipe struct {
	ID           uint   `gorm:"primary_key" json:"id"`
	Title        string `gorm:"type:varchar(100);not null" json:"title"`
	Description  string `gorm:"type:varchar(500)" json:"description,omitempty"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
	CookingTime  int    `gorm:"not null" json:"cooking_time"`
	Difficulty   int    `gorm:"not null" json:"difficulty"`
	CuisineID    uint   `gorm:"not null" json:"cuisine_id"`
	ImageURL     string `json:"image_url,omitempty"`

	Cuisine     *Cuisine           `gorm:"foreignKey:CuisineID" json:"cuisine,omitempty"`
	Allergens   []Allergen         `gorm:"many2many:recipe_allergens" json:"allergens"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Timestamp
}

// RecipeIngredient links a Recipe to an Ingredient and carries the
// per-recipe quantity and unit. Rows live and die with their Recipe.
type RecipeIngredient struct {
	ID           uint        `gorm:"primary_key" json:"id"`
	RecipeID     uint        `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint        `gorm:"not null" json:"ingredient_id"`
	Quantity     int         `gorm:"not null" json:"quantity"`
	Measurement  Measurement `gorm:"not null" json:"measurement"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// RecipeAllergen is the join row behind the Recipe.Allergens relation.
type RecipeAllergen struct {
	RecipeID   uint `gorm:"primary_key" json:"recipe_id"`
	AllergenID uint `gorm:"primary_key" json:"allergen_id"`
}
