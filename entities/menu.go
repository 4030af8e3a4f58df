package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}

// RecipeIngredient maps a menu item to the quantity of an ingredient
// consumed per unit sold.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MenuItemID   uuid.UUID `gorm:"index" json:"menu_item_id"`
	IngredientID uuid.UUID `gorm:"index" json:"ingredient_id"`
	Quantity     float64   `gorm:"type:decimal(10,3)" json:"quantity"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	MenuItem   *MenuItem   `gorm:"foreignKey:MenuItemID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
