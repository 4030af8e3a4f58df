package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"uniqueIndex" json:"name"`
	Unit         string    `json:"unit"` // "kg", "g", "l", "pcs"
	UnitCost     float64   `gorm:"type:decimal(10,2)" json:"unit_cost"`
	CurrentStock float64   `gorm:"type:decimal(10,3)" json:"current_stock"`
	MinimumStock float64   `gorm:"type:decimal(10,3)" json:"minimum_stock"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

// StockHistory is the append-only audit record of one stock movement.
// Current stock on Ingredient is derived from these rows; rows are
// never updated or deleted once committed.
type StockHistory struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	IngredientID uuid.UUID  `gorm:"index" json:"ingredient_id"`
	OrderID      *uuid.UUID `gorm:"index" json:"order_id,omitempty"`
	Operation    string     `json:"operation"` // "order_consumption", "order_cancellation", "manual_restock", "adjustment"
	Quantity     float64    `gorm:"type:decimal(10,3)" json:"quantity"`
	StockBefore  float64    `gorm:"type:decimal(10,3)" json:"stock_before"`
	StockAfter   float64    `gorm:"type:decimal(10,3)" json:"stock_after"`
	Reason       string     `json:"reason,omitempty"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	User       *User       `gorm:"foreignKey:UserID"`
}
