package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderNumber  string     `gorm:"uniqueIndex" json:"order_number"`
	TableID      *uuid.UUID `json:"table_id,omitempty"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CustomerName string     `json:"customer_name,omitempty"`
	Type         string     `json:"type"`   // "dine_in", "takeaway"
	Status       string     `json:"status"` // "pending", "preparing", "ready", "served", "cancelled"
	Subtotal     float64    `gorm:"type:decimal(10,2)" json:"subtotal"`
	TaxAmount    float64    `gorm:"type:decimal(10,2)" json:"tax_amount"`
	TotalAmount  float64    `gorm:"type:decimal(10,2)" json:"total_amount"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`

	Table *DiningTable `gorm:"foreignKey:TableID"`
	User  *User        `gorm:"foreignKey:UserID"`
	Items []OrderItem  `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID `gorm:"index" json:"order_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2)" json:"unit_price"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
}
