package entities

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID       uuid.UUID  `gorm:"index" json:"order_id"`
	Method        string     `json:"method"` // "cash", "midtrans"
	Amount        float64    `gorm:"type:decimal(10,2)" json:"amount"`
	Status        string     `json:"status"` // "pending", "paid", "failed", "refunded"
	TransactionID string     `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}
