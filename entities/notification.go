package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Category  string    `json:"category"` // "order", "inventory", "payment", "system"
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

// NotificationPreference holds per-user opt-in flags per category. A user
// without a row is treated as opted in to everything.
type NotificationPreference struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	OrderUpdates         bool      `gorm:"default:true" json:"order_updates"`
	InventoryAlerts      bool      `gorm:"default:true" json:"inventory_alerts"`
	PaymentNotifications bool      `gorm:"default:true" json:"payment_notifications"`
	SystemAlerts         bool      `gorm:"default:true" json:"system_alerts"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type Setting struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Key   string    `gorm:"uniqueIndex;column:setting_key" json:"key"`
	Value string    `json:"value"`

	Timestamp
}
