package entities

import (
	"time"

	"github.com/google/uuid"
)

type DiningTable struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Number   int       `gorm:"uniqueIndex" json:"number"`
	Capacity int       `json:"capacity"`
	Status   string    `json:"status"` // "available", "occupied", "reserved"

	Timestamp
}

type Reservation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TableID       *uuid.UUID `json:"table_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	PartySize     int        `json:"party_size"`
	ReservedAt    time.Time  `json:"reserved_at"`
	Status        string     `json:"status"` // "pending", "confirmed", "seated", "cancelled"
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`

	Table *DiningTable `gorm:"foreignKey:TableID"`
	Timestamp
}
