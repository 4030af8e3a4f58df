package domain

import "errors"

const (
	TableStatusAvailable = "available"
	TableStatusOccupied  = "occupied"
	TableStatusReserved  = "reserved"

	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusSeated    = "seated"
	ReservationStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateTable        = "table created successfully"
	MessageSuccessGetTables          = "tables retrieved successfully"
	MessageSuccessUpdateTable        = "table updated successfully"
	MessageSuccessCreateReservation  = "reservation created successfully"
	MessageSuccessGetReservations    = "reservations retrieved successfully"
	MessageSuccessUpdateReservation  = "reservation updated successfully"
	MessageFailedCreateTable         = "failed to create table"
	MessageFailedGetTables           = "failed to retrieve tables"
	MessageFailedUpdateTable         = "failed to update table"
	MessageFailedCreateReservation   = "failed to create reservation"
	MessageFailedGetReservations     = "failed to retrieve reservations"
	MessageFailedUpdateReservation   = "failed to update reservation"

	ErrTableNotFound          = errors.New("table not found")
	ErrTableNumberTaken       = errors.New("table number already in use")
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrReservationTimeInvalid = errors.New("reservation time must be in the future")
)

type (
	CreateTableRequest struct {
		Number   int `json:"number" validate:"required,gt=0"`
		Capacity int `json:"capacity" validate:"required,gt=0"`
	}

	UpdateTableRequest struct {
		Capacity *int   `json:"capacity,omitempty" validate:"omitempty,gt=0"`
		Status   string `json:"status,omitempty" validate:"omitempty,oneof=available occupied reserved"`
	}

	CreateReservationRequest struct {
		TableID       string `json:"table_id,omitempty" validate:"omitempty,uuid"`
		CustomerName  string `json:"customer_name" validate:"required,min=2"`
		CustomerPhone string `json:"customer_phone" validate:"required"`
		CustomerEmail string `json:"customer_email,omitempty" validate:"omitempty,email"`
		PartySize     int    `json:"party_size" validate:"required,gt=0"`
		ReservedAt    string `json:"reserved_at" validate:"required"`
		Notes         string `json:"notes,omitempty"`
	}

	UpdateReservationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed seated cancelled"`
	}
)
