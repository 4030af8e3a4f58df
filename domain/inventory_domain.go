package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Stock history operation kinds. Consumption reduces stock, the other
// kinds increase or correct it; the quantity column always stores the
// unsigned magnitude.
const (
	StockOpOrderConsumption  = "order_consumption"
	StockOpOrderCancellation = "order_cancellation"
	StockOpManualRestock     = "manual_restock"
	StockOpAdjustment        = "adjustment"
)

const (
	ReasonOrderServed    = "Order served"
	ReasonOrderCancelled = "Order cancelled"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deactivated successfully"
	MessageSuccessRestock          = "stock recorded successfully"
	MessageSuccessGetStockHistory  = "stock history retrieved successfully"
	MessageSuccessGetUsageReport   = "usage report retrieved successfully"
	MessageFailedAddIngredient     = "failed to add ingredient"
	MessageFailedGetIngredients    = "failed to retrieve ingredients"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to deactivate ingredient"
	MessageFailedRestock           = "failed to record stock"
	MessageFailedGetStockHistory   = "failed to retrieve stock history"
	MessageFailedGetUsageReport    = "failed to retrieve usage report"

	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrQuantityNotPositive   = errors.New("quantity must be greater than zero")
	ErrStockAlreadyDeducted  = errors.New("stock already deducted for this order")
	ErrStockAlreadyRestored  = errors.New("stock already restored for this order")
	ErrReportRangeInvalid    = errors.New("report end date before start date")
)

type (
	AddIngredientRequest struct {
		Name         string  `json:"name" validate:"required,min=2"`
		Unit         string  `json:"unit" validate:"required"`
		UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
		CurrentStock float64 `json:"current_stock" validate:"gte=0"`
		MinimumStock float64 `json:"minimum_stock" validate:"gte=0"`
	}

	UpdateIngredientRequest struct {
		Name         string   `json:"name,omitempty" validate:"omitempty,min=2"`
		Unit         string   `json:"unit,omitempty"`
		UnitCost     *float64 `json:"unit_cost,omitempty" validate:"omitempty,gte=0"`
		MinimumStock *float64 `json:"minimum_stock,omitempty" validate:"omitempty,gte=0"`
	}

	RestockRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Reason   string  `json:"reason,omitempty"`
	}

	AdjustStockRequest struct {
		Quantity float64 `json:"quantity" validate:"required"`
		Reason   string  `json:"reason" validate:"required"`
	}

	// LowStockAlert is collected inside the ledger transaction and
	// dispatched after commit so a notification failure can never roll
	// back a stock movement.
	LowStockAlert struct {
		IngredientID uuid.UUID
		Name         string
		Unit         string
		CurrentStock float64
		MinimumStock float64
	}

	IngredientUsageRow struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Unit         string  `json:"unit"`
		TotalUsed    float64 `json:"total_used"`
		TotalCost    float64 `json:"total_cost"`
		OrderCount   int64   `json:"order_count"`
	}
)
