package domain

import "errors"

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusCancelled = "cancelled"

	OrderTypeDineIn   = "dine_in"
	OrderTypeTakeaway = "takeaway"

	OrderTaxRate = 0.10
)

var (
	MessageSuccessCreateOrder  = "order created successfully"
	MessageSuccessGetOrders    = "orders retrieved successfully"
	MessageSuccessUpdateOrder  = "order status updated successfully"
	MessageSuccessKitchenQueue = "kitchen queue retrieved successfully"
	MessageFailedCreateOrder   = "failed to create order"
	MessageFailedGetOrders     = "failed to retrieve orders"
	MessageFailedUpdateOrder   = "failed to update order status"
	MessageFailedKitchenQueue  = "failed to retrieve kitchen queue"

	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderStatusInvalid     = errors.New("invalid order status")
	ErrOrderTransitionInvalid = errors.New("invalid order status transition")
	ErrOrderHasNoItems        = errors.New("order must contain at least one item")
	ErrMenuItemUnavailable    = errors.New("menu item is not available")
)

type (
	OrderItemRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		Quantity   int    `json:"quantity" validate:"required,gt=0"`
		Notes      string `json:"notes,omitempty"`
	}

	CreateOrderRequest struct {
		TableID      string             `json:"table_id,omitempty" validate:"omitempty,uuid"`
		CustomerName string             `json:"customer_name,omitempty"`
		Type         string             `json:"type" validate:"required,oneof=dine_in takeaway"`
		Notes        string             `json:"notes,omitempty"`
		Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending preparing ready served cancelled"`
	}
)
