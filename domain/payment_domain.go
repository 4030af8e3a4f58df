package domain

import "errors"

const (
	PaymentMethodCash     = "cash"
	PaymentMethodMidtrans = "midtrans"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

var (
	MessageSuccessRecordPayment   = "payment recorded successfully"
	MessageSuccessGetPayments     = "payments retrieved successfully"
	MessageSuccessCreateCheckout  = "checkout created successfully"
	MessageSuccessPaymentWebhook  = "payment notification processed"
	MessageFailedRecordPayment    = "failed to record payment"
	MessageFailedGetPayments      = "failed to retrieve payments"
	MessageFailedCreateCheckout   = "failed to create checkout"
	MessageFailedPaymentWebhook   = "failed to process payment notification"

	ErrPaymentNotFound     = errors.New("payment not found")
	ErrOrderAlreadyPaid    = errors.New("order already paid")
	ErrPaymentAmountShort  = errors.New("payment amount is less than order total")
	ErrCheckoutFailed      = errors.New("payment checkout failed")
)

type (
	RecordPaymentRequest struct {
		OrderID string  `json:"order_id" validate:"required,uuid"`
		Amount  float64 `json:"amount" validate:"required,gt=0"`
	}

	CreateCheckoutRequest struct {
		OrderID string `json:"order_id" validate:"required,uuid"`
		Email   string `json:"email" validate:"required,email"`
	}

	CheckoutResponse struct {
		PaymentID  string `json:"payment_id"`
		InvoiceURL string `json:"invoice_url"`
	}
)
