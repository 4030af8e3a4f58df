package payment

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"Resto-POS-Backend/pkg/notification"
	"Resto-POS-Backend/pkg/order"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		RecordCashPayment(ctx context.Context, req domain.RecordPaymentRequest, userID string) (*entities.Payment, error)
		CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest) (*domain.CheckoutResponse, error)
		HandleWebhook(ctx context.Context, payload map[string]interface{}) error
		GetPayments(ctx context.Context, status string, page, limit int) ([]*entities.Payment, int64, error)
	}

	paymentService struct {
		paymentRepository   PaymentRepository
		orderRepository     order.OrderRepository
		notificationService notification.NotificationService
		snapClient          snap.Client
	}
)

func NewPaymentService(
	paymentRepository PaymentRepository,
	orderRepository order.OrderRepository,
	notificationService notification.NotificationService,
) PaymentService {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	client := snap.Client{}
	client.New(os.Getenv("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository:   paymentRepository,
		orderRepository:     orderRepository,
		notificationService: notificationService,
		snapClient:          client,
	}
}

func (s *paymentService) RecordCashPayment(ctx context.Context, req domain.RecordPaymentRequest, userID string) (*entities.Payment, error) {
	ord, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.paymentRepository.GetPaidPaymentByOrder(ctx, req.OrderID); err == nil {
		return nil, domain.ErrOrderAlreadyPaid
	}

	if req.Amount < ord.TotalAmount {
		return nil, domain.ErrPaymentAmountShort
	}

	now := time.Now()
	payment := &entities.Payment{
		OrderID: ord.ID,
		Method:  domain.PaymentMethodCash,
		Amount:  req.Amount,
		Status:  domain.PaymentStatusPaid,
		PaidAt:  &now,
	}

	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	s.notifyPaid(ctx, ord)
	return payment, nil
}

func (s *paymentService) CreateCheckout(ctx context.Context, req domain.CreateCheckoutRequest) (*domain.CheckoutResponse, error) {
	ord, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.paymentRepository.GetPaidPaymentByOrder(ctx, req.OrderID); err == nil {
		return nil, domain.ErrOrderAlreadyPaid
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ord.OrderNumber,
			GrossAmt: int64(ord.TotalAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		log.Errorf("midtrans checkout for order %s failed: %v", ord.OrderNumber, snapErr)
		return nil, domain.ErrCheckoutFailed
	}

	payment := &entities.Payment{
		OrderID:       ord.ID,
		Method:        domain.PaymentMethodMidtrans,
		Amount:        ord.TotalAmount,
		Status:        domain.PaymentStatusPending,
		TransactionID: ord.OrderNumber,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return &domain.CheckoutResponse{
		PaymentID:  payment.ID.String(),
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

// HandleWebhook applies a Midtrans status notification to the matching
// pending payment row.
func (s *paymentService) HandleWebhook(ctx context.Context, payload map[string]interface{}) error {
	transactionID, ok := payload["order_id"].(string)
	if !ok {
		return fmt.Errorf("webhook payload missing order_id")
	}
	transactionStatus, ok := payload["transaction_status"].(string)
	if !ok {
		return fmt.Errorf("webhook payload missing transaction_status")
	}

	payment, err := s.paymentRepository.GetPaymentByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentNotFound
		}
		return err
	}

	switch transactionStatus {
	case "settlement", "capture":
		now := time.Now()
		payment.Status = domain.PaymentStatusPaid
		payment.PaidAt = &now
	case "deny", "cancel", "expire":
		payment.Status = domain.PaymentStatusFailed
	default:
		return nil
	}

	if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
		return err
	}

	if payment.Status == domain.PaymentStatusPaid {
		if ord, err := s.orderRepository.GetOrderByID(ctx, payment.OrderID.String()); err == nil {
			s.notifyPaid(ctx, ord)
		}
	}

	return nil
}

func (s *paymentService) GetPayments(ctx context.Context, status string, page, limit int) ([]*entities.Payment, int64, error) {
	return s.paymentRepository.GetPayments(ctx, status, page, limit)
}

func (s *paymentService) notifyPaid(ctx context.Context, ord *entities.Order) {
	message := fmt.Sprintf("Order %s has been paid (%.2f)", ord.OrderNumber, ord.TotalAmount)
	if err := s.notificationService.CreateNotificationForRole(
		ctx, domain.RoleManager, domain.NotificationCategoryPayment, "Payment Received", message,
	); err != nil {
		log.Warnf("payment notification for %s failed: %v", ord.OrderNumber, err)
	}
}
