package payment

import (
	"Resto-POS-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreatePayment(ctx context.Context, payment *entities.Payment) error
		GetPaymentByID(ctx context.Context, id string) (*entities.Payment, error)
		GetPaidPaymentByOrder(ctx context.Context, orderID string) (*entities.Payment, error)
		GetPaymentByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
		UpdatePayment(ctx context.Context, payment *entities.Payment) error
		GetPayments(ctx context.Context, status string, page, limit int) ([]*entities.Payment, int64, error)
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetPaymentByID(ctx context.Context, id string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).
		Preload("Order").
		Where("id = ?", id).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetPaidPaymentByOrder(ctx context.Context, orderID string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, "paid").
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	var payment entities.Payment
	if err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, payment *entities.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) GetPayments(ctx context.Context, status string, page, limit int) ([]*entities.Payment, int64, error) {
	var payments []*entities.Payment
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Payment{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Order").Order("created_at DESC").Offset(offset).Limit(limit).Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, count, nil
}
