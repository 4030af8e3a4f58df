package order

import (
	"Resto-POS-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) error
		GetKitchenOrders(ctx context.Context) ([]*entities.Order, error)
		CountOrdersToday(ctx context.Context) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Table").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Items").
		Preload("Table").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// GetKitchenOrders returns the open queue, oldest first.
func (r *orderRepository) GetKitchenOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Preload("Table").
		Where("status IN ?", []string{"pending", "preparing"}).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountOrdersToday(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("created_at >= CURRENT_DATE").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
