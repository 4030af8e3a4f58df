package order

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"Resto-POS-Backend/pkg/inventory"
	"Resto-POS-Backend/pkg/menu"
	"Resto-POS-Backend/pkg/notification"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (*entities.Order, error)
		GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error)
		GetOrderDetails(ctx context.Context, id string) (*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) error
		GetKitchenQueue(ctx context.Context) ([]*entities.Order, error)
	}

	orderService struct {
		orderRepository     OrderRepository
		menuRepository      menu.MenuRepository
		inventoryService    inventory.InventoryService
		notificationService notification.NotificationService
	}
)

// allowedTransitions maps each order status to the statuses it may move
// to. Served and cancelled are terminal except for serve-then-cancel,
// which compensates the stock deduction.
var allowedTransitions = map[string][]string{
	domain.OrderStatusPending:   {domain.OrderStatusPreparing, domain.OrderStatusCancelled},
	domain.OrderStatusPreparing: {domain.OrderStatusReady, domain.OrderStatusCancelled},
	domain.OrderStatusReady:     {domain.OrderStatusServed, domain.OrderStatusCancelled},
	domain.OrderStatusServed:    {domain.OrderStatusCancelled},
	domain.OrderStatusCancelled: {},
}

func NewOrderService(
	orderRepository OrderRepository,
	menuRepository menu.MenuRepository,
	inventoryService inventory.InventoryService,
	notificationService notification.NotificationService,
) OrderService {
	return &orderService{
		orderRepository:     orderRepository,
		menuRepository:      menuRepository,
		inventoryService:    inventoryService,
		notificationService: notificationService,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (*entities.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrOrderHasNoItems
	}

	order := &entities.Order{
		Type:         req.Type,
		Status:       domain.OrderStatusPending,
		CustomerName: req.CustomerName,
		Notes:        req.Notes,
	}

	if req.TableID != "" {
		tableUUID, err := uuid.Parse(req.TableID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		order.TableID = &tableUUID
	}
	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		order.UserID = &userUUID
	}

	subtotal := 0.0
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		menuItem, err := s.menuRepository.GetMenuItemByID(ctx, itemReq.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMenuItemNotFound
			}
			return nil, err
		}
		if !menuItem.IsAvailable {
			return nil, domain.ErrMenuItemUnavailable
		}

		items = append(items, entities.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   itemReq.Quantity,
			UnitPrice:  menuItem.Price,
			Notes:      itemReq.Notes,
		})
		subtotal += menuItem.Price * float64(itemReq.Quantity)
	}

	order.Subtotal = subtotal
	order.TaxAmount = subtotal * domain.OrderTaxRate
	order.TotalAmount = order.Subtotal + order.TaxAmount
	order.Items = items

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	order.OrderNumber = number

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.notificationService.NotifyNewOrder(ctx, order.OrderNumber); err != nil {
		log.Warnf("new-order notification for %s failed: %v", order.OrderNumber, err)
	}

	return order, nil
}

func (s *orderService) GetOrders(ctx context.Context, status string, page, limit int) ([]*entities.Order, int64, error) {
	return s.orderRepository.GetOrders(ctx, status, page, limit)
}

func (s *orderService) GetOrderDetails(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus performs the transition and its stock side effects:
// moving to served deducts ingredients, moving to cancelled restores
// them. A failed deduction or restoration fails the transition; the
// status is only written after the ledger call succeeds.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest, userID string) error {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	if !transitionAllowed(order.Status, req.Status) {
		return domain.ErrOrderTransitionInvalid
	}

	switch req.Status {
	case domain.OrderStatusServed:
		if _, err := s.inventoryService.DeductIngredientsForOrder(ctx, id, userID); err != nil {
			return err
		}
	case domain.OrderStatusCancelled:
		if _, err := s.inventoryService.RestoreIngredientsForOrder(ctx, id, userID); err != nil {
			return err
		}
	}

	return s.orderRepository.UpdateOrderStatus(ctx, id, req.Status)
}

func (s *orderService) GetKitchenQueue(ctx context.Context) ([]*entities.Order, error) {
	return s.orderRepository.GetKitchenOrders(ctx)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *orderService) nextOrderNumber(ctx context.Context) (string, error) {
	count, err := s.orderRepository.CountOrdersToday(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%04d", time.Now().Format("20060102"), count+1), nil
}
