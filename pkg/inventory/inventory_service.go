package inventory

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"Resto-POS-Backend/internal/utils/mailing"
	"Resto-POS-Backend/pkg/notification"
	"Resto-POS-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, includeInactive bool, page, limit int) ([]*entities.Ingredient, int64, error)
		GetIngredientDetails(ctx context.Context, id string) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error
		DeactivateIngredient(ctx context.Context, id string) error
		RestockIngredient(ctx context.Context, id string, req domain.RestockRequest, userID string) error
		AdjustStock(ctx context.Context, id string, req domain.AdjustStockRequest, userID string) error

		DeductIngredientsForOrder(ctx context.Context, orderID string, userID string) (int, error)
		RestoreIngredientsForOrder(ctx context.Context, orderID string, userID string) (int, error)
		CheckLowStock(ctx context.Context, ingredientID string) (bool, error)

		GetStockHistory(ctx context.Context, ingredientID string, page, limit int) ([]*entities.StockHistory, int64, error)
		GetUsageReport(ctx context.Context, startDate, endDate time.Time) ([]*domain.IngredientUsageRow, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		notificationService notification.NotificationService
		userRepository      user.UserRepository
	}
)

func NewInventoryService(
	inventoryRepository InventoryRepository,
	notificationService notification.NotificationService,
	userRepository user.UserRepository,
) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		notificationService: notificationService,
		userRepository:      userRepository,
	}
}

func (s *inventoryService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (*entities.Ingredient, error) {
	ingredient := &entities.Ingredient{
		Name:         req.Name,
		Unit:         req.Unit,
		UnitCost:     req.UnitCost,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		IsActive:     true,
	}

	if err := s.inventoryRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *inventoryService) GetIngredients(ctx context.Context, includeInactive bool, page, limit int) ([]*entities.Ingredient, int64, error) {
	return s.inventoryRepository.GetIngredients(ctx, includeInactive, page, limit)
}

func (s *inventoryService) GetIngredientDetails(ctx context.Context, id string) (*entities.Ingredient, error) {
	ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *inventoryService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) error {
	ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// Current stock is deliberately not updatable here; it only moves
	// through ledger operations so history stays the system of record.
	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.Unit != "" {
		ingredient.Unit = req.Unit
	}
	if req.UnitCost != nil {
		ingredient.UnitCost = *req.UnitCost
	}
	if req.MinimumStock != nil {
		ingredient.MinimumStock = *req.MinimumStock
	}

	return s.inventoryRepository.UpdateIngredient(ctx, ingredient)
}

func (s *inventoryService) DeactivateIngredient(ctx context.Context, id string) error {
	if _, err := s.inventoryRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return s.inventoryRepository.DeactivateIngredient(ctx, id)
}

func (s *inventoryService) RestockIngredient(ctx context.Context, id string, req domain.RestockRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrQuantityNotPositive
	}

	ingredientID, actingUser, err := parseLedgerIDs(id, userID)
	if err != nil {
		return err
	}

	reason := req.Reason
	if reason == "" {
		reason = "Manual restock"
	}

	return s.inventoryRepository.RecordMovement(ctx, ingredientID, domain.StockOpManualRestock, req.Quantity, reason, actingUser)
}

func (s *inventoryService) AdjustStock(ctx context.Context, id string, req domain.AdjustStockRequest, userID string) error {
	ingredientID, actingUser, err := parseLedgerIDs(id, userID)
	if err != nil {
		return err
	}

	return s.inventoryRepository.RecordMovement(ctx, ingredientID, domain.StockOpAdjustment, req.Quantity, req.Reason, actingUser)
}

// DeductIngredientsForOrder runs the transactional deduction and then
// dispatches any low-stock alerts the transaction collected. Alert
// dispatch is best effort; its failures are logged and never surface to
// the caller, so a notification problem cannot fail an order transition.
func (s *inventoryService) DeductIngredientsForOrder(ctx context.Context, orderID string, userID string) (int, error) {
	orderUUID, actingUser, err := parseLedgerIDs(orderID, userID)
	if err != nil {
		return 0, err
	}

	deducted, alerts, err := s.inventoryRepository.DeductForOrder(ctx, orderUUID, actingUser)
	if err != nil {
		return 0, err
	}

	if len(alerts) > 0 {
		s.dispatchLowStockAlerts(ctx, alerts)
	}

	return deducted, nil
}

func (s *inventoryService) RestoreIngredientsForOrder(ctx context.Context, orderID string, userID string) (int, error) {
	orderUUID, actingUser, err := parseLedgerIDs(orderID, userID)
	if err != nil {
		return 0, err
	}
	return s.inventoryRepository.RestoreForOrder(ctx, orderUUID, actingUser)
}

func (s *inventoryService) CheckLowStock(ctx context.Context, ingredientID string) (bool, error) {
	ingredient, err := s.inventoryRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrIngredientNotFound
		}
		return false, err
	}
	return ingredient.CurrentStock < ingredient.MinimumStock, nil
}

func (s *inventoryService) GetStockHistory(ctx context.Context, ingredientID string, page, limit int) ([]*entities.StockHistory, int64, error) {
	return s.inventoryRepository.GetStockHistory(ctx, ingredientID, page, limit)
}

func (s *inventoryService) GetUsageReport(ctx context.Context, startDate, endDate time.Time) ([]*domain.IngredientUsageRow, error) {
	if endDate.Before(startDate) {
		return nil, domain.ErrReportRangeInvalid
	}
	return s.inventoryRepository.GetUsageReport(ctx, startDate, endDate)
}

// dispatchLowStockAlerts targets the currently active admin and manager
// users directly, because the message needs the exact recipient list
// alongside the ingredient's current and minimum stock values. A copy is
// mailed to each recipient as well. Every failure here is swallowed.
func (s *inventoryService) dispatchLowStockAlerts(ctx context.Context, alerts []domain.LowStockAlert) {
	recipients, err := s.userRepository.GetActiveUsersByRoles(ctx, []string{domain.RoleAdmin, domain.RoleManager})
	if err != nil {
		log.Warnf("low-stock alert recipients lookup failed: %v", err)
		return
	}
	if len(recipients) == 0 {
		return
	}

	userIDs := make([]uuid.UUID, 0, len(recipients))
	for _, recipient := range recipients {
		userIDs = append(userIDs, recipient.ID)
	}

	for _, alert := range alerts {
		message := fmt.Sprintf(
			"%s is running low: %.2f %s left (minimum %.2f %s)",
			alert.Name, alert.CurrentStock, alert.Unit, alert.MinimumStock, alert.Unit,
		)

		if err := s.notificationService.CreateNotification(
			ctx, userIDs, domain.NotificationCategoryInventory, "Low Stock Alert", message,
		); err != nil {
			log.Warnf("low-stock notification for %s failed: %v", alert.Name, err)
		}

		for _, recipient := range recipients {
			if err := mailing.SendMail(recipient.Email, "Low Stock Alert", message); err != nil {
				log.Warnf("low-stock mail to %s failed: %v", recipient.Email, err)
			}
		}
	}
}

func parseLedgerIDs(id string, userID string) (uuid.UUID, *uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, nil, domain.ErrParseUUID
	}

	var actingUser *uuid.UUID
	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return uuid.Nil, nil, domain.ErrParseUUID
		}
		actingUser = &userUUID
	}

	return parsed, actingUser, nil
}
