package inventory

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, includeInactive bool, page, limit int) ([]*entities.Ingredient, int64, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeactivateIngredient(ctx context.Context, id string) error

		DeductForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, []domain.LowStockAlert, error)
		RestoreForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, error)
		RecordMovement(ctx context.Context, ingredientID uuid.UUID, operation string, quantity float64, reason string, userID *uuid.UUID) error
		GetStockHistory(ctx context.Context, ingredientID string, page, limit int) ([]*entities.StockHistory, int64, error)
		GetUsageReport(ctx context.Context, startDate, endDate time.Time) ([]*domain.IngredientUsageRow, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *inventoryRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *inventoryRepository) GetIngredients(ctx context.Context, includeInactive bool, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Ingredient{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}

func (r *inventoryRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

// DeactivateIngredient soft-deletes; ingredients referenced by history
// are never physically removed.
func (r *inventoryRepository) DeactivateIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// planOrderDeduction aggregates the active recipe lines of an order's
// items into one required quantity per ingredient. Ingredients keep the
// order in which they are first encountered so a single call processes
// rows deterministically.
func planOrderDeduction(items []*entities.OrderItem, linesByMenuItem map[uuid.UUID][]*entities.RecipeIngredient) ([]uuid.UUID, map[uuid.UUID]float64) {
	ingredientIDs := make([]uuid.UUID, 0)
	required := make(map[uuid.UUID]float64)

	for _, item := range items {
		for _, line := range linesByMenuItem[item.MenuItemID] {
			if _, seen := required[line.IngredientID]; !seen {
				ingredientIDs = append(ingredientIDs, line.IngredientID)
			}
			required[line.IngredientID] += line.Quantity * float64(item.Quantity)
		}
	}

	return ingredientIDs, required
}

// ledgerStore is the slice of storage the order ledger sequencing
// touches. The gorm transaction backs it in production via gormLedger.
type ledgerStore interface {
	CountOrderHistory(orderID uuid.UUID, operation string) (int64, error)
	OrderItems(orderID uuid.UUID) ([]*entities.OrderItem, error)
	ActiveRecipeLines(menuItemIDs []uuid.UUID) ([]*entities.RecipeIngredient, error)
	OrderConsumption(orderID uuid.UUID) ([]*entities.StockHistory, error)
	Ingredient(id uuid.UUID) (*entities.Ingredient, error)
	SetStock(id uuid.UUID, stock float64) error
	AppendHistory(history *entities.StockHistory) error
}

type gormLedger struct {
	tx *gorm.DB
}

func (g *gormLedger) CountOrderHistory(orderID uuid.UUID, operation string) (int64, error) {
	var count int64
	err := g.tx.Model(&entities.StockHistory{}).
		Where("order_id = ? AND operation = ?", orderID, operation).
		Count(&count).Error
	return count, err
}

func (g *gormLedger) OrderItems(orderID uuid.UUID) ([]*entities.OrderItem, error) {
	var items []*entities.OrderItem
	err := g.tx.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (g *gormLedger) ActiveRecipeLines(menuItemIDs []uuid.UUID) ([]*entities.RecipeIngredient, error) {
	var lines []*entities.RecipeIngredient
	err := g.tx.Where("menu_item_id IN ? AND is_active = ?", menuItemIDs, true).
		Find(&lines).Error
	return lines, err
}

func (g *gormLedger) OrderConsumption(orderID uuid.UUID) ([]*entities.StockHistory, error) {
	var entries []*entities.StockHistory
	err := g.tx.Where("order_id = ? AND operation = ?", orderID, domain.StockOpOrderConsumption).
		Find(&entries).Error
	return entries, err
}

func (g *gormLedger) Ingredient(id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := g.tx.Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (g *gormLedger) SetStock(id uuid.UUID, stock float64) error {
	return g.tx.Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Update("current_stock", stock).Error
}

func (g *gormLedger) AppendHistory(history *entities.StockHistory) error {
	return g.tx.Create(history).Error
}

// deductOrderStock consumes ingredient stock for every recipe-bound item
// of the order: duplicate guard, per-ingredient aggregation, then one
// stock update plus one consumption history row per ingredient touched.
// Low-stock conditions are collected and returned so the caller can
// dispatch alerts after the surrounding transaction has committed.
// Negative stock is permitted; it signals an oversold condition, not an
// error.
func deductOrderStock(store ledgerStore, orderID uuid.UUID, userID *uuid.UUID) (int, []domain.LowStockAlert, error) {
	prior, err := store.CountOrderHistory(orderID, domain.StockOpOrderConsumption)
	if err != nil {
		return 0, nil, err
	}
	if prior > 0 {
		return 0, nil, domain.ErrStockAlreadyDeducted
	}

	items, err := store.OrderItems(orderID)
	if err != nil {
		return 0, nil, err
	}
	if len(items) == 0 {
		return 0, nil, nil
	}

	menuItemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		menuItemIDs = append(menuItemIDs, item.MenuItemID)
	}

	lines, err := store.ActiveRecipeLines(menuItemIDs)
	if err != nil {
		return 0, nil, err
	}

	linesByMenuItem := make(map[uuid.UUID][]*entities.RecipeIngredient, len(lines))
	for _, line := range lines {
		linesByMenuItem[line.MenuItemID] = append(linesByMenuItem[line.MenuItemID], line)
	}

	ingredientIDs, required := planOrderDeduction(items, linesByMenuItem)

	deducted := 0
	alerts := make([]domain.LowStockAlert, 0)

	for _, ingredientID := range ingredientIDs {
		ingredient, err := store.Ingredient(ingredientID)
		if err != nil {
			return 0, nil, err
		}

		amount := required[ingredientID]
		stockBefore := ingredient.CurrentStock
		stockAfter := stockBefore - amount

		if err := store.SetStock(ingredientID, stockAfter); err != nil {
			return 0, nil, err
		}

		history := &entities.StockHistory{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			OrderID:      &orderID,
			Operation:    domain.StockOpOrderConsumption,
			Quantity:     amount,
			StockBefore:  stockBefore,
			StockAfter:   stockAfter,
			Reason:       domain.ReasonOrderServed,
			UserID:       userID,
		}
		if err := store.AppendHistory(history); err != nil {
			return 0, nil, err
		}

		deducted++

		if stockAfter < ingredient.MinimumStock {
			alerts = append(alerts, domain.LowStockAlert{
				IngredientID: ingredientID,
				Name:         ingredient.Name,
				Unit:         ingredient.Unit,
				CurrentStock: stockAfter,
				MinimumStock: ingredient.MinimumStock,
			})
		}
	}

	return deducted, alerts, nil
}

// restoreOrderStock compensates a prior deduction when an order is
// cancelled. It adds back the exact quantity each consumption history
// row recorded, not a recomputed one, so recipe changes between serve
// and cancel cannot skew the restoration. No low-stock evaluation
// happens here.
func restoreOrderStock(store ledgerStore, orderID uuid.UUID, userID *uuid.UUID) (int, error) {
	prior, err := store.CountOrderHistory(orderID, domain.StockOpOrderCancellation)
	if err != nil {
		return 0, err
	}
	if prior > 0 {
		return 0, domain.ErrStockAlreadyRestored
	}

	consumptions, err := store.OrderConsumption(orderID)
	if err != nil {
		return 0, err
	}
	if len(consumptions) == 0 {
		return 0, nil
	}

	restored := 0
	for _, consumption := range consumptions {
		ingredient, err := store.Ingredient(consumption.IngredientID)
		if err != nil {
			return 0, err
		}

		stockBefore := ingredient.CurrentStock
		stockAfter := stockBefore + consumption.Quantity

		if err := store.SetStock(consumption.IngredientID, stockAfter); err != nil {
			return 0, err
		}

		history := &entities.StockHistory{
			ID:           uuid.New(),
			IngredientID: consumption.IngredientID,
			OrderID:      &orderID,
			Operation:    domain.StockOpOrderCancellation,
			Quantity:     consumption.Quantity,
			StockBefore:  stockBefore,
			StockAfter:   stockAfter,
			Reason:       domain.ReasonOrderCancelled,
			UserID:       userID,
		}
		if err := store.AppendHistory(history); err != nil {
			return 0, err
		}

		restored++
	}

	return restored, nil
}

// DeductForOrder runs the consumption sequencing inside one transaction.
func (r *inventoryRepository) DeductForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, []domain.LowStockAlert, error) {
	var deducted int
	var alerts []domain.LowStockAlert

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		deducted, alerts, txErr = deductOrderStock(&gormLedger{tx: tx}, orderID, userID)
		return txErr
	})
	if err != nil {
		return 0, nil, err
	}

	return deducted, alerts, nil
}

// RestoreForOrder runs the restoration sequencing inside one transaction.
func (r *inventoryRepository) RestoreForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, error) {
	var restored int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		restored, txErr = restoreOrderStock(&gormLedger{tx: tx}, orderID, userID)
		return txErr
	})
	if err != nil {
		return 0, err
	}

	return restored, nil
}

// RecordMovement applies an operator-initiated movement (manual restock
// or adjustment) through the same stock-plus-history transaction the
// order paths use, so current stock never drifts from its history.
func (r *inventoryRepository) RecordMovement(ctx context.Context, ingredientID uuid.UUID, operation string, quantity float64, reason string, userID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient entities.Ingredient
		if err := tx.Where("id = ?", ingredientID).First(&ingredient).Error; err != nil {
			return err
		}

		stockBefore := ingredient.CurrentStock
		stockAfter := stockBefore + quantity

		if err := tx.Model(&entities.Ingredient{}).
			Where("id = ?", ingredientID).
			Update("current_stock", stockAfter).Error; err != nil {
			return err
		}

		magnitude := quantity
		if magnitude < 0 {
			magnitude = -magnitude
		}

		history := &entities.StockHistory{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			Operation:    operation,
			Quantity:     magnitude,
			StockBefore:  stockBefore,
			StockAfter:   stockAfter,
			Reason:       reason,
			UserID:       userID,
		}
		return tx.Create(history).Error
	})
}

func (r *inventoryRepository) GetStockHistory(ctx context.Context, ingredientID string, page, limit int) ([]*entities.StockHistory, int64, error) {
	var entries []*entities.StockHistory
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.StockHistory{})
	if ingredientID != "" {
		query = query.Where("ingredient_id = ?", ingredientID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

// GetUsageReport aggregates order consumption per active ingredient over
// the date range, both bounds inclusive. Ingredients without consumption
// in the window still appear with zero totals. Cost is priced at the
// current unit cost, not the cost in effect at consumption time.
func (r *inventoryRepository) GetUsageReport(ctx context.Context, startDate, endDate time.Time) ([]*domain.IngredientUsageRow, error) {
	var rows []*domain.IngredientUsageRow

	query := `
		SELECT i.id AS ingredient_id,
		       i.name,
		       i.unit,
		       COALESCE(SUM(h.quantity), 0) AS total_used,
		       COALESCE(SUM(h.quantity), 0) * i.unit_cost AS total_cost,
		       COUNT(DISTINCT h.order_id) AS order_count
		FROM ingredients i
		LEFT JOIN stock_histories h
		       ON h.ingredient_id = i.id
		      AND h.operation = ?
		      AND h.created_at BETWEEN ? AND ?
		WHERE i.is_active = true
		GROUP BY i.id, i.name, i.unit, i.unit_cost
		ORDER BY total_used DESC
	`

	if err := r.db.WithContext(ctx).
		Raw(query, domain.StockOpOrderConsumption, startDate, endDate).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
