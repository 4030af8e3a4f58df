package inventory

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryLedger struct {
	ingredients map[uuid.UUID]*entities.Ingredient
	items       []*entities.OrderItem
	lines       []*entities.RecipeIngredient
	history     []*entities.StockHistory
}

func (m *memoryLedger) CountOrderHistory(orderID uuid.UUID, operation string) (int64, error) {
	var count int64
	for _, entry := range m.history {
		if entry.OrderID != nil && *entry.OrderID == orderID && entry.Operation == operation {
			count++
		}
	}
	return count, nil
}

func (m *memoryLedger) OrderItems(orderID uuid.UUID) ([]*entities.OrderItem, error) {
	var items []*entities.OrderItem
	for _, item := range m.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *memoryLedger) ActiveRecipeLines(menuItemIDs []uuid.UUID) ([]*entities.RecipeIngredient, error) {
	wanted := make(map[uuid.UUID]bool, len(menuItemIDs))
	for _, id := range menuItemIDs {
		wanted[id] = true
	}

	var lines []*entities.RecipeIngredient
	for _, line := range m.lines {
		if line.IsActive && wanted[line.MenuItemID] {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (m *memoryLedger) OrderConsumption(orderID uuid.UUID) ([]*entities.StockHistory, error) {
	var entries []*entities.StockHistory
	for _, entry := range m.history {
		if entry.OrderID != nil && *entry.OrderID == orderID && entry.Operation == domain.StockOpOrderConsumption {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (m *memoryLedger) Ingredient(id uuid.UUID) (*entities.Ingredient, error) {
	ingredient, ok := m.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *ingredient
	return &snapshot, nil
}

func (m *memoryLedger) SetStock(id uuid.UUID, stock float64) error {
	ingredient, ok := m.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ingredient.CurrentStock = stock
	return nil
}

func (m *memoryLedger) AppendHistory(history *entities.StockHistory) error {
	m.history = append(m.history, history)
	return nil
}

func (m *memoryLedger) orderHistory(orderID uuid.UUID, operation string) []*entities.StockHistory {
	var entries []*entities.StockHistory
	for _, entry := range m.history {
		if entry.OrderID != nil && *entry.OrderID == orderID && entry.Operation == operation {
			entries = append(entries, entry)
		}
	}
	return entries
}

// beefOrder seeds a ledger with one beef ingredient (stock 10, minimum
// 5), a burger recipe of 2 kg each, and an order for 3 burgers.
func beefOrder() (*memoryLedger, uuid.UUID, uuid.UUID) {
	beef := uuid.New()
	burger := uuid.New()
	orderID := uuid.New()

	store := &memoryLedger{
		ingredients: map[uuid.UUID]*entities.Ingredient{
			beef: {ID: beef, Name: "Beef", Unit: "kg", CurrentStock: 10, MinimumStock: 5, IsActive: true},
		},
		items: []*entities.OrderItem{
			{OrderID: orderID, MenuItemID: burger, Quantity: 3},
		},
		lines: []*entities.RecipeIngredient{
			{MenuItemID: burger, IngredientID: beef, Quantity: 2, IsActive: true},
		},
	}
	return store, orderID, beef
}

func TestDeductOrderStockWritesOneRowPerIngredient(t *testing.T) {
	store, orderID, beef := beefOrder()

	deducted, alerts, err := deductOrderStock(store, orderID, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
	assert.InDelta(t, 4.0, store.ingredients[beef].CurrentStock, 1e-9)

	rows := store.orderHistory(orderID, domain.StockOpOrderConsumption)
	require.Len(t, rows, 1)
	assert.Equal(t, beef, rows[0].IngredientID)
	assert.InDelta(t, 6.0, rows[0].Quantity, 1e-9)
	assert.InDelta(t, 10.0, rows[0].StockBefore, 1e-9)
	assert.InDelta(t, 4.0, rows[0].StockAfter, 1e-9)
	assert.Equal(t, domain.ReasonOrderServed, rows[0].Reason)

	require.Len(t, alerts, 1)
	assert.Equal(t, "Beef", alerts[0].Name)
	assert.InDelta(t, 4.0, alerts[0].CurrentStock, 1e-9)
	assert.InDelta(t, 5.0, alerts[0].MinimumStock, 1e-9)
}

func TestDeductOrderStockSharedIngredientAcrossItems(t *testing.T) {
	cheese := uuid.New()
	burger := uuid.New()
	melt := uuid.New()
	orderID := uuid.New()

	store := &memoryLedger{
		ingredients: map[uuid.UUID]*entities.Ingredient{
			cheese: {ID: cheese, Name: "Cheese", Unit: "kg", CurrentStock: 20, MinimumStock: 2, IsActive: true},
		},
		items: []*entities.OrderItem{
			{OrderID: orderID, MenuItemID: burger, Quantity: 2},
			{OrderID: orderID, MenuItemID: melt, Quantity: 1},
		},
		lines: []*entities.RecipeIngredient{
			{MenuItemID: burger, IngredientID: cheese, Quantity: 1, IsActive: true},
			{MenuItemID: melt, IngredientID: cheese, Quantity: 3, IsActive: true},
		},
	}

	deducted, alerts, err := deductOrderStock(store, orderID, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
	assert.Empty(t, alerts)

	// Two order lines, one ingredient: a single aggregated row.
	rows := store.orderHistory(orderID, domain.StockOpOrderConsumption)
	require.Len(t, rows, 1)
	assert.InDelta(t, 5.0, rows[0].Quantity, 1e-9)
	assert.InDelta(t, 15.0, store.ingredients[cheese].CurrentStock, 1e-9)
}

func TestDeductThenRestoreRoundTrip(t *testing.T) {
	store, orderID, beef := beefOrder()

	_, _, err := deductOrderStock(store, orderID, nil)
	require.NoError(t, err)

	restored, err := restoreOrderStock(store, orderID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)

	// Stock is back where it started and both sides of the movement
	// are on the ledger.
	assert.InDelta(t, 10.0, store.ingredients[beef].CurrentStock, 1e-9)

	cancellations := store.orderHistory(orderID, domain.StockOpOrderCancellation)
	require.Len(t, cancellations, 1)
	assert.InDelta(t, 6.0, cancellations[0].Quantity, 1e-9)
	assert.InDelta(t, 4.0, cancellations[0].StockBefore, 1e-9)
	assert.InDelta(t, 10.0, cancellations[0].StockAfter, 1e-9)
	assert.Equal(t, domain.ReasonOrderCancelled, cancellations[0].Reason)
}

func TestRestoreUsesRecordedAmountAfterRecipeChange(t *testing.T) {
	store, orderID, beef := beefOrder()

	_, _, err := deductOrderStock(store, orderID, nil)
	require.NoError(t, err)

	// The recipe now calls for far more beef per burger; the
	// restoration must still add back the 6 kg the ledger recorded.
	store.lines[0].Quantity = 5

	restored, err := restoreOrderStock(store, orderID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	assert.InDelta(t, 10.0, store.ingredients[beef].CurrentStock, 1e-9)
}

func TestDeductOrderStockDuplicateGuard(t *testing.T) {
	store, orderID, beef := beefOrder()

	_, _, err := deductOrderStock(store, orderID, nil)
	require.NoError(t, err)

	_, _, err = deductOrderStock(store, orderID, nil)
	assert.ErrorIs(t, err, domain.ErrStockAlreadyDeducted)

	// The second call changed nothing.
	assert.InDelta(t, 4.0, store.ingredients[beef].CurrentStock, 1e-9)
	assert.Len(t, store.orderHistory(orderID, domain.StockOpOrderConsumption), 1)
}

func TestRestoreOrderStockDuplicateGuard(t *testing.T) {
	store, orderID, beef := beefOrder()

	_, _, err := deductOrderStock(store, orderID, nil)
	require.NoError(t, err)

	_, err = restoreOrderStock(store, orderID, nil)
	require.NoError(t, err)

	_, err = restoreOrderStock(store, orderID, nil)
	assert.ErrorIs(t, err, domain.ErrStockAlreadyRestored)

	assert.InDelta(t, 10.0, store.ingredients[beef].CurrentStock, 1e-9)
	assert.Len(t, store.orderHistory(orderID, domain.StockOpOrderCancellation), 1)
}

func TestRestoreOrderStockWithoutConsumptionIsNoOp(t *testing.T) {
	store := &memoryLedger{ingredients: map[uuid.UUID]*entities.Ingredient{}}

	restored, err := restoreOrderStock(store, uuid.New(), nil)

	require.NoError(t, err)
	assert.Zero(t, restored)
	assert.Empty(t, store.history)
}

func TestDeductOrderStockEmptyOrderIsNoOp(t *testing.T) {
	store := &memoryLedger{ingredients: map[uuid.UUID]*entities.Ingredient{}}

	deducted, alerts, err := deductOrderStock(store, uuid.New(), nil)

	require.NoError(t, err)
	assert.Zero(t, deducted)
	assert.Empty(t, alerts)
	assert.Empty(t, store.history)
}

func TestDeductOrderStockAllowsNegativeStock(t *testing.T) {
	store, orderID, beef := beefOrder()
	store.ingredients[beef].CurrentStock = 1

	deducted, alerts, err := deductOrderStock(store, orderID, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
	assert.InDelta(t, -5.0, store.ingredients[beef].CurrentStock, 1e-9)

	require.Len(t, alerts, 1)
	assert.InDelta(t, -5.0, alerts[0].CurrentStock, 1e-9)
}

func TestDeductOrderStockIgnoresInactiveRecipeLines(t *testing.T) {
	store, orderID, beef := beefOrder()
	replaced := uuid.New()
	store.ingredients[replaced] = &entities.Ingredient{
		ID: replaced, Name: "Old Blend", Unit: "kg", CurrentStock: 8, MinimumStock: 1, IsActive: true,
	}
	store.lines = append(store.lines, &entities.RecipeIngredient{
		MenuItemID: store.items[0].MenuItemID, IngredientID: replaced, Quantity: 1, IsActive: false,
	})

	deducted, _, err := deductOrderStock(store, orderID, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
	assert.InDelta(t, 8.0, store.ingredients[replaced].CurrentStock, 1e-9)
	assert.InDelta(t, 4.0, store.ingredients[beef].CurrentStock, 1e-9)
}
