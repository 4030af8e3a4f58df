package inventory

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	ingredients map[string]*entities.Ingredient

	deductResult int
	deductAlerts []domain.LowStockAlert
	deductErr    error

	restoreResult int
	restoreErr    error

	movements []recordedMovement
}

type recordedMovement struct {
	ingredientID uuid.UUID
	operation    string
	quantity     float64
	reason       string
}

func (f *fakeInventoryRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	if f.ingredients == nil {
		f.ingredients = make(map[string]*entities.Ingredient)
	}
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	f.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (f *fakeInventoryRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (f *fakeInventoryRepository) GetIngredients(ctx context.Context, includeInactive bool, page, limit int) ([]*entities.Ingredient, int64, error) {
	return nil, 0, nil
}

func (f *fakeInventoryRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	f.ingredients[ingredient.ID.String()] = ingredient
	return nil
}

func (f *fakeInventoryRepository) DeactivateIngredient(ctx context.Context, id string) error {
	ingredient, ok := f.ingredients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ingredient.IsActive = false
	return nil
}

func (f *fakeInventoryRepository) DeductForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, []domain.LowStockAlert, error) {
	if f.deductErr != nil {
		return 0, nil, f.deductErr
	}
	return f.deductResult, f.deductAlerts, nil
}

func (f *fakeInventoryRepository) RestoreForOrder(ctx context.Context, orderID uuid.UUID, userID *uuid.UUID) (int, error) {
	if f.restoreErr != nil {
		return 0, f.restoreErr
	}
	return f.restoreResult, nil
}

func (f *fakeInventoryRepository) RecordMovement(ctx context.Context, ingredientID uuid.UUID, operation string, quantity float64, reason string, userID *uuid.UUID) error {
	f.movements = append(f.movements, recordedMovement{
		ingredientID: ingredientID,
		operation:    operation,
		quantity:     quantity,
		reason:       reason,
	})
	return nil
}

func (f *fakeInventoryRepository) GetStockHistory(ctx context.Context, ingredientID string, page, limit int) ([]*entities.StockHistory, int64, error) {
	return nil, 0, nil
}

func (f *fakeInventoryRepository) GetUsageReport(ctx context.Context, startDate, endDate time.Time) ([]*domain.IngredientUsageRow, error) {
	return []*domain.IngredientUsageRow{}, nil
}

type fakeNotificationService struct {
	sent []sentNotification
	err  error
}

type sentNotification struct {
	userIDs  []uuid.UUID
	category string
	title    string
	message  string
}

func (f *fakeNotificationService) CreateNotification(ctx context.Context, userIDs []uuid.UUID, category, title, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentNotification{userIDs: userIDs, category: category, title: title, message: message})
	return nil
}

func (f *fakeNotificationService) CreateNotificationForRole(ctx context.Context, role, category, title, message string) error {
	return nil
}

func (f *fakeNotificationService) NotifyLowStock(ctx context.Context, ingredientName, unit string, currentStock, minimumStock float64) error {
	return nil
}

func (f *fakeNotificationService) NotifyNewOrder(ctx context.Context, orderNumber string) error {
	return nil
}

func (f *fakeNotificationService) NotifySystemAlert(ctx context.Context, title, message string) error {
	return nil
}

func (f *fakeNotificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeNotificationService) DeleteNotification(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationService) GetPreferences(ctx context.Context, userID string) (*domain.PreferencesResponse, error) {
	return nil, nil
}

func (f *fakeNotificationService) UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) error {
	return nil
}

func (f *fakeNotificationService) GetQuietHours(ctx context.Context) (*domain.QuietHours, error) {
	return nil, nil
}

func (f *fakeNotificationService) UpdateQuietHours(ctx context.Context, req domain.UpdateQuietHoursRequest) error {
	return nil
}

type fakeUserRepository struct {
	activeByRoles []*entities.User
	err           error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error { return nil }

func (f *fakeUserRepository) GetUsers(ctx context.Context, role string, page, limit int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) GetActiveUsersByRole(ctx context.Context, role string) ([]*entities.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) GetActiveUsersByRoles(ctx context.Context, roles []string) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.activeByRoles, nil
}

func newTestService(repo *fakeInventoryRepository, notifications *fakeNotificationService, users *fakeUserRepository) InventoryService {
	return NewInventoryService(repo, notifications, users)
}

func TestPlanOrderDeductionAggregatesPerIngredient(t *testing.T) {
	beef := uuid.New()
	cheese := uuid.New()
	burger := uuid.New()
	melt := uuid.New()

	items := []*entities.OrderItem{
		{MenuItemID: burger, Quantity: 3},
		{MenuItemID: melt, Quantity: 1},
	}
	lines := map[uuid.UUID][]*entities.RecipeIngredient{
		burger: {
			{MenuItemID: burger, IngredientID: beef, Quantity: 2},
			{MenuItemID: burger, IngredientID: cheese, Quantity: 1},
		},
		melt: {
			{MenuItemID: melt, IngredientID: cheese, Quantity: 3},
		},
	}

	ingredientIDs, required := planOrderDeduction(items, lines)

	// One entry per distinct ingredient, not per order line.
	require.Len(t, ingredientIDs, 2)
	assert.Equal(t, beef, ingredientIDs[0])
	assert.Equal(t, cheese, ingredientIDs[1])

	assert.InDelta(t, 6.0, required[beef], 1e-9)
	assert.InDelta(t, 6.0, required[cheese], 1e-9)
}

func TestPlanOrderDeductionRepeatedMenuItem(t *testing.T) {
	beef := uuid.New()
	burger := uuid.New()

	// The same dish ordered on two separate lines still folds into one
	// ingredient entry.
	items := []*entities.OrderItem{
		{MenuItemID: burger, Quantity: 1},
		{MenuItemID: burger, Quantity: 2},
	}
	lines := map[uuid.UUID][]*entities.RecipeIngredient{
		burger: {{MenuItemID: burger, IngredientID: beef, Quantity: 2}},
	}

	ingredientIDs, required := planOrderDeduction(items, lines)

	require.Len(t, ingredientIDs, 1)
	assert.InDelta(t, 6.0, required[beef], 1e-9)
}

func TestPlanOrderDeductionNoRecipes(t *testing.T) {
	items := []*entities.OrderItem{{MenuItemID: uuid.New(), Quantity: 2}}

	ingredientIDs, required := planOrderDeduction(items, nil)

	assert.Empty(t, ingredientIDs)
	assert.Empty(t, required)
}

func TestDeductIngredientsForOrderDispatchesAlerts(t *testing.T) {
	admin := &entities.User{ID: uuid.New(), Role: domain.RoleAdmin}
	manager := &entities.User{ID: uuid.New(), Role: domain.RoleManager}

	repo := &fakeInventoryRepository{
		deductResult: 1,
		deductAlerts: []domain.LowStockAlert{
			{IngredientID: uuid.New(), Name: "Beef", Unit: "kg", CurrentStock: 4, MinimumStock: 5},
		},
	}
	notifications := &fakeNotificationService{}
	users := &fakeUserRepository{activeByRoles: []*entities.User{admin, manager}}
	service := newTestService(repo, notifications, users)

	deducted, err := service.DeductIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)

	require.Len(t, notifications.sent, 1)
	alert := notifications.sent[0]
	assert.Equal(t, domain.NotificationCategoryInventory, alert.category)
	assert.Equal(t, "Low Stock Alert", alert.title)
	assert.Equal(t, "Beef is running low: 4.00 kg left (minimum 5.00 kg)", alert.message)
	assert.ElementsMatch(t, []uuid.UUID{admin.ID, manager.ID}, alert.userIDs)
}

func TestDeductIngredientsForOrderNoAlerts(t *testing.T) {
	repo := &fakeInventoryRepository{deductResult: 2}
	notifications := &fakeNotificationService{}
	service := newTestService(repo, notifications, &fakeUserRepository{})

	deducted, err := service.DeductIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 2, deducted)
	assert.Empty(t, notifications.sent)
}

func TestDeductIngredientsForOrderSwallowsNotificationFailure(t *testing.T) {
	repo := &fakeInventoryRepository{
		deductResult: 1,
		deductAlerts: []domain.LowStockAlert{
			{IngredientID: uuid.New(), Name: "Beef", Unit: "kg", CurrentStock: 4, MinimumStock: 5},
		},
	}
	notifications := &fakeNotificationService{err: errors.New("broker unavailable")}
	users := &fakeUserRepository{
		activeByRoles: []*entities.User{{ID: uuid.New(), Role: domain.RoleAdmin}},
	}
	service := newTestService(repo, notifications, users)

	deducted, err := service.DeductIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
}

func TestDeductIngredientsForOrderSwallowsRecipientLookupFailure(t *testing.T) {
	repo := &fakeInventoryRepository{
		deductResult: 1,
		deductAlerts: []domain.LowStockAlert{
			{IngredientID: uuid.New(), Name: "Beef", Unit: "kg", CurrentStock: 4, MinimumStock: 5},
		},
	}
	notifications := &fakeNotificationService{}
	users := &fakeUserRepository{err: errors.New("connection refused")}
	service := newTestService(repo, notifications, users)

	deducted, err := service.DeductIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 1, deducted)
	assert.Empty(t, notifications.sent)
}

func TestDeductIngredientsForOrderPropagatesLedgerError(t *testing.T) {
	repo := &fakeInventoryRepository{deductErr: domain.ErrStockAlreadyDeducted}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	_, err := service.DeductIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrStockAlreadyDeducted)
}

func TestDeductIngredientsForOrderRejectsBadID(t *testing.T) {
	service := newTestService(&fakeInventoryRepository{}, &fakeNotificationService{}, &fakeUserRepository{})

	_, err := service.DeductIngredientsForOrder(context.Background(), "not-a-uuid", uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestRestoreIngredientsForOrder(t *testing.T) {
	repo := &fakeInventoryRepository{restoreResult: 3}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	restored, err := service.RestoreIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, 3, restored)
}

func TestRestoreIngredientsForOrderPropagatesDuplicateGuard(t *testing.T) {
	repo := &fakeInventoryRepository{restoreErr: domain.ErrStockAlreadyRestored}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	_, err := service.RestoreIngredientsForOrder(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrStockAlreadyRestored)
}

func TestCheckLowStock(t *testing.T) {
	low := &entities.Ingredient{ID: uuid.New(), Name: "Beef", CurrentStock: 4, MinimumStock: 5, IsActive: true}
	atMinimum := &entities.Ingredient{ID: uuid.New(), Name: "Cheese", CurrentStock: 5, MinimumStock: 5, IsActive: true}

	repo := &fakeInventoryRepository{
		ingredients: map[string]*entities.Ingredient{
			low.ID.String():       low,
			atMinimum.ID.String(): atMinimum,
		},
	}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	isLow, err := service.CheckLowStock(context.Background(), low.ID.String())
	require.NoError(t, err)
	assert.True(t, isLow)

	// Exactly at the minimum is not low.
	isLow, err = service.CheckLowStock(context.Background(), atMinimum.ID.String())
	require.NoError(t, err)
	assert.False(t, isLow)

	_, err = service.CheckLowStock(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestRestockIngredientRejectsNonPositiveQuantity(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	err := service.RestockIngredient(context.Background(), uuid.NewString(), domain.RestockRequest{Quantity: 0}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrQuantityNotPositive)
	assert.Empty(t, repo.movements)
}

func TestRestockIngredientDefaultsReason(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})
	ingredientID := uuid.New()

	err := service.RestockIngredient(context.Background(), ingredientID.String(), domain.RestockRequest{Quantity: 10}, uuid.NewString())

	require.NoError(t, err)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, ingredientID, repo.movements[0].ingredientID)
	assert.Equal(t, domain.StockOpManualRestock, repo.movements[0].operation)
	assert.Equal(t, "Manual restock", repo.movements[0].reason)
	assert.InDelta(t, 10.0, repo.movements[0].quantity, 1e-9)
}

func TestAdjustStockAllowsNegativeQuantity(t *testing.T) {
	repo := &fakeInventoryRepository{}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})
	ingredientID := uuid.New()

	err := service.AdjustStock(context.Background(), ingredientID.String(), domain.AdjustStockRequest{
		Quantity: -2.5,
		Reason:   "Spoilage",
	}, uuid.NewString())

	require.NoError(t, err)
	require.Len(t, repo.movements, 1)
	assert.Equal(t, domain.StockOpAdjustment, repo.movements[0].operation)
	assert.InDelta(t, -2.5, repo.movements[0].quantity, 1e-9)
	assert.Equal(t, "Spoilage", repo.movements[0].reason)
}

func TestGetUsageReportRejectsInvertedRange(t *testing.T) {
	service := newTestService(&fakeInventoryRepository{}, &fakeNotificationService{}, &fakeUserRepository{})

	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -7)

	_, err := service.GetUsageReport(context.Background(), start, end)

	assert.ErrorIs(t, err, domain.ErrReportRangeInvalid)
}

func TestUpdateIngredientLeavesStockUntouched(t *testing.T) {
	ingredient := &entities.Ingredient{
		ID: uuid.New(), Name: "Beef", Unit: "kg",
		UnitCost: 12, CurrentStock: 10, MinimumStock: 5, IsActive: true,
	}
	repo := &fakeInventoryRepository{
		ingredients: map[string]*entities.Ingredient{ingredient.ID.String(): ingredient},
	}
	service := newTestService(repo, &fakeNotificationService{}, &fakeUserRepository{})

	newCost := 14.5
	err := service.UpdateIngredient(context.Background(), ingredient.ID.String(), domain.UpdateIngredientRequest{
		Name:     "Beef Chuck",
		UnitCost: &newCost,
	})

	require.NoError(t, err)
	updated := repo.ingredients[ingredient.ID.String()]
	assert.Equal(t, "Beef Chuck", updated.Name)
	assert.InDelta(t, 14.5, updated.UnitCost, 1e-9)
	assert.InDelta(t, 10.0, updated.CurrentStock, 1e-9)
}
