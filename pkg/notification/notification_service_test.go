package notification

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
)

type fakeNotificationRepository struct {
	created     []*entities.Notification
	preferences []*entities.NotificationPreference
	settings    map[string]string

	preferencesErr error
	createErr      error
}

func (f *fakeNotificationRepository) CreateNotifications(ctx context.Context, notifications []*entities.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, notifications...)
	return nil
}

func (f *fakeNotificationRepository) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationRepository) MarkAsRead(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	return nil
}

func (f *fakeNotificationRepository) DeleteNotification(ctx context.Context, id string, userID string) error {
	return nil
}

func (f *fakeNotificationRepository) GetPreferences(ctx context.Context, userIDs []uuid.UUID) ([]*entities.NotificationPreference, error) {
	if f.preferencesErr != nil {
		return nil, f.preferencesErr
	}
	return f.preferences, nil
}

func (f *fakeNotificationRepository) GetPreferenceByUser(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	for _, preference := range f.preferences {
		if preference.UserID.String() == userID {
			return preference, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeNotificationRepository) UpsertPreference(ctx context.Context, preference *entities.NotificationPreference) error {
	for i, existing := range f.preferences {
		if existing.UserID == preference.UserID {
			f.preferences[i] = preference
			return nil
		}
	}
	f.preferences = append(f.preferences, preference)
	return nil
}

func (f *fakeNotificationRepository) GetSetting(ctx context.Context, key string) (string, error) {
	if f.settings == nil {
		return "", errors.New("record not found")
	}
	value, ok := f.settings[key]
	if !ok {
		return "", errors.New("record not found")
	}
	return value, nil
}

func (f *fakeNotificationRepository) UpsertSetting(ctx context.Context, key, value string) error {
	if f.settings == nil {
		f.settings = make(map[string]string)
	}
	f.settings[key] = value
	return nil
}

type fakeUserRepository struct {
	usersByRole map[string][]*entities.User
	err         error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, errors.New("record not found")
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, errors.New("record not found")
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error { return nil }

func (f *fakeUserRepository) GetUsers(ctx context.Context, role string, page, limit int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) GetActiveUsersByRole(ctx context.Context, role string) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.usersByRole[role], nil
}

func (f *fakeUserRepository) GetActiveUsersByRoles(ctx context.Context, roles []string) ([]*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var users []*entities.User
	for _, role := range roles {
		users = append(users, f.usersByRole[role]...)
	}
	return users, nil
}

func newTestService(repo *fakeNotificationRepository, users *fakeUserRepository, at time.Time) *notificationService {
	return &notificationService{
		notificationRepository: repo,
		userRepository:         users,
		now:                    func() time.Time { return at },
	}
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 14, hour, 30, 0, 0, time.UTC)
}

func TestIsQuietHour(t *testing.T) {
	tests := []struct {
		name  string
		hour  int
		start string
		end   string
		want  bool
	}{
		{"wrapping window before midnight", 23, "22:00", "08:00", true},
		{"wrapping window after midnight", 5, "22:00", "08:00", true},
		{"wrapping window at start", 22, "22:00", "08:00", true},
		{"wrapping window at end", 8, "22:00", "08:00", false},
		{"wrapping window daytime", 10, "22:00", "08:00", false},
		{"same-day window inside", 10, "08:00", "22:00", true},
		{"same-day window outside", 23, "08:00", "22:00", false},
		{"minutes ignored", 21, "21:45", "08:00", true},
		{"unparseable start disables suppression", 23, "late", "08:00", false},
		{"unparseable end disables suppression", 23, "22:00", "early", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuietHour(at(tt.hour), tt.start, tt.end))
		})
	}
}

func TestCreateNotificationSuppressedDuringQuietHours(t *testing.T) {
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(23))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{uuid.New()},
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		"Beef is running low",
	)

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestCreateNotificationUsesDefaultQuietHours(t *testing.T) {
	// No settings rows at all: the 22:00-08:00 default window applies.
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, &fakeUserRepository{}, at(5))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{uuid.New()},
		domain.NotificationCategoryOrder,
		"New Order",
		"Order ORD-20260314-0001 has been placed",
	)

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestCreateNotificationDeliversOutsideQuietHours(t *testing.T) {
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(10))
	userID := uuid.New()

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{userID},
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		"Beef is running low",
	)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, userID, repo.created[0].UserID)
	assert.Equal(t, domain.NotificationCategoryInventory, repo.created[0].Category)
	assert.False(t, repo.created[0].IsRead)
}

func TestCreateNotificationFiltersByPreference(t *testing.T) {
	optedOut := uuid.New()
	optedIn := uuid.New()
	noRow := uuid.New()

	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
		preferences: []*entities.NotificationPreference{
			{UserID: optedOut, OrderUpdates: true, InventoryAlerts: false, PaymentNotifications: true, SystemAlerts: true},
			{UserID: optedIn, OrderUpdates: true, InventoryAlerts: true, PaymentNotifications: true, SystemAlerts: true},
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{optedOut, optedIn, noRow},
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		"Beef is running low",
	)

	require.NoError(t, err)
	require.Len(t, repo.created, 2)

	recipients := []uuid.UUID{repo.created[0].UserID, repo.created[1].UserID}
	assert.Contains(t, recipients, optedIn)
	assert.Contains(t, recipients, noRow)
	assert.NotContains(t, recipients, optedOut)
}

func TestCreateNotificationDeliversToAllWhenNoPreferenceRows(t *testing.T) {
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))
	userIDs := []uuid.UUID{uuid.New(), uuid.New()}

	err := service.CreateNotification(
		context.Background(),
		userIDs,
		domain.NotificationCategoryPayment,
		"Payment Received",
		"Order ORD-20260314-0001 has been paid",
	)

	require.NoError(t, err)
	assert.Len(t, repo.created, 2)
}

func TestCreateNotificationDeliversToAllWhenPreferenceLookupFails(t *testing.T) {
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
		preferencesErr: errors.New("connection refused"),
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{uuid.New()},
		domain.NotificationCategorySystem,
		"System Alert",
		"Nightly backup failed",
	)

	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestCreateNotificationUnknownCategoryUsesOrderFlag(t *testing.T) {
	muted := uuid.New()
	subscribed := uuid.New()
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
		preferences: []*entities.NotificationPreference{
			{UserID: muted, OrderUpdates: false, InventoryAlerts: true, PaymentNotifications: true, SystemAlerts: true},
			{UserID: subscribed, OrderUpdates: true, InventoryAlerts: true, PaymentNotifications: true, SystemAlerts: true},
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{muted, subscribed},
		"promotion",
		"Weekend Special",
		"Two for one on all desserts",
	)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, subscribed, repo.created[0].UserID)
}

func TestCreateNotificationAllOptedOutDeliversToEveryone(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	// Preference rows exist but none enables the category: the filter
	// has no opt-in to select on, so everyone requested is kept.
	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
		preferences: []*entities.NotificationPreference{
			{UserID: first, OrderUpdates: true, InventoryAlerts: false, PaymentNotifications: true, SystemAlerts: true},
			{UserID: second, OrderUpdates: true, InventoryAlerts: false, PaymentNotifications: true, SystemAlerts: true},
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{first, second},
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		"Beef is running low",
	)

	require.NoError(t, err)
	assert.Len(t, repo.created, 2)
}

func TestCreateNotificationOptedOutWithRowlessPeerDeliversToBoth(t *testing.T) {
	optedOut := uuid.New()
	noRow := uuid.New()

	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
		preferences: []*entities.NotificationPreference{
			{UserID: optedOut, OrderUpdates: true, InventoryAlerts: false, PaymentNotifications: true, SystemAlerts: true},
		},
	}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(),
		[]uuid.UUID{optedOut, noRow},
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		"Beef is running low",
	)

	require.NoError(t, err)
	assert.Len(t, repo.created, 2)
}

func TestCreateNotificationNoRecipients(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.CreateNotification(
		context.Background(), nil,
		domain.NotificationCategoryOrder, "New Order", "Order placed",
	)

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestCreateNotificationForRole(t *testing.T) {
	kitchenA := &entities.User{ID: uuid.New(), Role: domain.RoleKitchen}
	kitchenB := &entities.User{ID: uuid.New(), Role: domain.RoleKitchen}

	repo := &fakeNotificationRepository{
		settings: map[string]string{
			domain.SettingQuietHoursStart: "22:00",
			domain.SettingQuietHoursEnd:   "08:00",
		},
	}
	users := &fakeUserRepository{
		usersByRole: map[string][]*entities.User{
			domain.RoleKitchen: {kitchenA, kitchenB},
		},
	}
	service := newTestService(repo, users, at(12))

	err := service.NotifyNewOrder(context.Background(), "ORD-20260314-0001")

	require.NoError(t, err)
	assert.Len(t, repo.created, 2)
}

func TestCreateNotificationForRoleNoMembers(t *testing.T) {
	repo := &fakeNotificationRepository{}
	users := &fakeUserRepository{usersByRole: map[string][]*entities.User{}}
	service := newTestService(repo, users, at(12))

	err := service.CreateNotificationForRole(
		context.Background(),
		domain.RoleKitchen, domain.NotificationCategoryOrder, "New Order", "Order placed",
	)

	require.NoError(t, err)
	assert.Empty(t, repo.created)
}

func TestGetPreferencesDefaultsWhenMissing(t *testing.T) {
	service := newTestService(&fakeNotificationRepository{}, &fakeUserRepository{}, at(12))

	preferences, err := service.GetPreferences(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.True(t, preferences.OrderUpdates)
	assert.True(t, preferences.InventoryAlerts)
	assert.True(t, preferences.PaymentNotifications)
	assert.True(t, preferences.SystemAlerts)
}

func TestUpdatePreferencesPartialUpdate(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, &fakeUserRepository{}, at(12))
	userID := uuid.New()

	disabled := false
	err := service.UpdatePreferences(context.Background(), userID.String(), domain.UpdatePreferencesRequest{
		InventoryAlerts: &disabled,
	})
	require.NoError(t, err)

	preferences, err := service.GetPreferences(context.Background(), userID.String())
	require.NoError(t, err)
	assert.False(t, preferences.InventoryAlerts)
	assert.True(t, preferences.OrderUpdates)
	assert.True(t, preferences.PaymentNotifications)
	assert.True(t, preferences.SystemAlerts)
}

func TestUpdateQuietHoursRejectsUnparseableBoundary(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.UpdateQuietHours(context.Background(), domain.UpdateQuietHoursRequest{
		Start: "25:99",
		End:   "08:00",
	})

	assert.Error(t, err)
	assert.Empty(t, repo.settings)
}

func TestUpdateAndGetQuietHours(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, &fakeUserRepository{}, at(12))

	err := service.UpdateQuietHours(context.Background(), domain.UpdateQuietHoursRequest{
		Start: "23:00",
		End:   "06:00",
	})
	require.NoError(t, err)

	quietHours, err := service.GetQuietHours(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "23:00", quietHours.Start)
	assert.Equal(t, "06:00", quietHours.End)
}

func TestLowStockMessageFormatsQuantities(t *testing.T) {
	message := lowStockMessage("Beef", "kg", 4, 5)
	assert.Equal(t, "Beef is running low: 4 kg left (minimum 5 kg)", message)

	message = lowStockMessage("Olive Oil", "l", 1.5, 2.25)
	assert.Equal(t, "Olive Oil is running low: 1.5 l left (minimum 2.25 l)", message)
}
