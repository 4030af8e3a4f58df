package notification

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"Resto-POS-Backend/pkg/user"
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	NotificationService interface {
		CreateNotification(ctx context.Context, userIDs []uuid.UUID, category, title, message string) error
		CreateNotificationForRole(ctx context.Context, role, category, title, message string) error
		NotifyLowStock(ctx context.Context, ingredientName, unit string, currentStock, minimumStock float64) error
		NotifyNewOrder(ctx context.Context, orderNumber string) error
		NotifySystemAlert(ctx context.Context, title, message string) error

		GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		MarkAllAsRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, id string, userID string) error

		GetPreferences(ctx context.Context, userID string) (*domain.PreferencesResponse, error)
		UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) error
		GetQuietHours(ctx context.Context) (*domain.QuietHours, error)
		UpdateQuietHours(ctx context.Context, req domain.UpdateQuietHoursRequest) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
		now                    func() time.Time
	}
)

func NewNotificationService(notificationRepository NotificationRepository, userRepository user.UserRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		now:                    time.Now,
	}
}

// CreateNotification fans one alert out to the given recipients. Delivery
// is suppressed entirely during quiet hours and filtered by per-user
// category preferences; both checks fail open so a missing or broken
// configuration can never silently block every alert.
func (s *notificationService) CreateNotification(ctx context.Context, userIDs []uuid.UUID, category, title, message string) error {
	if len(userIDs) == 0 {
		return nil
	}

	if s.inQuietHours(ctx) {
		log.Warnf("notification %q dropped: quiet hours active", title)
		return nil
	}

	recipients := s.filterByPreference(ctx, userIDs, category)
	if len(recipients) == 0 {
		return nil
	}

	notifications := make([]*entities.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifications = append(notifications, &entities.Notification{
			ID:       uuid.New(),
			UserID:   userID,
			Category: category,
			Title:    title,
			Message:  message,
		})
	}

	return s.notificationRepository.CreateNotifications(ctx, notifications)
}

func (s *notificationService) CreateNotificationForRole(ctx context.Context, role, category, title, message string) error {
	users, err := s.userRepository.GetActiveUsersByRole(ctx, role)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	userIDs := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	return s.CreateNotification(ctx, userIDs, category, title, message)
}

func (s *notificationService) NotifyLowStock(ctx context.Context, ingredientName, unit string, currentStock, minimumStock float64) error {
	return s.CreateNotificationForRole(
		ctx,
		domain.RoleManager,
		domain.NotificationCategoryInventory,
		"Low Stock Alert",
		lowStockMessage(ingredientName, unit, currentStock, minimumStock),
	)
}

func (s *notificationService) NotifyNewOrder(ctx context.Context, orderNumber string) error {
	return s.CreateNotificationForRole(
		ctx,
		domain.RoleKitchen,
		domain.NotificationCategoryOrder,
		"New Order",
		"Order "+orderNumber+" has been placed and is waiting to be prepared",
	)
}

func (s *notificationService) NotifySystemAlert(ctx context.Context, title, message string) error {
	return s.CreateNotificationForRole(ctx, domain.RoleAdmin, domain.NotificationCategorySystem, title, message)
}

func (s *notificationService) inQuietHours(ctx context.Context) bool {
	start, err := s.notificationRepository.GetSetting(ctx, domain.SettingQuietHoursStart)
	if err != nil {
		start = domain.DefaultQuietHoursStart
	}
	end, err := s.notificationRepository.GetSetting(ctx, domain.SettingQuietHoursEnd)
	if err != nil {
		end = domain.DefaultQuietHoursEnd
	}
	return isQuietHour(s.now(), start, end)
}

// isQuietHour compares only the hour component against the configured
// window. A start hour later than the end hour means the window wraps
// midnight. Unparseable boundaries disable suppression.
func isQuietHour(now time.Time, start, end string) bool {
	startHour, err := parseHour(start)
	if err != nil {
		return false
	}
	endHour, err := parseHour(end)
	if err != nil {
		return false
	}

	hour := now.Hour()
	if startHour > endHour {
		return hour >= startHour || hour < endHour
	}
	return hour >= startHour && hour < endHour
}

func parseHour(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

// filterByPreference keeps recipients whose preference row enables the
// category. Users without a row are kept. The filter only applies when
// at least one recipient's row explicitly enables the category; without
// a single opt-in row, or when the lookup fails, everyone originally
// requested is kept.
func (s *notificationService) filterByPreference(ctx context.Context, userIDs []uuid.UUID, category string) []uuid.UUID {
	preferences, err := s.notificationRepository.GetPreferences(ctx, userIDs)
	if err != nil {
		log.Warnf("preference lookup failed, delivering to all recipients: %v", err)
		return userIDs
	}
	if len(preferences) == 0 {
		return userIDs
	}

	optedIn := false
	for _, preference := range preferences {
		if categoryEnabled(preference, category) {
			optedIn = true
			break
		}
	}
	if !optedIn {
		return userIDs
	}

	byUser := make(map[uuid.UUID]*entities.NotificationPreference, len(preferences))
	for _, preference := range preferences {
		byUser[preference.UserID] = preference
	}

	recipients := make([]uuid.UUID, 0, len(userIDs))
	for _, userID := range userIDs {
		preference, ok := byUser[userID]
		if !ok || categoryEnabled(preference, category) {
			recipients = append(recipients, userID)
		}
	}
	return recipients
}

func categoryEnabled(preference *entities.NotificationPreference, category string) bool {
	switch category {
	case domain.NotificationCategoryInventory:
		return preference.InventoryAlerts
	case domain.NotificationCategoryPayment:
		return preference.PaymentNotifications
	case domain.NotificationCategorySystem:
		return preference.SystemAlerts
	default:
		// "order" and any unknown category fall back to the
		// order-updates flag.
		return preference.OrderUpdates
	}
}

func lowStockMessage(name, unit string, currentStock, minimumStock float64) string {
	return name + " is running low: " +
		formatQuantity(currentStock) + " " + unit + " left (minimum " +
		formatQuantity(minimumStock) + " " + unit + ")"
}

func formatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error) {
	return s.notificationRepository.GetUserNotifications(ctx, userID, unreadOnly, page, limit)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	return s.notificationRepository.MarkAsRead(ctx, id, userID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, userID string) error {
	return s.notificationRepository.DeleteNotification(ctx, id, userID)
}

func (s *notificationService) GetPreferences(ctx context.Context, userID string) (*domain.PreferencesResponse, error) {
	preference, err := s.notificationRepository.GetPreferenceByUser(ctx, userID)
	if err != nil {
		// No row yet means implicit opt-in to everything.
		return &domain.PreferencesResponse{
			OrderUpdates:         true,
			InventoryAlerts:      true,
			PaymentNotifications: true,
			SystemAlerts:         true,
		}, nil
	}

	return &domain.PreferencesResponse{
		OrderUpdates:         preference.OrderUpdates,
		InventoryAlerts:      preference.InventoryAlerts,
		PaymentNotifications: preference.PaymentNotifications,
		SystemAlerts:         preference.SystemAlerts,
	}, nil
}

func (s *notificationService) UpdatePreferences(ctx context.Context, userID string, req domain.UpdatePreferencesRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	preference := &entities.NotificationPreference{
		ID:                   uuid.New(),
		UserID:               userUUID,
		OrderUpdates:         true,
		InventoryAlerts:      true,
		PaymentNotifications: true,
		SystemAlerts:         true,
	}
	if existing, err := s.notificationRepository.GetPreferenceByUser(ctx, userID); err == nil {
		preference = existing
	}

	if req.OrderUpdates != nil {
		preference.OrderUpdates = *req.OrderUpdates
	}
	if req.InventoryAlerts != nil {
		preference.InventoryAlerts = *req.InventoryAlerts
	}
	if req.PaymentNotifications != nil {
		preference.PaymentNotifications = *req.PaymentNotifications
	}
	if req.SystemAlerts != nil {
		preference.SystemAlerts = *req.SystemAlerts
	}

	return s.notificationRepository.UpsertPreference(ctx, preference)
}

func (s *notificationService) GetQuietHours(ctx context.Context) (*domain.QuietHours, error) {
	start, err := s.notificationRepository.GetSetting(ctx, domain.SettingQuietHoursStart)
	if err != nil {
		start = domain.DefaultQuietHoursStart
	}
	end, err := s.notificationRepository.GetSetting(ctx, domain.SettingQuietHoursEnd)
	if err != nil {
		end = domain.DefaultQuietHoursEnd
	}
	return &domain.QuietHours{Start: start, End: end}, nil
}

func (s *notificationService) UpdateQuietHours(ctx context.Context, req domain.UpdateQuietHoursRequest) error {
	if _, err := parseHour(req.Start); err != nil {
		return err
	}
	if _, err := parseHour(req.End); err != nil {
		return err
	}

	if err := s.notificationRepository.UpsertSetting(ctx, domain.SettingQuietHoursStart, req.Start); err != nil {
		return err
	}
	return s.notificationRepository.UpsertSetting(ctx, domain.SettingQuietHoursEnd, req.End)
}
