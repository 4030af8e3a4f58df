package domain

import "errors"

const (
	NotificationCategoryOrder     = "order"
	NotificationCategoryInventory = "inventory"
	NotificationCategoryPayment   = "payment"
	NotificationCategorySystem    = "system"
)

// Quiet-hours boundaries are stored as "HH:MM" settings. Only the hour
// component is compared; an unparseable value disables suppression.
const (
	SettingQuietHoursStart = "notification_quiet_start"
	SettingQuietHoursEnd   = "notification_quiet_end"

	DefaultQuietHoursStart = "22:00"
	DefaultQuietHoursEnd   = "08:00"
)

var (
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessMarkRead          = "notification marked as read"
	MessageSuccessMarkAllRead       = "all notifications marked as read"
	MessageSuccessDeleteNotif       = "notification deleted successfully"
	MessageSuccessGetPreferences    = "notification preferences retrieved successfully"
	MessageSuccessUpdatePreferences = "notification preferences updated successfully"
	MessageSuccessGetQuietHours     = "quiet hours retrieved successfully"
	MessageSuccessUpdateQuietHours  = "quiet hours updated successfully"
	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedMarkRead           = "failed to mark notification as read"
	MessageFailedDeleteNotif        = "failed to delete notification"
	MessageFailedGetPreferences     = "failed to retrieve notification preferences"
	MessageFailedUpdatePreferences  = "failed to update notification preferences"
	MessageFailedGetQuietHours      = "failed to retrieve quiet hours"
	MessageFailedUpdateQuietHours   = "failed to update quiet hours"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	UpdatePreferencesRequest struct {
		OrderUpdates         *bool `json:"order_updates,omitempty"`
		InventoryAlerts      *bool `json:"inventory_alerts,omitempty"`
		PaymentNotifications *bool `json:"payment_notifications,omitempty"`
		SystemAlerts         *bool `json:"system_alerts,omitempty"`
	}

	PreferencesResponse struct {
		OrderUpdates         bool `json:"order_updates"`
		InventoryAlerts      bool `json:"inventory_alerts"`
		PaymentNotifications bool `json:"payment_notifications"`
		SystemAlerts         bool `json:"system_alerts"`
	}

	QuietHours struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}

	UpdateQuietHoursRequest struct {
		Start string `json:"start" validate:"required,len=5"`
		End   string `json:"end" validate:"required,len=5"`
	}
)
