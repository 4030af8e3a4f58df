package notification

import (
	"Resto-POS-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	NotificationRepository interface {
		CreateNotifications(ctx context.Context, notifications []*entities.Notification) error
		GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		MarkAllAsRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, id string, userID string) error

		GetPreferences(ctx context.Context, userIDs []uuid.UUID) ([]*entities.NotificationPreference, error)
		GetPreferenceByUser(ctx context.Context, userID string) (*entities.NotificationPreference, error)
		UpsertPreference(ctx context.Context, preference *entities.NotificationPreference) error

		GetSetting(ctx context.Context, key string) (string, error)
		UpsertSetting(ctx context.Context, key, value string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(notifications).Error
}

func (r *notificationRepository) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Model(&entities.Notification{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Notification{}).Error
}

func (r *notificationRepository) GetPreferences(ctx context.Context, userIDs []uuid.UUID) ([]*entities.NotificationPreference, error) {
	var preferences []*entities.NotificationPreference
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

func (r *notificationRepository) GetPreferenceByUser(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	var preference entities.NotificationPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&preference).Error; err != nil {
		return nil, err
	}
	return &preference, nil
}

func (r *notificationRepository) UpsertPreference(ctx context.Context, preference *entities.NotificationPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"order_updates", "inventory_alerts", "payment_notifications", "system_alerts", "updated_at",
			}),
		}).
		Create(preference).Error
}

func (r *notificationRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var setting entities.Setting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *notificationRepository) UpsertSetting(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entities.Setting{Key: key, Value: value}).Error
}
