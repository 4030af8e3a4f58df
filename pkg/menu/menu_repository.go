package menu

import (
	"Resto-POS-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context, includeInactive bool) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeactivateCategory(ctx context.Context, id string) error

		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetMenuItems(ctx context.Context, categoryID string, availableOnly bool, page, limit int) ([]*entities.MenuItem, int64, error)
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error

		ReplaceRecipe(ctx context.Context, menuItemID uuid.UUID, lines []*entities.RecipeIngredient) error
		GetRecipe(ctx context.Context, menuItemID string) ([]*entities.RecipeIngredient, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) GetCategories(ctx context.Context, includeInactive bool) ([]*entities.Category, error) {
	var categories []*entities.Category
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *menuRepository) DeactivateCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetMenuItems(ctx context.Context, categoryID string, availableOnly bool, page, limit int) ([]*entities.MenuItem, int64, error) {
	var items []*entities.MenuItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.MenuItem{})
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Category").Order("name asc").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{}).Error
}

// ReplaceRecipe deactivates the item's current recipe lines and writes
// the new set in one transaction. Old lines are kept, inactive, so
// historical deductions stay explainable.
func (r *menuRepository) ReplaceRecipe(ctx context.Context, menuItemID uuid.UUID, lines []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.RecipeIngredient{}).
			Where("menu_item_id = ? AND is_active = ?", menuItemID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(lines).Error
	})
}

func (r *menuRepository) GetRecipe(ctx context.Context, menuItemID string) ([]*entities.RecipeIngredient, error) {
	var lines []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("menu_item_id = ? AND is_active = ?", menuItemID, true).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
