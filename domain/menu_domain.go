package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateCategory  = "category created successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessCreateMenuItem  = "menu item created successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessUpdateMenuItem  = "menu item updated successfully"
	MessageSuccessDeleteMenuItem  = "menu item deleted successfully"
	MessageSuccessUploadImage     = "menu item image uploaded successfully"
	MessageSuccessSetRecipe       = "recipe updated successfully"
	MessageSuccessGetRecipe       = "recipe retrieved successfully"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedGetCategories    = "failed to retrieve categories"
	MessageFailedUpdateCategory   = "failed to update category"
	MessageFailedDeleteCategory   = "failed to delete category"
	MessageFailedCreateMenuItem   = "failed to create menu item"
	MessageFailedGetMenuItems     = "failed to retrieve menu items"
	MessageFailedUpdateMenuItem   = "failed to update menu item"
	MessageFailedDeleteMenuItem   = "failed to delete menu item"
	MessageFailedUploadImage      = "failed to upload menu item image"
	MessageFailedSetRecipe        = "failed to update recipe"
	MessageFailedGetRecipe        = "failed to retrieve recipe"

	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required,min=2"`
		Description string `json:"description,omitempty"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name,omitempty" validate:"omitempty,min=2"`
		Description string `json:"description,omitempty"`
		IsActive    *bool  `json:"is_active,omitempty"`
	}

	CreateMenuItemRequest struct {
		CategoryID  string  `json:"category_id" validate:"required,uuid"`
		Name        string  `json:"name" validate:"required,min=2"`
		Description string  `json:"description,omitempty"`
		Price       float64 `json:"price" validate:"required,gt=0"`
	}

	UpdateMenuItemRequest struct {
		CategoryID  string   `json:"category_id,omitempty" validate:"omitempty,uuid"`
		Name        string   `json:"name,omitempty" validate:"omitempty,min=2"`
		Description string   `json:"description,omitempty"`
		Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
		IsAvailable *bool    `json:"is_available,omitempty"`
	}

	UploadMenuImageRequest struct {
		MenuItemID string                `json:"menu_item_id" form:"menu_item_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"-" validate:"required"`
	}

	RecipeLineRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
	}

	SetRecipeRequest struct {
		Lines []RecipeLineRequest `json:"lines" validate:"required,dive"`
	}

	RecipeLineResponse struct {
		IngredientID   string  `json:"ingredient_id"`
		IngredientName string  `json:"ingredient_name"`
		Unit           string  `json:"unit"`
		Quantity       float64 `json:"quantity"`
	}
)
