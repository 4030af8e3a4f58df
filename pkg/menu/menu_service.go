package menu

import (
	"Resto-POS-Backend/domain"
	"Resto-POS-Backend/entities"
	"Resto-POS-Backend/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
		GetCategories(ctx context.Context, includeInactive bool) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error

		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (*entities.MenuItem, error)
		GetMenuItems(ctx context.Context, categoryID string, availableOnly bool, page, limit int) ([]*entities.MenuItem, int64, error)
		GetMenuItemDetails(ctx context.Context, id string) (*entities.MenuItem, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
		UploadMenuItemImage(ctx context.Context, id string, image *multipart.FileHeader) (string, error)

		SetRecipe(ctx context.Context, menuItemID string, req domain.SetRecipeRequest) error
		GetRecipe(ctx context.Context, menuItemID string) ([]*domain.RecipeLineResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	category := &entities.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.menuRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *menuService) GetCategories(ctx context.Context, includeInactive bool) ([]*entities.Category, error) {
	return s.menuRepository.GetCategories(ctx, includeInactive)
}

func (s *menuService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.menuRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	return s.menuRepository.UpdateCategory(ctx, category)
}

func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.menuRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.menuRepository.DeactivateCategory(ctx, id)
}

func (s *menuService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest) (*entities.MenuItem, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.menuRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	item := &entities.MenuItem{
		CategoryID:  categoryUUID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: true,
	}
	if err := s.menuRepository.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *menuService) GetMenuItems(ctx context.Context, categoryID string, availableOnly bool, page, limit int) ([]*entities.MenuItem, int64, error) {
	return s.menuRepository.GetMenuItems(ctx, categoryID, availableOnly, page, limit)
}

func (s *menuService) GetMenuItemDetails(ctx context.Context, id string) (*entities.MenuItem, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		item.CategoryID = categoryUUID
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	return s.menuRepository.UpdateMenuItem(ctx, item)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		_ = s.s3.DeleteFile(ctx, item.ImageURL)
	}

	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) UploadMenuItemImage(ctx context.Context, id string, image *multipart.FileHeader) (string, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMenuItemNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, "menu-items", image)
	if err != nil {
		return "", err
	}

	if item.ImageURL != "" {
		_ = s.s3.DeleteFile(ctx, item.ImageURL)
	}

	item.ImageURL = url
	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return "", err
	}
	return url, nil
}

func (s *menuService) SetRecipe(ctx context.Context, menuItemID string, req domain.SetRecipeRequest) error {
	menuItemUUID, err := uuid.Parse(menuItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.menuRepository.GetMenuItemByID(ctx, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	lines := make([]*entities.RecipeIngredient, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		ingredientUUID, err := uuid.Parse(lineReq.IngredientID)
		if err != nil {
			return domain.ErrParseUUID
		}
		lines = append(lines, &entities.RecipeIngredient{
			MenuItemID:   menuItemUUID,
			IngredientID: ingredientUUID,
			Quantity:     lineReq.Quantity,
			IsActive:     true,
		})
	}

	return s.menuRepository.ReplaceRecipe(ctx, menuItemUUID, lines)
}

func (s *menuService) GetRecipe(ctx context.Context, menuItemID string) ([]*domain.RecipeLineResponse, error) {
	lines, err := s.menuRepository.GetRecipe(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RecipeLineResponse, 0, len(lines))
	for _, line := range lines {
		response := &domain.RecipeLineResponse{
			IngredientID: line.IngredientID.String(),
			Quantity:     line.Quantity,
		}
		if line.Ingredient != nil {
			response.IngredientName = line.Ingredient.Name
			response.Unit = line.Ingredient.Unit
		}
		result = append(result, response)
	}
	return result, nil
}
