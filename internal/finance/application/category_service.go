package application

import (
	"errors"

	"github.com/google/uuid"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategory enforces per-user name uniqueness. The pre-check produces the
// friendly error early; the unique index on (name, user_id) catches the race
// between two concurrent creates, and the repository reports it with the same
// sentinel.
func (s *CategoryService) CreateCategory(name, userID string) error {
	exists, err := s.repo.ExistsByNameAndUser(name, userID)
	if err != nil {
		return financeErrors.NewUnexpectedStoreError(err)
	}
	if exists {
		return financeErrors.ErrCategoryExists
	}

	category := domain.Category{
		ID:     uuid.NewString(),
		Name:   name,
		UserID: userID,
	}

	if err := s.repo.Save(category); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryExists) {
			return financeErrors.ErrCategoryExists
		}
		return financeErrors.NewUnexpectedStoreError(err)
	}
	return nil
}

func (s *CategoryService) GetUserCategories(userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewUnexpectedStoreError(err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// UpdateCategory renames the category matched by (categoryID, userID). A
// category owned by another user is reported as not found, identical to a
// nonexistent one.
func (s *CategoryService) UpdateCategory(categoryID, name, userID string) error {
	exists, err := s.repo.ExistsByNameAndUserExcluding(name, userID, categoryID)
	if err != nil {
		return financeErrors.NewUnexpectedStoreError(err)
	}
	if exists {
		return financeErrors.ErrCategoryExists
	}

	if err := s.repo.UpdateName(categoryID, name, userID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) || errors.Is(err, financeErrors.ErrCategoryExists) {
			return err
		}
		return financeErrors.NewUnexpectedStoreError(err)
	}
	return nil
}

func (s *CategoryService) DeleteCategory(categoryID, userID string) error {
	if err := s.repo.Delete(categoryID, userID); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) || errors.Is(err, financeErrors.ErrCategoryInUse) {
			return err
		}
		return financeErrors.NewUnexpectedStoreError(err)
	}
	return nil
}

func (s *CategoryService) DoesUserCategoryExist(categoryID, userID string) (bool, error) {
	return s.repo.ExistsByIDAndUser(categoryID, userID)
}
