package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
	"github.com/spfm/backend/internal/finance/infrastructure"
)

func TestCreateCategory_DuplicateNameSameUser(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	err := service.CreateCategory("Groceries", "user-a")
	assert.NoError(t, err)

	err = service.CreateCategory("Groceries", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryExists)
	assert.Equal(t, 1, len(repo.Categories))
}

func TestCreateCategory_SameNameDifferentUser(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	assert.NoError(t, service.CreateCategory("Groceries", "user-a"))
	assert.NoError(t, service.CreateCategory("Groceries", "user-b"))
	assert.Equal(t, 2, len(repo.Categories))
}

// racingCategoryRepo lets the pre-check miss while the insert still hits the
// unique index, the window two concurrent creates can fall into.
type racingCategoryRepo struct {
	*infrastructure.MockCategoryRepository
}

func (r *racingCategoryRepo) ExistsByNameAndUser(name, userID string) (bool, error) {
	return false, nil
}

func TestCreateCategory_RaceCaughtByUniqueIndex(t *testing.T) {
	repo := &racingCategoryRepo{&infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-a"}},
	}}
	service := NewCategoryService(repo)

	err := service.CreateCategory("Groceries", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryExists)
}

func TestCreateCategory_StoreFailureIsWrapped(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{FailWith: errors.New("connection reset")}
	service := NewCategoryService(repo)

	err := service.CreateCategory("Groceries", "user-a")
	assert.True(t, financeErrors.IsUnexpectedStoreError(err))
	assert.Equal(t, "unexpected store error", err.Error())
}

func TestGetUserCategories_NeverNil(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	categories, err := service.GetUserCategories("user-a")
	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestUpdateCategory_NameUsedByOtherCategorySameUser(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "cat-1", Name: "Groceries", UserID: "user-a"},
			{ID: "cat-2", Name: "Rent", UserID: "user-a"},
		},
	}
	service := NewCategoryService(repo)

	err := service.UpdateCategory("cat-2", "Groceries", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryExists)
}

func TestUpdateCategory_KeepingOwnNameIsAllowed(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-a"}},
	}
	service := NewCategoryService(repo)

	err := service.UpdateCategory("cat-1", "Groceries", "user-a")
	assert.NoError(t, err)
}

func TestUpdateCategory_NameUsedByOtherUserIsAllowed(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: "cat-1", Name: "Groceries", UserID: "user-b"},
			{ID: "cat-2", Name: "Rent", UserID: "user-a"},
		},
	}
	service := NewCategoryService(repo)

	err := service.UpdateCategory("cat-2", "Groceries", "user-a")
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", repo.Categories[1].Name)
}

func TestUpdateCategory_OtherUsersCategoryLooksMissing(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-b"}},
	}
	service := NewCategoryService(repo)

	err := service.UpdateCategory("cat-1", "Food", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)

	err = service.UpdateCategory("no-such-id", "Food", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestDeleteCategory_OtherUsersCategoryLooksMissing(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-b"}},
	}
	service := NewCategoryService(repo)

	err := service.DeleteCategory("cat-1", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
	assert.Equal(t, 1, len(repo.Categories))
}

func TestDeleteCategory_ReferencedByTransactions(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories:    []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-a"}},
		ReferencedIDs: map[string]bool{"cat-1": true},
	}
	service := NewCategoryService(repo)

	err := service.DeleteCategory("cat-1", "user-a")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryInUse)
}

func TestDeleteCategory_Success(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: "cat-1", Name: "Groceries", UserID: "user-a"}},
	}
	service := NewCategoryService(repo)

	assert.NoError(t, service.DeleteCategory("cat-1", "user-a"))
	assert.Empty(t, repo.Categories)
}
