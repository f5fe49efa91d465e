package infrastructure

import (
	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

// MockCategoryRepository is an in-memory stand-in that mirrors the constraint
// behavior of the real store: the unique index on (name, user_id) and the
// RESTRICT foreign key from transactions.
type MockCategoryRepository struct {
	Categories    []domain.Category
	ReferencedIDs map[string]bool
	FailWith      error
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for _, c := range m.Categories {
		if c.Name == category.Name && c.UserID == category.UserID {
			return financeErrors.ErrCategoryExists
		}
	}
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var categories []domain.Category
	for _, c := range m.Categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) ExistsByNameAndUser(name, userID string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	for _, c := range m.Categories {
		if c.Name == name && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) ExistsByNameAndUserExcluding(name, userID, excludedID string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	for _, c := range m.Categories {
		if c.Name == name && c.UserID == userID && c.ID != excludedID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) ExistsByIDAndUser(categoryID, userID string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	for _, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) UpdateName(categoryID, name, userID string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			m.Categories[i].Name = name
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(categoryID, userID string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	for i, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			if m.ReferencedIDs[categoryID] {
				return financeErrors.ErrCategoryInUse
			}
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}
