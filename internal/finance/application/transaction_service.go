package application

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesUserCategoryExist(categoryID, userID string) (bool, error)
}

type TransactionService struct {
	repo            domain.TransactionRepository
	categoryService CategoryServiceInterface
}

func NewTransactionService(repo domain.TransactionRepository, categoryService CategoryServiceInterface) *TransactionService {
	return &TransactionService{repo: repo, categoryService: categoryService}
}

// CreateTransaction inserts a dated monetary event. The referenced category
// must exist and belong to the same user; the foreign key backs the pre-check
// up, so a category deleted between the check and the insert still surfaces as
// ErrCategoryNotFound.
func (s *TransactionService) CreateTransaction(title string, amount float64, isExpense bool, categoryID, date, userID string) error {
	exists, err := s.categoryService.DoesUserCategoryExist(categoryID, userID)
	if err != nil {
		return financeErrors.NewUnexpectedStoreError(err)
	}
	if !exists {
		return financeErrors.ErrCategoryNotFound
	}

	parsedDate, err := parseTransactionDate(date)
	if err != nil {
		return financeErrors.ErrInvalidDate
	}

	transaction := domain.Transaction{
		ID:         uuid.NewString(),
		Title:      title,
		Amount:     amount,
		IsExpense:  isExpense,
		CategoryID: categoryID,
		UserID:     userID,
		Date:       parsedDate,
	}

	if err := s.repo.Save(transaction); err != nil {
		if errors.Is(err, financeErrors.ErrCategoryNotFound) {
			return financeErrors.ErrCategoryNotFound
		}
		return financeErrors.NewUnexpectedStoreError(err)
	}
	return nil
}

func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, financeErrors.NewUnexpectedStoreError(err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func parseTransactionDate(date string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, date)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", date)
}
