package infrastructure

import (
	"sort"

	"github.com/spfm/backend/internal/finance/domain"
)

// MockTransactionRepository keeps transactions in memory and serves them in
// the same date-descending order as the real store.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
	FindErr      error
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var transactions []domain.Transaction
	for _, t := range m.Transactions {
		if t.UserID == userID {
			transactions = append(transactions, t)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}
