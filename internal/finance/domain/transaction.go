package domain

import (
	"time"
)

type Transaction struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Amount     float64   `json:"amount"`
	IsExpense  bool      `json:"is_expense"`
	CategoryID string    `json:"category_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
}

type TransactionRepository interface {
	Save(transaction Transaction) error
	// FindByUser returns the user's transactions ordered by date, most recent first.
	FindByUser(userID string) ([]Transaction, error)
}
