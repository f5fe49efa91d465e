package infrastructure

import (
	"database/sql"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, title, amount, is_expense, category_id, user_id, date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.Title, transaction.Amount, transaction.IsExpense,
		transaction.CategoryID, transaction.UserID, transaction.Date,
	)
	if isForeignKeyViolation(err) {
		return financeErrors.ErrCategoryNotFound
	}
	return err
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT id, title, amount, is_expense, category_id, user_id, date
        FROM transactions WHERE user_id = $1 ORDER BY date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.Title, &transaction.Amount, &transaction.IsExpense,
			&transaction.CategoryID, &transaction.UserID, &transaction.Date); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
