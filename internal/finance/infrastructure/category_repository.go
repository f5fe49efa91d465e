package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spfm/backend/internal/finance/domain"
	financeErrors "github.com/spfm/backend/internal/finance/errors"
)

// PostgreSQL error codes for constraint violations.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, user_id) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.UserID,
	)
	if isUniqueViolation(err) {
		return financeErrors.ErrCategoryExists
	}
	return err
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, user_id FROM categories WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.UserID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) ExistsByNameAndUser(name, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, name, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) ExistsByNameAndUserExcluding(name, userID, excludedID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1 AND user_id = $2 AND id <> $3)"
	err := r.db.QueryRow(query, name, userID, excludedID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) ExistsByIDAndUser(categoryID, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRow(query, categoryID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) UpdateName(categoryID, name, userID string) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $2 WHERE id = $1 AND user_id = $3`,
		categoryID, name, userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return financeErrors.ErrCategoryExists
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return financeErrors.ErrCategoryInUse
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCategoryNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
