package domain

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

type CategoryRepository interface {
	Save(category Category) error
	FindByUser(userID string) ([]Category, error)
	ExistsByNameAndUser(name, userID string) (bool, error)
	// ExistsByNameAndUserExcluding reports whether another category of the same
	// user already carries the name, ignoring the category with excludedID.
	ExistsByNameAndUserExcluding(name, userID, excludedID string) (bool, error)
	ExistsByIDAndUser(categoryID, userID string) (bool, error)
	UpdateName(categoryID, name, userID string) error
	Delete(categoryID, userID string) error
}
