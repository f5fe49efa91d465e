package user

import (
	"errors"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var (
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrInternalError = errors.New("internal server error")
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Service interface {
	Register(username, email, password string) error
	FindByUsername(username string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

// Register persists a new user. Username and email uniqueness is enforced by
// the store's unique indexes, not pre-checked, so two concurrent registrations
// cannot both slip through.
func (s *service) Register(username, email, password string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return ErrInternalError
	}

	newUser := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = s.repo.createUser(newUser)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return err
		}
		return ErrInternalError
	}

	return nil
}

// FindByUsername reports absence with ErrUserNotFound rather than inventing
// an error of its own; callers decide what a missing user means.
func (s *service) FindByUsername(username string) (*User, error) {
	return s.repo.getUserByUsername(username)
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
