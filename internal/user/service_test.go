package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users     []*User
	createErr error
}

func (m *mockRepository) createUser(user *User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user-1"
	m.users = append(m.users, user)
	return nil
}

func (m *mockRepository) getUserByUsername(username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	err := service.Register("newuser", "newuser@example.com", "strongpassword123")
	assert.NoError(t, err)

	stored, err := service.FindByUsername("newuser")
	assert.NoError(t, err)
	assert.NotEqual(t, "strongpassword123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("strongpassword123")))
}

func TestRegister_InvalidEmail(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	err := service.Register("newuser", "not-an-email", "strongpassword123")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Empty(t, repo.users)
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := &mockRepository{createErr: ErrUsernameTaken}
	service := NewUserService(repo)

	err := service.Register("newuser", "newuser@example.com", "strongpassword123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &mockRepository{createErr: ErrEmailTaken}
	service := NewUserService(repo)

	err := service.Register("newuser", "newuser@example.com", "strongpassword123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_UnknownStoreFailureIsCoalesced(t *testing.T) {
	repo := &mockRepository{createErr: errors.New("connection reset")}
	service := NewUserService(repo)

	err := service.Register("newuser", "newuser@example.com", "strongpassword123")
	assert.ErrorIs(t, err, ErrInternalError)
}

func TestFindByUsername_Absent(t *testing.T) {
	service := NewUserService(&mockRepository{})

	found, err := service.FindByUsername("ghost")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
