package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/spfm/backend/internal/user"
)

type mockUserService struct {
	users []*user.User
}

func (m *mockUserService) Register(username, email, password string) error {
	return nil
}

func (m *mockUserService) FindByUsername(username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

type mockJWTManager struct {
	token string
	err   error
}

func (m *mockJWTManager) GenerateAccessJWT(u *user.User, duration time.Duration) (string, error) {
	return m.token, m.err
}

func (m *mockJWTManager) ValidateAccessToken(tokenString string) (string, error) {
	return "", nil
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	userService := &mockUserService{users: []*user.User{{
		ID:           "user-1",
		Username:     "newuser",
		Email:        "newuser@example.com",
		PasswordHash: hashFor(t, "strongpassword123"),
	}}}
	service := NewAuthService(userService, &mockJWTManager{token: "signed-token"})

	token, err := service.Login("newuser", "strongpassword123")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestLogin_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	userService := &mockUserService{users: []*user.User{{
		ID:           "user-1",
		Username:     "newuser",
		PasswordHash: hashFor(t, "strongpassword123"),
	}}}
	service := NewAuthService(userService, &mockJWTManager{token: "signed-token"})

	_, unknownUserErr := service.Login("ghost", "strongpassword123")
	_, wrongPasswordErr := service.Login("newuser", "wrongpassword")

	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	assert.Equal(t, unknownUserErr, wrongPasswordErr)
}

func TestLogin_SigningFailure(t *testing.T) {
	userService := &mockUserService{users: []*user.User{{
		ID:           "user-1",
		Username:     "newuser",
		PasswordHash: hashFor(t, "strongpassword123"),
	}}}
	service := NewAuthService(userService, &mockJWTManager{err: ErrInternalError})

	_, err := service.Login("newuser", "strongpassword123")
	assert.ErrorIs(t, err, ErrInternalError)
}
