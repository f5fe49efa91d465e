package auth

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/spfm/backend/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Login(username, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Login verifies the credentials and returns a signed access token. A missing
// user and a wrong password are reported identically so the response does not
// reveal whether the account exists.
func (s *service) Login(username, password string) (string, error) {
	existingUser, err := s.userService.FindByUsername(username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser, defaultJWTDuration)
	if err != nil {
		return "", ErrInternalError
	}

	return token, nil
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}
