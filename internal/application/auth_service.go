package application

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	repo "github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
	"github.com/Uzma-Jawed/read-n-quote-app/pkg/helpers"
)

// Reason strings are shown to the user verbatim, so they keep the exact
// wording the journal has always used.
var (
	ErrUsernameEmpty     = errors.New("Username cannot be empty")
	ErrPasswordEmpty     = errors.New("Password cannot be empty")
	ErrUsernameTaken     = errors.New("Username already exists")
	ErrUsernameNotFound  = errors.New("Username not found")
	ErrIncorrectPassword = errors.New("Incorrect password")
)

// AuthService handles registration and login. Passwords are stored and
// compared as exact plaintext strings; that is the persisted contract and
// is a known security gap, deliberately left visible rather than silently
// hardened. There is likewise no rate limiting and no server-side session
// revocation by default.
type AuthService struct {
	Users  repo.UserRepository
	Books  repo.BookRepository
	Quotes repo.QuoteRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, books repo.BookRepository, quotes repo.QuoteRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Books: books, Quotes: quotes, JWT: jwt, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Register creates the user and initializes empty book and quote
// sub-collections for the username across both documents.
func (s *AuthService) Register(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameEmpty
	}
	if strings.TrimSpace(password) == "" {
		return ErrPasswordEmpty
	}
	exists, err := s.Users.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	if err := s.Users.Create(&entity.User{Username: username, Password: password}); err != nil {
		return err
	}
	if err := s.Books.InitUser(username); err != nil {
		return err
	}
	if err := s.Quotes.InitUser(username); err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("user registered")
	}
	return nil
}

// Login validates the credentials and issues a token pair whose claims
// carry the authenticated username.
func (s *AuthService) Login(username, password string) (TokenPair, error) {
	u, err := s.Users.GetByUsername(username)
	if err != nil {
		return TokenPair{}, ErrUsernameNotFound
	}
	if u.Password != password {
		return TokenPair{}, ErrIncorrectPassword
	}
	return s.issueTokens(username)
}

// Refresh rotates the token pair for a valid refresh token.
func (s *AuthService) Refresh(refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", err
	}
	if _, err := s.Users.GetByUsername(claims.Username); err != nil {
		return TokenPair{}, "", ErrUsernameNotFound
	}
	pair, err := s.issueTokens(claims.Username)
	return pair, claims.Username, err
}

func (s *AuthService) issueTokens(username string) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}
