// Package auth implements registration, login and JWT authentication.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cashfy/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// UserIDKey is the gin context key the authenticated user id is stored under.
const UserIDKey = "cashfy-user-id"

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("the email address or password is not correct")
	ErrPasswordTooShort   = fmt.Errorf("the password must have at least %d characters", MinPasswordLength)
	ErrTokenMissing       = errors.New("the request has no bearer token")
	ErrTokenInvalid       = errors.New("the token is invalid or expired")
)

// Service issues and verifies tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Token is the response to a successful login.
type Token struct {
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time    `json:"expiresAt" example:"2024-07-04T12:00:00Z"`
	User      *models.User `json:"user"`
}

// Register creates a new user.
func (s *Service) Register(ctx context.Context, email, name, password string) (models.User, error) {
	if len(password) < MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}

	err = models.DB.WithContext(ctx).Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("user", user.ID.String()).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	var user models.User
	err := models.DB.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return Token{}, ErrInvalidCredentials
	} else if err != nil {
		return Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Token{}, ErrInvalidCredentials
	}

	expires := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return Token{Token: signed, ExpiresAt: expires, User: &user}, nil
}

// Verify parses the token and returns the id of the user.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return id, nil
}

// Middleware aborts requests without a valid bearer token. For valid
// tokens, the user id is stored in the context under UserIDKey.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(c, ErrTokenMissing)
			return
		}

		id, err := s.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Msg("rejected token")
			abort(c, ErrTokenInvalid)
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	e := err.Error()
	c.AbortWithStatusJSON(http.StatusUnauthorized, struct {
		Error *string `json:"error"`
	}{&e})
}

// UserID returns the id of the authenticated user.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil
	}

	return id.(uuid.UUID)
}
