package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pacs/internal"
	userDatamodel "pacs/internal/core/datamodel/user"
)

type Service struct {
	users  UserRepositoryAPI
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(users UserRepositoryAPI, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate verifies the credential pair and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (TokenSchema, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return TokenSchema{}, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	user, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to look up user", "email", dto.Email, "error", err)
		return TokenSchema{}, internal.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return TokenSchema{}, internal.ErrInvalidCredentials
	}

	if !VerifyPassword(dto.Password, user.PasswordHash) {
		return TokenSchema{}, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.Email)
	if err != nil {
		s.logger.Error("failed to issue token", "email", dto.Email, "error", err)
		return TokenSchema{}, internal.NewInternalError("failed to issue token", err)
	}

	return TokenSchema{AccessToken: token, TokenType: internal.TokenType}, nil
}

// ResolvePrincipal validates a bearer token and loads the acting user.
func (s *Service) ResolvePrincipal(tokenString string) (*userDatamodel.User, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(claims.Subject)
	if err != nil {
		s.logger.Error("failed to load principal", "email", claims.Subject, "error", err)
		return nil, internal.NewInternalError("failed to load principal", err)
	}
	if user == nil {
		return nil, internal.ErrInvalidToken
	}
	return user, nil
}

// JWTTokenGenerator signs HS256 tokens with the subject set to the
// principal's email.
type JWTTokenGenerator struct {
	key    []byte
	expiry time.Duration
}

func NewJWTTokenGenerator(key string, expiry time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		key:    []byte(key),
		expiry: expiry,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.key)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}
