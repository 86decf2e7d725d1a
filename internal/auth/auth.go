package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	userDatamodel "pacs/internal/core/datamodel/user"
)

// UserRepositoryAPI is the slice of the user store the authentication
// flow needs: principal lookup by email.
type UserRepositoryAPI interface {
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(email string) (*userDatamodel.User, error)
}

// TokenGeneratorAPI issues and validates bearer credentials.
type TokenGeneratorAPI interface {
	GenerateAccessToken(email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	jwt.RegisteredClaims
}

type ctxKey string

const contextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*userDatamodel.User, bool) {
	u, ok := ctx.Value(contextUserKey).(*userDatamodel.User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *userDatamodel.User) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}
