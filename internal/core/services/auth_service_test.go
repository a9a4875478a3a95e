package services

import (
	"context"
	"testing"

	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/config"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *fixture) {
	t.Helper()

	db := newTestDB(t)
	f := seedFixture(t, db)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenMins: 60},
	}
	return NewAuthService(repositories.NewMemberRepository(db), cfg), f
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, f := newAuthService(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Email:    f.Admin.Email,
		Password: "admin-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	assert.Equal(t, "ADMIN", result.User.Role)
	assert.Equal(t, f.Admin.Email, result.User.Email)

	claims, err := jwt.ValidateAccessToken(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, f.Admin.ID, claims.MemberID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, f.Admin.Email, claims.Email)
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	svc, f := newAuthService(t)
	ctx := context.Background()

	_, errWrongPassword := svc.Login(ctx, &LoginInput{Email: f.Admin.Email, Password: "nope"})
	_, errUnknownEmail := svc.Login(ctx, &LoginInput{Email: "ghost@example.com", Password: "nope"})

	assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

func TestLoginValidatesInput(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Login(context.Background(), &LoginInput{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
