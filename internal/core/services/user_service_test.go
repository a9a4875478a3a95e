package services

import (
	"context"
	"testing"

	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewUserService(repositories.NewMemberRepository(db))
	ctx := context.Background()

	profile, err := svc.Profile(ctx, f.Member.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Member.Email, profile.Email)
	assert.Equal(t, "USER", profile.Role)
	assert.True(t, profile.VIP)

	_, err = svc.Profile(ctx, 99999)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}
