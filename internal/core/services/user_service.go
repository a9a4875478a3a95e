package services

import (
	"context"
	"errors"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/core/domain"

	"gorm.io/gorm"
)

// UserService handles member profile lookups
type UserService struct {
	memberRepo repositories.MemberRepository
}

// NewUserService creates a new user service
func NewUserService(memberRepo repositories.MemberRepository) *UserService {
	return &UserService{memberRepo: memberRepo}
}

// Profile returns the member behind the token's subject. The member may
// have been removed after the token was issued.
func (s *UserService) Profile(ctx context.Context, memberID uint) (*models.MemberResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member.ToResponse(), nil
}
