package services

import (
	"context"
	"errors"
	"log"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/config"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/jwt"
	"shop-orders/internal/pkg/password"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// validate checks the `validate` tags on service inputs
var validate = validator.New()

// AuthService handles authentication business logic
type AuthService struct {
	memberRepo repositories.MemberRepository
	cfg        *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(memberRepo repositories.MemberRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string                 `json:"token"`
	User  *models.MemberResponse `json:"user"`
}

// Login authenticates a member and issues a self-contained access token.
// Unknown email and wrong password surface the same error so callers
// cannot probe which one failed.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidInput
	}

	// 1. Find member by email
	member, err := s.memberRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, member.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Generate token (identity and role travel inside it)
	role := domain.ParseRole(member.Role)
	token, err := jwt.GenerateAccessToken(
		member.ID,
		member.Email,
		member.Name,
		role.String(),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Member logged in: %s", member.Email)

	return &AuthResponse{
		Token: token,
		User:  member.ToResponse(),
	}, nil
}
