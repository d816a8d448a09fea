package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// JWTService is a testify mock of auth.JWTService.
type JWTService struct {
	mock.Mock
}

var _ auth.JWTService = (*JWTService)(nil)

func (m *JWTService) GenerateToken(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error) {
	args := m.Called(ctx, userID, isAdmin)
	return args.String(0), args.Error(1)
}

func (m *JWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	claims, _ := args.Get(0).(*auth.Claims)
	return claims, args.Error(1)
}
