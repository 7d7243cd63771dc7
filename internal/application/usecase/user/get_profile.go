// Package user contains profile use cases for the authenticated user.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the output of reading a profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase loads the caller's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute performs the profile lookup.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	u, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{User: u}, nil
}

func findUser(ctx context.Context, repo adapter.UserRepository, id uuid.UUID) (*entity.User, error) {
	u, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(domainerror.ErrCodeUserNotFound, "user not found", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}
