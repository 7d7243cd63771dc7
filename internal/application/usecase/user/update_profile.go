package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/application/validation"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// UpdateProfileInput represents a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID `json:"-"`
	FullName *string   `json:"fullName" validate:"omitnil,min=2,max=100,fullname"`
	Sex      *string   `json:"sex" validate:"omitnil,oneof=male female other"`
	Age      *int      `json:"age" validate:"omitnil,gte=18,lte=120"`
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase edits the caller's profile.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo}
}

// Execute applies the provided profile fields.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input.FullName != nil {
		trimmed := strings.TrimSpace(*input.FullName)
		input.FullName = &trimmed
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	u, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		u.FullName = *input.FullName
	}
	if input.Sex != nil {
		u.Sex = entity.Sex(*input.Sex)
	}
	if input.Age != nil {
		u.Age = *input.Age
	}
	u.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return nil, domainerror.NewUserError(domainerror.ErrCodeUserUpdateFailed, "failed to update profile", err)
	}

	return &UpdateProfileOutput{User: u}, nil
}
