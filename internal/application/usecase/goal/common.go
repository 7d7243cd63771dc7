// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// now is swapped in tests.
var now = time.Now

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// findOwnedGoal loads a goal and hides goals owned by someone else.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, userID, id uuid.UUID) (*entity.Goal, error) {
	g, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	if g.UserID != userID {
		return nil, goalNotFound()
	}
	return g, nil
}

func ensureUniqueName(ctx context.Context, repo adapter.GoalRepository, userID uuid.UUID, name string, excludeID uuid.UUID) error {
	exists, err := repo.ExistsByName(ctx, userID, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check goal name: %w", err)
	}
	if exists {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameExists,
			"goal with this name already exists",
			domainerror.ErrGoalNameExists,
		)
	}
	return nil
}

func withProgress(g *entity.Goal) *entity.GoalWithProgress {
	return entity.NewGoalWithProgress(g, now())
}
