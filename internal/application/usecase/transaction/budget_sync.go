// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

// syncBudgets applies each planned adjustment to the user's tracked budgets covering
// its date. It must run inside the unit of work that writes the transaction. It returns
// the budgets that are exceeded after the whole plan but were not before it, so a
// reversal followed by a re-application never reports the same budget twice.
func syncBudgets(
	ctx context.Context,
	budgets adapter.BudgetRepository,
	userID uuid.UUID,
	plan []entity.SpendAdjustment,
) ([]*entity.Budget, error) {
	var (
		initial = map[uuid.UUID]entity.BudgetStatus{}
		latest  = map[uuid.UUID]*entity.Budget{}
		order   []uuid.UUID
	)

	for _, adj := range plan {
		covering, err := budgets.FindTrackedCovering(ctx, userID, adj.Date)
		if err != nil {
			return nil, budgetSyncError(fmt.Errorf("failed to find budgets covering %s: %w", adj.Date.Format(time.DateOnly), err))
		}

		for _, b := range covering {
			if _, seen := initial[b.ID]; !seen {
				initial[b.ID] = b.Status
				order = append(order, b.ID)
			}

			change := b.ApplySpendDelta(adj.Delta)
			if change.Clamped {
				// A clamp means more was reversed than was ever credited, which points
				// to a reversal being applied twice.
				slog.WarnContext(ctx, "Budget spent amount clamped at zero",
					"budget_id", b.ID,
					"user_id", userID,
					"delta", adj.Delta.String(),
					"previous_spent", change.Previous.String(),
				)
			}

			if err := budgets.UpdateSpending(ctx, b); err != nil {
				return nil, budgetSyncError(fmt.Errorf("failed to update budget %s: %w", b.ID, err))
			}
			latest[b.ID] = b
		}
	}

	var exceeded []*entity.Budget
	for _, id := range order {
		if initial[id] != entity.BudgetStatusExceeded && latest[id].Status == entity.BudgetStatusExceeded {
			exceeded = append(exceeded, latest[id])
		}
	}
	return exceeded, nil
}

func budgetSyncError(err error) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeBudgetSyncFailed,
		domainerror.ErrBudgetSyncFailed.Error(),
		err,
	)
}

// notifyExceeded hands freshly exceeded budgets to the notifier. Delivery is
// best-effort and only logged on failure.
func notifyExceeded(ctx context.Context, notifier adapter.BudgetAlertNotifier, exceeded []*entity.Budget) {
	if notifier == nil {
		return
	}
	for _, b := range exceeded {
		alert := adapter.BudgetAlert{
			UserID:      b.UserID,
			BudgetID:    b.ID,
			BudgetName:  b.Name,
			Amount:      b.Amount,
			SpentAmount: b.SpentAmount,
			StartDate:   b.StartDate,
			EndDate:     b.EndDate,
			OccurredAt:  time.Now().UTC(),
		}
		if err := notifier.NotifyBudgetExceeded(ctx, alert); err != nil {
			slog.WarnContext(ctx, "Failed to deliver budget alert", "budget_id", b.ID, "error", err)
		}
	}
}
