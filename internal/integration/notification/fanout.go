// Package notification combines the optional budget alert channels.
package notification

import (
	"context"
	"errors"
	"log/slog"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

// Fanout delivers each alert to every configured notifier.
type Fanout struct {
	notifiers []adapter.BudgetAlertNotifier
}

// NewFanout builds a notifier from the non-nil notifiers. It returns nil when none
// are configured, which callers treat as alerts disabled.
func NewFanout(notifiers ...adapter.BudgetAlertNotifier) adapter.BudgetAlertNotifier {
	active := make([]adapter.BudgetAlertNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return &Fanout{notifiers: active}
}

// NotifyBudgetExceeded calls every notifier even when one fails and joins the errors.
func (f *Fanout) NotifyBudgetExceeded(ctx context.Context, alert adapter.BudgetAlert) error {
	var errs []error
	for _, n := range f.notifiers {
		if err := n.NotifyBudgetExceeded(ctx, alert); err != nil {
			slog.WarnContext(ctx, "Budget alert delivery failed",
				"budget_id", alert.BudgetID,
				"notifier", notifierName(n),
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func notifierName(n adapter.BudgetAlertNotifier) string {
	if named, ok := n.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unnamed"
}
