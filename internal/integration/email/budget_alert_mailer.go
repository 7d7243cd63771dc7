package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/integration/email/templates"
)

const dateLayout = "2006-01-02"

// BudgetAlertMailer emails the budget owner when a budget is exceeded.
type BudgetAlertMailer struct {
	users      adapter.UserRepository
	sender     adapter.EmailSender
	renderer   *templates.Renderer
	appBaseURL string
}

// NewBudgetAlertMailer creates a new BudgetAlertMailer.
func NewBudgetAlertMailer(
	users adapter.UserRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	appBaseURL string,
) *BudgetAlertMailer {
	return &BudgetAlertMailer{
		users:      users,
		sender:     sender,
		renderer:   renderer,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// NotifyBudgetExceeded renders and sends the alert to the budget owner.
func (m *BudgetAlertMailer) NotifyBudgetExceeded(ctx context.Context, alert adapter.BudgetAlert) error {
	user, err := m.users.FindByID(ctx, alert.UserID)
	if err != nil {
		return fmt.Errorf("failed to load alert recipient: %w", err)
	}

	data := templates.BudgetExceededData{
		UserName:     user.FullName,
		BudgetName:   alert.BudgetName,
		Amount:       alert.Amount.StringFixed(2),
		SpentAmount:  alert.SpentAmount.StringFixed(2),
		Overspent:    alert.SpentAmount.Sub(alert.Amount).StringFixed(2),
		StartDate:    alert.StartDate.Format(dateLayout),
		EndDate:      alert.EndDate.Format(dateLayout),
		DashboardURL: m.appBaseURL + "/budgets",
	}

	content, err := m.renderer.Render(templates.TemplateBudgetExceeded, data)
	if err != nil {
		return err
	}

	_, err = m.sender.Send(ctx, adapter.OutboundEmail{
		To:      user.Email,
		Name:    user.FullName,
		Subject: fmt.Sprintf("Budget exceeded: %s", alert.BudgetName),
		HTML:    content.HTML,
		Text:    content.Text,
		Tags:    map[string]string{"kind": templates.TemplateBudgetExceeded},
	})
	if err != nil {
		return fmt.Errorf("failed to send budget alert: %w", err)
	}
	return nil
}

var _ adapter.BudgetAlertNotifier = (*BudgetAlertMailer)(nil)

// Name identifies the notifier in logs.
func (m *BudgetAlertMailer) Name() string { return "email" }
