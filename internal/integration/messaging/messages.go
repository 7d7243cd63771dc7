package messaging

import (
	"encoding/json"
	"time"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

// EventBudgetExceeded is the event type carried in the AMQP message type property.
const EventBudgetExceeded = "budget.exceeded"

// BudgetExceededMessage is the JSON body published when a budget is exceeded.
type BudgetExceededMessage struct {
	Event       string    `json:"event"`
	UserID      string    `json:"user_id"`
	BudgetID    string    `json:"budget_id"`
	BudgetName  string    `json:"budget_name"`
	Amount      string    `json:"amount"`
	SpentAmount string    `json:"spent_amount"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBudgetExceededMessage builds the message for alert.
func NewBudgetExceededMessage(alert adapter.BudgetAlert) *BudgetExceededMessage {
	return &BudgetExceededMessage{
		Event:       EventBudgetExceeded,
		UserID:      alert.UserID.String(),
		BudgetID:    alert.BudgetID.String(),
		BudgetName:  alert.BudgetName,
		Amount:      alert.Amount.StringFixed(2),
		SpentAmount: alert.SpentAmount.StringFixed(2),
		StartDate:   alert.StartDate.Format("2006-01-02"),
		EndDate:     alert.EndDate.Format("2006-01-02"),
		OccurredAt:  alert.OccurredAt,
	}
}

// ToJSON encodes the message.
func (m *BudgetExceededMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
