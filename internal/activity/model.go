package activity

import "time"

// EventType categorizes a ledger-affecting event
type EventType string

const (
	EventExpenseCreated     EventType = "EXPENSE_CREATED"
	EventExpenseDeleted     EventType = "EXPENSE_DELETED"
	EventSettlementRecorded EventType = "SETTLEMENT_RECORDED"
)

// Event is one append-only audit record for a project. Events are written
// inside the same transaction as the mutation they describe, so the feed
// can never show an operation that rolled back.
type Event struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	ActorID   int64     `json:"actor_id"`
	Type      EventType `json:"type"`
	RefID     int64     `json:"ref_id"` // id of the expense or settlement
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
