// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them.
package queue

// Actions carried by FeatureActivityEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// FeatureActivityEvent is published whenever a feature is created, updated
// or deleted. It carries enough context for downstream consumers to log or
// notify without querying the store.
type FeatureActivityEvent struct {
	Action     string `json:"action"`
	FeatureID  uint64 `json:"feature_id"`
	Title      string `json:"title"`
	TotalScore int    `json:"total_score"`
	ActorID    uint64 `json:"actor_id"`
	OccurredAt string `json:"occurred_at"`
}
