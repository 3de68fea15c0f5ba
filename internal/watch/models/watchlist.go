package models

import "github.com/google/uuid"

// TriggerAction is what happens when a watched event fires.
// Values other than the declared constants are kept verbatim.
type TriggerAction string

const (
	SendEmail TriggerAction = "email"
)

// User is a subscriber owning watch lists.
type User struct {
	ID    uuid.UUID
	Email string
}

// WatchListTrigger binds an event kind to an action. A watch list may hold the
// same event several times with different actions.
type WatchListTrigger struct {
	Event  EventAction
	Action TriggerAction
}

// WatchList is one subscriber's interest in a set of event kinds.
type WatchList struct {
	Token    string
	Owner    User
	Triggers []WatchListTrigger
}
