package repository

// Notifier receives a change notification after every successful mutation.
// Repositories publish, they never subscribe; wiring the notification to a
// broker, a websocket or nothing at all is the caller's choice.  A nil
// Notifier disables publishing.
type Notifier interface {
	EntityChanged(entity, action, id string)
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
