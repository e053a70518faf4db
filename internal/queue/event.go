// Package queue publishes store change events over the message broker and
// hosts the background consumer that turns them into an activity log.
// Every repository mutation results in one ChangeEvent, decoupled from any
// particular UI binding: consumers can drive re-renders, notifications or
// plain logging without polling the stores.
package queue

// ChangeEvent describes one completed store mutation.  It carries enough
// for downstream consumers to react without reading the snapshots.
type ChangeEvent struct {
	Entity     string `json:"entity"` // "ticket" | "log"
	Action     string `json:"action"` // "created" | "updated" | "deleted"
	ID         string `json:"id"`
	OccurredAt string `json:"occurred_at"`
}
