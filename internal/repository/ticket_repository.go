package repository // repository owns the persisted collections and their queries

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"oshilog/internal/model"
	"oshilog/internal/storage"
)

// TicketStorageKey is the fixed key the ticket snapshot lives under.  The
// name is kept compatible with the blobs the original tracker wrote.
const TicketStorageKey = "oshigoto-tickets"

// TicketRepo owns the ticket collection.  The whole collection is held in
// memory, ordered most-recent-first, and serialized as one JSON snapshot
// after every mutation.  Lookups that find nothing return (nil, false);
// mutations targeting an unknown id are silent no-ops; the repo never
// reports "not found".
type TicketRepo struct {
	mu       sync.Mutex
	kv       storage.KV
	notifier Notifier
	tickets  []model.Ticket
}

// NewTicketRepo loads the snapshot once and returns the repo.  A malformed
// blob is treated as an empty collection: this is non-critical personal
// data, so the parse failure is logged and swallowed rather than surfaced.
func NewTicketRepo(ctx context.Context, kv storage.KV, n Notifier) (*TicketRepo, error) {
	r := &TicketRepo{kv: kv, notifier: n}
	blob, ok, err := kv.GetItem(ctx, TicketStorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(blob), &r.tickets); err != nil {
			log.Printf("ticket-repo: failed to parse snapshot, starting empty: %v", err)
			r.tickets = nil
		}
	}
	return r, nil
}

// persist serializes the whole collection and overwrites the snapshot key.
// Callers hold the mutex.
func (r *TicketRepo) persist(ctx context.Context) error {
	blob, err := json.Marshal(r.tickets)
	if err != nil {
		return err
	}
	return r.kv.SetItem(ctx, TicketStorageKey, string(blob))
}

func (r *TicketRepo) notify(action, id string) {
	if r.notifier != nil {
		r.notifier.EntityChanged("ticket", action, id)
	}
}

// TicketData carries the caller-supplied fields of a ticket.  Id and
// timestamps are always assigned by the repo.
type TicketData struct {
	Title    string
	Status   model.TicketStatus
	Dates    model.TicketDates
	Venue    string
	SeatInfo string
	Memo     string
}

// Add assigns a fresh id and timestamps, prepends the ticket (most-recent-
// first ordering is a user-visible property) and persists.  It returns the
// created record.
func (r *TicketRepo) Add(ctx context.Context, data TicketData) (model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Format(time.RFC3339)
	t := model.Ticket{
		ID:        uuid.NewString(),
		Title:     data.Title,
		Status:    data.Status,
		Dates:     data.Dates,
		Venue:     data.Venue,
		SeatInfo:  data.SeatInfo,
		Memo:      data.Memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tickets = append([]model.Ticket{t}, r.tickets...)
	if err := r.persist(ctx); err != nil {
		return model.Ticket{}, err
	}
	r.notify(ActionCreated, t.ID)
	return t, nil
}

// Update replaces every caller-editable field of the matching ticket,
// keeping id and createdAt and refreshing updatedAt.  Unknown ids are a
// silent no-op.
func (r *TicketRepo) Update(ctx context.Context, id string, data TicketData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID != id {
			continue
		}
		t := &r.tickets[i]
		t.Title = data.Title
		t.Status = data.Status
		t.Dates = data.Dates
		t.Venue = data.Venue
		t.SeatInfo = data.SeatInfo
		t.Memo = data.Memo
		t.UpdatedAt = time.Now().Format(time.RFC3339)
		if err := r.persist(ctx); err != nil {
			return err
		}
		r.notify(ActionUpdated, id)
		return nil
	}
	return nil
}

// UpdateStatus touches only status and updatedAt.  Status changes happen
// far more often than full edits, hence the dedicated mutation.
func (r *TicketRepo) UpdateStatus(ctx context.Context, id string, status model.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID != id {
			continue
		}
		r.tickets[i].Status = status
		r.tickets[i].UpdatedAt = time.Now().Format(time.RFC3339)
		if err := r.persist(ctx); err != nil {
			return err
		}
		r.notify(ActionUpdated, id)
		return nil
	}
	return nil
}

// Delete removes the matching ticket; unknown ids are a silent no-op.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tickets {
		if r.tickets[i].ID != id {
			continue
		}
		r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
		if err := r.persist(ctx); err != nil {
			return err
		}
		r.notify(ActionDeleted, id)
		return nil
	}
	return nil
}

// All returns a copy of the collection in most-recent-first order.
func (r *TicketRepo) All() []model.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out
}

// GetByID returns the matching ticket, or (zero, false) when absent.
func (r *TicketRepo) GetByID(id string) (model.Ticket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return model.Ticket{}, false
}

// GetByStatus returns the tickets currently in the given status,
// preserving collection order.
func (r *TicketRepo) GetByStatus(status model.TicketStatus) []model.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Ticket
	for _, t := range r.tickets {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// GetInDateRange returns tickets where any non-empty date field falls
// within [startDate, endDate] inclusive.  Only the date portion is
// compared; time of day is stripped.
func (r *TicketRepo) GetInDateRange(startDate, endDate string) []model.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Ticket
	for _, t := range r.tickets {
		for _, d := range t.Dates.All() {
			day := model.DatePart(d)
			if day >= startDate && day <= endDate {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// GetEventsForDate returns tickets with an event touching the given date:
// the date falls inside [applicationStart, applicationEnd] (both bounds
// must be present), or equals the date portion of resultDate,
// paymentDeadline, ticketIssueDate or showDate.
func (r *TicketRepo) GetEventsForDate(date string) []model.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Ticket
	for _, t := range r.tickets {
		if ticketTouchesDate(t, date) {
			out = append(out, t)
		}
	}
	return out
}

func ticketTouchesDate(t model.Ticket, date string) bool {
	d := t.Dates
	if d.ApplicationStart != "" && d.ApplicationEnd != "" &&
		date >= d.ApplicationStart && date <= d.ApplicationEnd {
		return true
	}
	for _, v := range []string{d.ResultDate, d.PaymentDeadline, d.TicketIssueDate, d.ShowDate} {
		if v != "" && model.DatePart(v) == date {
			return true
		}
	}
	return false
}
