package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"oshilog/internal/model"
	"oshilog/internal/storage"
)

// LogStorageKey is the fixed key the visit-log snapshot lives under.
const LogStorageKey = "oshigoto-logs"

// LogRepo owns the seat-visit log collection with the same persistence
// discipline as TicketRepo: full-snapshot overwrite on every mutation,
// most-recent-first ordering.  Uniqueness per seat is not enforced; see
// GetBySeatID and GetAllBySeatID.
type LogRepo struct {
	mu       sync.Mutex
	kv       storage.KV
	notifier Notifier
	logs     []model.Log
}

// NewLogRepo loads the snapshot once; a malformed blob is logged and
// treated as an empty collection.
func NewLogRepo(ctx context.Context, kv storage.KV, n Notifier) (*LogRepo, error) {
	r := &LogRepo{kv: kv, notifier: n}
	blob, ok, err := kv.GetItem(ctx, LogStorageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(blob), &r.logs); err != nil {
			log.Printf("log-repo: failed to parse snapshot, starting empty: %v", err)
			r.logs = nil
		}
	}
	return r, nil
}

func (r *LogRepo) persist(ctx context.Context) error {
	blob, err := json.Marshal(r.logs)
	if err != nil {
		return err
	}
	return r.kv.SetItem(ctx, LogStorageKey, string(blob))
}

func (r *LogRepo) notify(action, id string) {
	if r.notifier != nil {
		r.notifier.EntityChanged("log", action, id)
	}
}

// LogData carries the caller-supplied fields of a log; the id is always
// assigned by the repo.
type LogData struct {
	SeatID   string
	Title    string
	Date     string
	ShowTime string
	TimeType model.TimeType
	Theater  string
	Memo     string
}

func (d LogData) toLog(id string) model.Log {
	return model.Log{
		ID:       id,
		SeatID:   d.SeatID,
		Title:    d.Title,
		Date:     d.Date,
		ShowTime: d.ShowTime,
		TimeType: d.TimeType,
		Theater:  d.Theater,
		Memo:     d.Memo,
	}
}

// Add assigns a fresh id, prepends and persists.
func (r *LogRepo) Add(ctx context.Context, data LogData) (model.Log, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := data.toLog(uuid.NewString())
	r.logs = append([]model.Log{l}, r.logs...)
	if err := r.persist(ctx); err != nil {
		return model.Log{}, err
	}
	r.notify(ActionCreated, l.ID)
	return l, nil
}

// Update fully replaces the fields of the matching log, keeping its id.
// Unknown ids are a silent no-op.
func (r *LogRepo) Update(ctx context.Context, id string, data LogData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.logs {
		if r.logs[i].ID != id {
			continue
		}
		r.logs[i] = data.toLog(id)
		if err := r.persist(ctx); err != nil {
			return err
		}
		r.notify(ActionUpdated, id)
		return nil
	}
	return nil
}

// Delete removes the matching log; unknown ids are a silent no-op.
func (r *LogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.logs {
		if r.logs[i].ID != id {
			continue
		}
		r.logs = append(r.logs[:i], r.logs[i+1:]...)
		if err := r.persist(ctx); err != nil {
			return err
		}
		r.notify(ActionDeleted, id)
		return nil
	}
	return nil
}

// All returns a copy of the collection in most-recent-first order.
func (r *LogRepo) All() []model.Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Log, len(r.logs))
	copy(out, r.logs)
	return out
}

// GetByID returns the matching log, or (zero, false) when absent.
func (r *LogRepo) GetByID(id string) (model.Log, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.ID == id {
			return l, true
		}
	}
	return model.Log{}, false
}

// GetBySeatID returns the current log for a seat: the first match in
// collection order, which is the most recently written one.  Older logs
// for the same seat are kept but shadowed for display purposes.
func (r *LogRepo) GetBySeatID(seatID string) (model.Log, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.SeatID == seatID {
			return l, true
		}
	}
	return model.Log{}, false
}

// GetAllBySeatID returns every log recorded against a seat, most recent
// first.  Callers that care about revisits use this instead of
// GetBySeatID.
func (r *LogRepo) GetAllBySeatID(seatID string) []model.Log {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Log
	for _, l := range r.logs {
		if l.SeatID == seatID {
			out = append(out, l)
		}
	}
	return out
}

// HasSeat reports whether any log references the seat.  This is the
// lookup the seat-map merge uses.
func (r *LogRepo) HasSeat(seatID string) bool {
	_, ok := r.GetBySeatID(seatID)
	return ok
}
