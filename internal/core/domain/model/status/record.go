package status

import "time"

// ID constrains the generic record machinery to the two closed status
// enumerations. Order and item statuses never mix within one collection.
type ID interface {
	OrderStatusID | ItemStatusID
}

// Record is one status slot on an aggregate: a status id, an active flag and
// timestamps. A record's identity and creation time survive any number of
// deactivation/reactivation cycles; only the active flag and the last-updated
// timestamp change.
type Record[S ID] struct {
	id        S
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewRecord creates an active record for the given status id with both
// timestamps set to now.
func NewRecord[S ID](id S) *Record[S] {
	now := time.Now().UTC()
	return &Record[S]{
		id:        id,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreRecord reconstructs a record from persistence without touching
// its timestamps.
func RestoreRecord[S ID](id S, active bool, createdAt, updatedAt time.Time) *Record[S] {
	return &Record[S]{
		id:        id,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// StatusID returns the status id this record tracks.
func (r *Record[S]) StatusID() S {
	return r.id
}

// Active reports whether the status is currently in effect.
func (r *Record[S]) Active() bool {
	return r.active
}

// CreatedAt returns the time the status was first activated on the aggregate.
func (r *Record[S]) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the time of the last activation or deactivation.
func (r *Record[S]) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Record[S]) activate(now time.Time) {
	r.active = true
	r.updatedAt = now
}

func (r *Record[S]) deactivate(now time.Time) {
	r.active = false
	r.updatedAt = now
}

func (r *Record[S]) clone() *Record[S] {
	c := *r
	return &c
}

// Records is the per-status-id slot collection owned by an aggregate.
// The map key always equals the record's own status id.
type Records[S ID] map[S]*Record[S]

// Clone returns a deep copy, so a transition never aliases the caller's records.
func (rs Records[S]) Clone() Records[S] {
	out := make(Records[S], len(rs))
	for id, rec := range rs {
		out[id] = rec.clone()
	}
	return out
}

// OrderRecords is the status collection of an order header.
type OrderRecords = Records[OrderStatusID]

// ItemRecords is the status collection of a single order item.
type ItemRecords = Records[ItemStatusID]
