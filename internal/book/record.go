// Package book implements the in-memory contact store: per-person records
// and the name-keyed book that owns them.
package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/okruta/rolo/internal/field"
)

// ErrNotFound indicates a name lookup or phone removal-by-value missed.
var ErrNotFound = errors.New("book: not found")

// Record aggregates one person's contact data. The name is the record's
// identity and never changes. Phones keep insertion order and may repeat.
type Record struct {
	name     field.Field
	phones   []field.Field
	birthday field.Field
}

// NewRecord creates a record with a name and an optional birthday.
// Pass the zero Field for no birthday.
func NewRecord(name, birthday field.Field) *Record {
	return &Record{name: name, birthday: birthday}
}

// Name returns the record's identity key.
func (r *Record) Name() string { return r.name.String() }

// Phones returns the phone fields in insertion order.
func (r *Record) Phones() []field.Field {
	out := make([]field.Field, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday field and whether one is set.
func (r *Record) Birthday() (field.Field, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone appends a phone to the record. Duplicates are allowed.
func (r *Record) AddPhone(p field.Field) {
	r.phones = append(r.phones, p)
}

// RemovePhone removes the first phone equal by value to p.
// It is an error, not a no-op, when no phone matches.
func (r *Record) RemovePhone(p field.Field) error {
	for i, existing := range r.phones {
		if existing.Equal(p) {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: phone %s on record %s", ErrNotFound, p, r.Name())
}

// ClearPhones empties the phone sequence.
func (r *Record) ClearPhones() {
	r.phones = nil
}

// DaysToBirthday counts days from today to the next occurrence of the
// birthday's month and day. A birthday falling on today counts as 0.
// ok is false when the record has no birthday.
func (r *Record) DaysToBirthday(today time.Time) (days int, ok bool) {
	if r.birthday.IsZero() {
		return 0, false
	}

	// Normalize to midnight UTC so the subtraction is a whole-day count
	// regardless of the caller's clock and zone.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	bd := r.birthday.Date()

	next := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today) / (24 * time.Hour)), true
}
