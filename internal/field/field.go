// Package field implements format-validated field values for contact records.
package field

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidFormat indicates a raw value failed the format rule of its kind.
var ErrInvalidFormat = errors.New("field: invalid format")

// Kind selects the validation rule a Field enforces.
type Kind string

const (
	KindName     Kind = "name"
	KindPhone    Kind = "phone"
	KindBirthday Kind = "birthday"
)

// phonePattern accepts an optional leading +, an optional 2-digit country
// code, an optional parenthesized 3-digit area code, and 7-10 trailing
// digits, hyphens, or spaces.
var phonePattern = regexp.MustCompile(`^\+?(\d{2})?\(?\d{3}\)?[\d\-\s]{7,10}$`)

// birthdayPattern accepts YYYY-MM-DD with literal hyphens. Calendar
// validity is checked separately: 2021-02-30 matches the pattern but is
// rejected at construction.
var birthdayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateLayout = "2006-01-02"

// Field wraps a raw string that satisfied its kind's rule at construction.
// A Field never changes after construction; replace it to hold a new value.
// The zero Field is empty — use New or a kind constructor.
type Field struct {
	kind Kind
	raw  string
	date time.Time // birthday kind only
}

// New validates raw against the rule for kind and wraps it.
// Failure is always ErrInvalidFormat, annotated with the offending value.
func New(kind Kind, raw string) (Field, error) {
	switch kind {
	case KindName:
		// Names carry no format restriction.
		return Field{kind: kind, raw: raw}, nil

	case KindPhone:
		if !phonePattern.MatchString(raw) {
			return Field{}, fmt.Errorf("%w: phone number %q is invalid", ErrInvalidFormat, raw)
		}
		return Field{kind: kind, raw: raw}, nil

	case KindBirthday:
		if !birthdayPattern.MatchString(raw) {
			return Field{}, fmt.Errorf("%w: date %q does not match YYYY-MM-DD", ErrInvalidFormat, raw)
		}
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return Field{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidFormat, raw)
		}
		return Field{kind: kind, raw: raw, date: date}, nil

	default:
		return Field{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidFormat, kind)
	}
}

// NewName wraps a contact name.
func NewName(raw string) (Field, error) { return New(KindName, raw) }

// NewPhone wraps a phone number, validating the phone pattern.
func NewPhone(raw string) (Field, error) { return New(KindPhone, raw) }

// NewBirthday wraps a birthday, validating format and calendar date.
func NewBirthday(raw string) (Field, error) { return New(KindBirthday, raw) }

// Kind returns the rule this field was constructed under.
func (f Field) Kind() Kind { return f.kind }

// String returns the exact raw value the field was constructed from.
func (f Field) String() string { return f.raw }

// IsZero reports whether the field is the unconstructed zero value.
func (f Field) IsZero() bool { return f.kind == "" }

// Date returns the calendar date of a birthday field.
// It is the zero time for every other kind.
func (f Field) Date() time.Time { return f.date }

// Equal reports whether two fields hold the same kind and raw value.
func (f Field) Equal(other Field) bool {
	return f.kind == other.kind && f.raw == other.raw
}
