package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// DateLayout is the wire and storage format of a delivery date.
const DateLayout = time.DateOnly

// ErrDateIsNotConstructed indicates a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateOf")

// Date is a calendar day without time of day or zone, used for delivery dates.
// It is stored as midnight UTC so that values compare with ==.
type Date struct {
	t time.Time
}

// NewDate builds a date; out of range months and days are normalized like time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" formatted day.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q: %w", s, err))
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Validate rejects the zero Date.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Compare returns -1, 0 or +1, suitable for slices.SortFunc.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
