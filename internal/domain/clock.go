package domain

import (
	"fmt"
	"time"
)

// BusinessLocation is the fixed UTC+9 zone every calendar decision is made in.
// "Today" for a store is today in this zone, never the UTC date.
var BusinessLocation = time.FixedZone("KST", 9*60*60)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Clock supplies the current business-local instant. Injecting it keeps the
// window evaluation pure and testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().In(BusinessLocation)
}

// MockClock pins the clock for tests, e.g. "pretend it is 14:59 on a Friday".
type MockClock struct {
	MockTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.MockTime.In(BusinessLocation)
}

// FormatDate takes the calendar date of t in the business zone.
func FormatDate(t time.Time) string {
	return t.In(BusinessLocation).Format(DateLayout)
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, BusinessLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// ShiftDate moves a calendar date by a whole number of days.
func ShiftDate(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}
