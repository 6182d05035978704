// Package window decides whether a daily sheet still accepts orders. All
// functions are pure given their inputs: the caller supplies the business-local
// "now", nothing here reads the wall clock.
package window

import (
	"time"

	"github.com/khyunjo1/paytalk-menu-service/internal/domain"
)

// DateClass positions a menu date relative to the business-local today.
type DateClass int

const (
	DatePast DateClass = iota
	DateYesterday
	DateToday
	DateFuture
)

func (c DateClass) String() string {
	switch c {
	case DatePast:
		return "past"
	case DateYesterday:
		return "yesterday"
	case DateToday:
		return "today"
	case DateFuture:
		return "future"
	default:
		return "unknown"
	}
}

// Classify compares a menu date with today's date. Yesterday is kept distinct
// from the rest of the past because the "yesterday as read-only preview"
// surface handles it explicitly; for ordering decisions it behaves as past.
func Classify(menuDate, today string) (DateClass, error) {
	md, err := domain.ParseDate(menuDate)
	if err != nil {
		return DatePast, err
	}
	td, err := domain.ParseDate(today)
	if err != nil {
		return DatePast, err
	}

	days := int(md.Sub(td).Hours() / 24)
	switch {
	case days > 0:
		return DateFuture, nil
	case days == 0:
		return DateToday, nil
	case days == -1:
		return DateYesterday, nil
	default:
		return DatePast, nil
	}
}

// IsOrderingClosed applies the decision table:
//
//	past, yesterday -> closed
//	future          -> open, regardless of cutoff (next-day ordering is allowed)
//	today           -> closed iff the current time strictly exceeds the cutoff
//
// Equality at the cutoff minute is still open. The asymmetry between yesterday
// and tomorrow is a product decision and must not be "fixed".
func IsOrderingClosed(menuDate string, cutoff domain.TimeOfDay, nowBusinessLocal time.Time) (bool, error) {
	class, err := Classify(menuDate, domain.FormatDate(nowBusinessLocal))
	if err != nil {
		return true, err
	}

	switch class {
	case DatePast, DateYesterday:
		return true, nil
	case DateFuture:
		return false, nil
	}

	cutoffMinutes, err := cutoff.Minutes()
	if err != nil {
		// Unparseable cutoff falls back to the default rather than
		// freezing the sheet open or closed.
		cutoffMinutes, _ = domain.DefaultOrderCutoff.Minutes()
	}
	local := nowBusinessLocal.In(domain.BusinessLocation)
	nowMinutes := local.Hour()*60 + local.Minute()

	return nowMinutes > cutoffMinutes, nil
}
