package service

import (
	"time"

	"github.com/maxty9378/paneldoirp-sub002/internal/apperror"
	"github.com/maxty9378/paneldoirp-sub002/internal/model"
)

// AnnualWaitMonths is how long after an event its annual test opens.
const AnnualWaitMonths = 3

// AnnualAvailableOn is the first day the annual test of the event may be taken:
// the event's end date (or start date) plus three calendar months.
func AnnualAvailableOn(event model.Event) time.Time {
	return dateOnly(event.ConcludedOn()).AddDate(0, AnnualWaitMonths, 0)
}

// CheckAnnualAvailability returns a *apperror.NotYetAvailableError before the
// opening day. The opening day itself is allowed.
func CheckAnnualAvailability(event model.Event, now time.Time) error {
	availableOn := AnnualAvailableOn(event)
	today := dateOnly(now)
	if !today.Before(availableOn) {
		return nil
	}
	months, days := monthsAndDays(today, availableOn)
	return &apperror.NotYetAvailableError{AvailableOn: availableOn, Months: months, Days: days}
}

// dateOnly keeps the calendar date of t as seen in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthsAndDays splits the distance between two dates into whole calendar
// months and the remaining days. from must not be after to.
func monthsAndDays(from, to time.Time) (int, int) {
	months := 0
	for !from.AddDate(0, months+1, 0).After(to) {
		months++
	}
	days := int(to.Sub(from.AddDate(0, months, 0)).Hours() / 24)
	return months, days
}
