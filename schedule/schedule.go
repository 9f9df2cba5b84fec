// Package schedule holds the pure date/time logic behind rental booking:
// date-only parsing, calendar expansion, the overlap predicate and the
// pricing arithmetic. Nothing here touches storage.
package schedule

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var (
	ErrBadDate  = errors.New("schedule: date must be YYYY-MM-DD")
	ErrBadClock = errors.New("schedule: time must be HH:MM")
)

// ParseDate converts a YYYY-MM-DD wire string into a date-only value in
// local time. No UTC conversion: shifting the calendar day would move a
// booking to the wrong date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(dateLayout) }

func ValidClock(s string) bool { return clockRe.MatchString(s) }

// clockMinutes assumes s already matched clockRe.
func clockMinutes(s string) int {
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// SameDay compares calendar days ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DatesBetween expands an inclusive [start, end] range into its
// constituent days. Each step allocates a fresh value; mutating one date
// across iterations would repeat the final day.
func DatesBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Days counts the calendar days between start and end, inclusive of both.
func Days(start, end time.Time) int {
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(math.Abs(diff))) + 1
}

// Hours returns the intraday duration between two HH:MM values,
// borrowing an hour when the minute remainder goes negative
// (09:45 to 10:15 is half an hour).
func Hours(startTime, endTime string) float64 {
	return float64(clockMinutes(endTime)-clockMinutes(startTime)) / 60
}

// TotalValue prices a booking: inclusive day count times hours per day
// times the space's hourly rate.
func TotalValue(start, end time.Time, startTime, endTime string, hourlyRate float64) float64 {
	return float64(Days(start, end)) * Hours(startTime, endTime) * hourlyRate
}

// HasTimeConflict decides whether a requested booking collides with an
// existing one on the same space.
//
// Disjoint calendar ranges never conflict. When both bookings are exactly
// one day long and share that day, the HH:MM windows decide: conflict iff
// newStart < existingEnd && newEnd > existingStart, so back-to-back
// windows (10:00-12:00 then 12:00-14:00) coexist. Any other calendar
// overlap is an unconditional conflict; partial-day disambiguation across
// multi-day spans is not attempted.
func HasTimeConflict(
	exStart, exEnd time.Time, exStartTime, exEndTime string,
	newStart, newEnd time.Time, newStartTime, newEndTime string,
) bool {
	if newEnd.Before(exStart) || newStart.After(exEnd) {
		return false
	}

	if SameDay(newStart, newEnd) && SameDay(exStart, exEnd) && SameDay(newStart, exStart) {
		return clockMinutes(newStartTime) < clockMinutes(exEndTime) &&
			clockMinutes(newEndTime) > clockMinutes(exStartTime)
	}

	return true
}
