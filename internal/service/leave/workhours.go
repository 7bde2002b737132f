package leave

import "time"

// Workday window and lunch break, in local wall-clock hours. Leave cost
// is computed only from time inside this window.
const (
	workDayStartHour = 9
	workDayEndHour   = 18
	lunchStartHour   = 12
	lunchEndHour     = 13

	// WorkHoursPerDay is the lunch-adjusted length of a full workday.
	WorkHoursPerDay = 8
)

func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// oneDayHours computes the billable hours of a span within a single
// calendar day: the span is clipped to the workday window, one hour is
// deducted when it touches the lunch break, and the result is rounded
// up to a whole hour. Never negative.
func oneDayHours(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}

	workStart := atHour(start, workDayStartHour)
	workEnd := atHour(start, workDayEndHour)

	if start.Before(workStart) {
		start = workStart
	}
	if end.After(workEnd) {
		end = workEnd
	}
	if !start.Before(end) {
		return 0
	}

	minutes := int(end.Sub(start) / time.Minute)

	lunchStart := atHour(start, lunchStartHour)
	lunchEnd := atHour(start, lunchEndHour)
	if start.Before(lunchEnd) && end.After(lunchStart) {
		minutes -= 60
	}

	if minutes <= 0 {
		return 0
	}

	// Round up to a whole hour.
	return (minutes + 59) / 60
}

// BusinessHours computes the leave cost of [start, end] in whole hours.
//
// Per-day-segment rounding: every calendar-day segment is rounded up
// independently and the segments are summed, so a multi-day result is
// always a sum of integer day values. Intervening days count as full
// 8-hour days regardless of weekday, matching the payroll rules this
// engine mirrors.
//
// Returns 0 when start >= end or when the span lies entirely outside
// the workday window; callers treat 0 as an invalid range.
func BusinessHours(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}

	if sameDay(start, end) {
		return oneDayHours(start, end)
	}

	total := oneDayHours(start, atHour(start, workDayEndHour))

	day := atHour(start, 0).AddDate(0, 0, 1)
	lastDay := atHour(end, 0)
	for day.Before(lastDay) {
		total += oneDayHours(atHour(day, workDayStartHour), atHour(day, workDayEndHour))
		day = day.AddDate(0, 0, 1)
	}

	total += oneDayHours(atHour(end, workDayStartHour), end)

	return total
}
