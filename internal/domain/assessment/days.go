package assessment

import "time"

// daysUntil counts whole calendar days from today (midnight-truncated) to
// the deadline date. Negative once the deadline has passed.
func daysUntil(today, deadline time.Time) int {
	from := truncateDay(today)
	to := truncateDay(deadline)
	return int(to.Sub(from).Hours() / 24)
}

// workdaysUntil counts only Monday-Friday days between today (exclusive)
// and the deadline (inclusive). Past deadlines fall back to the calendar
// distance so overdue detection still fires.
func workdaysUntil(today, deadline time.Time) int {
	from := truncateDay(today)
	to := truncateDay(deadline)
	if to.Before(from) {
		return daysUntil(today, deadline)
	}
	days := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
