package booking

import (
	"sort"
	"time"
)

// maxShownPerDay caps the calendar entries rendered per day cell.
const maxShownPerDay = 3

// CalendarCell is one day in the month grid. A nil *CalendarCell in
// the grid slice is a leading blank before the first of the month.
type CalendarCell struct {
	Day          int            `json:"day"`
	Appointments []*Appointment `json:"appointments"`
	More         int            `json:"more"`
}

// BuildCalendarGrid projects appointments onto a Sunday-first month
// grid. Appointments keep their input order within a day; at most
// three are listed, the rest counted in More. Appointments outside the
// month or with an unparseable preferred_date are skipped.
func BuildCalendarGrid(appts []*Appointment, year int, month time.Month) []*CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]*Appointment)
	for _, a := range appts {
		d, err := time.Parse(DateLayout, a.PreferredDate)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		byDay[d.Day()] = append(byDay[d.Day()], a)
	}

	grid := make([]*CalendarCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := &CalendarCell{Day: day}
		dayAppts := byDay[day]
		if len(dayAppts) > maxShownPerDay {
			cell.Appointments = dayAppts[:maxShownPerDay]
			cell.More = len(dayAppts) - maxShownPerDay
		} else {
			cell.Appointments = dayAppts
		}
		grid = append(grid, cell)
	}
	return grid
}

// WeekdayCount is one histogram bucket.
type WeekdayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildWeeklyHistogram counts appointments per weekday of their
// preferred_date. Unparseable dates are skipped.
func BuildWeeklyHistogram(appts []*Appointment) []WeekdayCount {
	counts := make([]WeekdayCount, 7)
	for i, name := range weekdayNames {
		counts[i] = WeekdayCount{Day: name}
	}
	for _, a := range appts {
		d, err := time.Parse(DateLayout, a.PreferredDate)
		if err != nil {
			continue
		}
		counts[int(d.Weekday())].Count++
	}
	return counts
}

// NextUpcoming returns the first two appointments at or after now,
// ordered by their preferred instant. Appointments whose date does not
// parse are skipped.
func NextUpcoming(appts []*Appointment, now time.Time) []*Appointment {
	type timed struct {
		at   time.Time
		appt *Appointment
	}
	var upcoming []timed
	for _, a := range appts {
		at, ok := a.PreferredInstant(now.Location())
		if !ok || at.Before(now) {
			continue
		}
		upcoming = append(upcoming, timed{at: at, appt: a})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].at.Before(upcoming[j].at)
	})

	var result []*Appointment
	for i := 0; i < len(upcoming) && i < 2; i++ {
		result = append(result, upcoming[i].appt)
	}
	return result
}

// PendingToday counts pending appointments preferred for now's
// calendar date.
func PendingToday(appts []*Appointment, now time.Time) int {
	today := now.Format(DateLayout)
	count := 0
	for _, a := range appts {
		if a.Status == StatusPending && a.PreferredDate == today {
			count++
		}
	}
	return count
}
