package domain

import "time"

const (
	// LifespanYears is the assumed length of a life
	LifespanYears = 70

	// YearWindowDays is the fixed window of the weekly and year views
	YearWindowDays = 365

	// Day is the unit every day count is measured in
	Day = 24 * time.Hour
)

// Window is a count of days lived out of a total budget of days
type Window struct {
	Lived int
	Total int
}

// Remaining returns the days left in the window. It exceeds Total when the
// birthdate is in the future and goes negative once the window is outlived.
func (w Window) Remaining() int {
	return w.Total - w.Lived
}

// RemainingYears returns Remaining in whole 365-day years, rounded down
func (w Window) RemainingYears() int {
	return floorDiv(w.Remaining(), 365)
}

// DaysBetween returns the whole days elapsed from one instant to another,
// rounded toward negative infinity.
func DaysBetween(from, to time.Time) int {
	d := to.Sub(from)
	days := int(d / Day)
	if d < 0 && d%Day != 0 {
		days--
	}
	return days
}

// LifespanWindow measures days lived since birth against LifespanYears
func LifespanWindow(birth, now time.Time) Window {
	end := birth.AddDate(LifespanYears, 0, 0)
	return Window{
		Lived: DaysBetween(birth, now),
		Total: DaysBetween(birth, end),
	}
}

// WeeklyWindow measures days lived since birth against a fixed
// YearWindowDays, so anyone older than a year fills the whole window.
func WeeklyWindow(birth, now time.Time) Window {
	return Window{
		Lived: DaysBetween(birth, now),
		Total: YearWindowDays,
	}
}

// YearWindow measures days lived since the most recent birthday against a
// fixed YearWindowDays. Before birth the lived count is negative.
func YearWindow(birth, now time.Time) Window {
	w := Window{Total: YearWindowDays}
	if now.Before(birth) {
		w.Lived = DaysBetween(birth, now)
		return w
	}
	w.Lived = DaysBetween(LastBirthday(birth, now), now)
	return w
}

// LastBirthday returns the latest anniversary of birth that is not after now
func LastBirthday(birth, now time.Time) time.Time {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		anniversary = birth.AddDate(years-1, 0, 0)
	}
	return anniversary
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
