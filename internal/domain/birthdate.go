package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// BirthdateLayout is the canonical form a prompted birthdate is stored in
const BirthdateLayout = "01/02/2006"

var (
	// numericDatePattern is the shape a --config.birthdate override must have
	numericDatePattern = regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{4}$`)

	monthDayYear = regexp.MustCompile(`^(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})$`)
	isoDate      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// IsValidBirthdate reports whether s has the M/D/YYYY shape accepted as an
// override. It checks the shape only; ParseBirthdate checks the calendar.
func IsValidBirthdate(s string) bool {
	return numericDatePattern.MatchString(s)
}

// Birthdate is the result of parsing a stored or entered birthdate.
// Exactly one of Time and Err is meaningful, as reported by Valid.
type Birthdate struct {
	raw string
	t   time.Time
	err error
}

// Valid reports whether the birthdate parsed to a calendar date
func (b Birthdate) Valid() bool {
	return b.err == nil
}

// Time returns local midnight of the birthdate, or the zero time when invalid
func (b Birthdate) Time() time.Time {
	return b.t
}

// Err returns the parse failure, wrapping ErrInvalidBirthdate
func (b Birthdate) Err() error {
	return b.err
}

// Raw returns the input that was parsed
func (b Birthdate) Raw() string {
	return b.raw
}

// String returns the canonical MM/DD/YYYY form, or the raw input when invalid
func (b Birthdate) String() string {
	if !b.Valid() {
		return b.raw
	}
	return b.t.Format(BirthdateLayout)
}

// ParseBirthdate parses s as month-first M/D/YYYY (separators "/", "." or
// "-"), as YYYY-MM-DD, or as an RFC 3339 timestamp. The result is midnight of
// that calendar date in loc; a nil loc means time.Local.
func ParseBirthdate(s string, loc *time.Location) Birthdate {
	if loc == nil {
		loc = time.Local
	}
	raw := s
	s = strings.TrimSpace(s)

	invalid := func(reason string) Birthdate {
		return Birthdate{raw: raw, err: fmt.Errorf("%w %q: %s", ErrInvalidBirthdate, raw, reason)}
	}

	if s == "" {
		return invalid("empty")
	}

	var year, month, day int
	switch {
	case monthDayYear.MatchString(s):
		m := monthDayYear.FindStringSubmatch(s)
		month, day, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
	case isoDate.MatchString(s):
		m := isoDate.FindStringSubmatch(s)
		year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	default:
		ts, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return invalid("unrecognized date format")
		}
		ts = ts.In(loc)
		year, month, day = ts.Year(), int(ts.Month()), ts.Day()
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes out-of-range fields; reject anything that moved.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return invalid("no such calendar date")
	}

	return Birthdate{raw: raw, t: t}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
