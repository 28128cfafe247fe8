package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Layouts of the dates stored by the dashboard.
const (
	LayoutBR   = "02/01/2006"
	LayoutISO  = "2006-01-02"
	LayoutHour = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ======================================================
// CLOCK
// ======================================================

// Clock is the wall-clock source used by every date-sensitive rule.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
	Loc *time.Location
}

func NewSystemClock(tz string) SystemClock {
	return SystemClock{Loc: Location(tz)}
}

func (c SystemClock) Now() time.Time {
	if c.Loc == nil {
		return Now()
	}
	return time.Now().In(c.Loc)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// ======================================================
// DATE HELPERS
// ======================================================

func FormatBR(t time.Time) string {
	return t.Format(LayoutBR)
}

func FormatISO(t time.Time) string {
	return t.Format(LayoutISO)
}

func ParseBR(s string) (time.Time, error) {
	return time.Parse(LayoutBR, s)
}

func ParseISO(s string) (time.Time, error) {
	return time.Parse(LayoutISO, s)
}

// ParseDate accepts either DD/MM/YYYY or YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	if t, err := ParseISO(s); err == nil {
		return t, nil
	}
	return ParseBR(s)
}

// ParseDateIn is ParseDate with the day starting at midnight in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(LayoutISO, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(LayoutBR, s, loc)
}

// MonthKey returns YYYY-MM, which sorts chronologically as a string.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
