package clock

import "time"

// DateKeyFormat is the canonical day key used across attendance storage.
const DateKeyFormat = "2006-01-02"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now so day boundaries and schedule windows are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// NewClock returns a Clock fixed to the named IANA timezone. An unknown
// timezone falls back to UTC.
func NewClock(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return realClock{loc: loc}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

// Calendar answers date arithmetic questions against a Clock, including the
// weekly rest day on which scheduled jobs do not run.
type Calendar struct {
	clock   Clock
	restDay time.Weekday
}

func NewCalendar(clock Clock, restDay time.Weekday) *Calendar {
	return &Calendar{clock: clock, restDay: restDay}
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

// Today returns the current date key.
func (c *Calendar) Today() string {
	return c.clock.Now().Format(DateKeyFormat)
}

// DateKeyFor formats t as a date key.
func (c *Calendar) DateKeyFor(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// IsRestDay reports whether today is the weekly rest day.
func (c *Calendar) IsRestDay() bool {
	return c.clock.Now().Weekday() == c.restDay
}

// TrailingDays returns the date keys for the last n days ending today,
// in chronological order.
func (c *Calendar) TrailingDays(n int) []string {
	now := c.clock.Now()
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, now.AddDate(0, 0, -i).Format(DateKeyFormat))
	}
	return days
}

// DaysAgo returns the date key n days before today.
func (c *Calendar) DaysAgo(n int) string {
	return c.clock.Now().AddDate(0, 0, -n).Format(DateKeyFormat)
}

// MonthsAgo returns the date key n months before today.
func (c *Calendar) MonthsAgo(n int) string {
	return c.clock.Now().AddDate(0, -n, 0).Format(DateKeyFormat)
}
