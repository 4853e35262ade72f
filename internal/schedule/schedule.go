package schedule

import (
	"time"

	"github.com/zgpcy/alrm/internal/timeparse"
)

// Target is the next absolute instant at which a wall-clock time
// occurs. Tomorrow records whether the time had already passed today
// and rolled forward one calendar day.
type Target struct {
	At       time.Time
	Time     timeparse.ClockTime
	Tomorrow bool
}

// Resolve maps a wall-clock time to the next future instant relative
// to now, in now's location. A candidate exactly equal to now counts
// as already passed: a countdown of zero duration is not useful, so it
// rolls to tomorrow. The result is always strictly after now.
func Resolve(ct timeparse.ClockTime, now time.Time) Target {
	candidate := time.Date(now.Year(), now.Month(), now.Day(),
		ct.Hour, ct.Minute, ct.Second, 0, now.Location())

	tomorrow := false
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
		tomorrow = true
	}

	return Target{At: candidate, Time: ct, Tomorrow: tomorrow}
}

// ResolveString parses a time expression and resolves it against now.
func ResolveString(s string, now time.Time) (Target, error) {
	ct, err := timeparse.Parse(s)
	if err != nil {
		return Target{}, err
	}
	return Resolve(ct, now), nil
}
