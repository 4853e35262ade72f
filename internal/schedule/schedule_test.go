package schedule

import (
	"testing"
	"time"

	"github.com/zgpcy/alrm/internal/timeparse"
)

// fixedNow is an arbitrary weekday morning used as "now" in tests
var fixedNow = time.Date(2024, time.March, 14, 8, 0, 0, 0, time.Local)

func TestResolve_StillAheadToday_Success(t *testing.T) {
	// now = 08:00:00, "9" resolves to today 09:00:00
	target := Resolve(timeparse.ClockTime{Hour: 9}, fixedNow)

	want := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.Local)
	if !target.At.Equal(want) {
		t.Errorf("At = %v, want %v", target.At, want)
	}
	if target.Tomorrow {
		t.Error("Tomorrow = true, want false")
	}
	if got := target.At.Sub(fixedNow); got != time.Hour {
		t.Errorf("remaining = %v, want 1h", got)
	}
}

func TestResolve_AlreadyPassedToday_RollsToTomorrow(t *testing.T) {
	// now = 09:30:00, "9" has passed, resolves to tomorrow 09:00:00
	now := time.Date(2024, time.March, 14, 9, 30, 0, 0, time.Local)
	target := Resolve(timeparse.ClockTime{Hour: 9}, now)

	want := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)
	if !target.At.Equal(want) {
		t.Errorf("At = %v, want %v", target.At, want)
	}
	if !target.Tomorrow {
		t.Error("Tomorrow = false, want true")
	}
}

func TestResolve_SameEvening_Success(t *testing.T) {
	// now = 21:00:00, "9:30pm" resolves to today 21:30:00
	now := time.Date(2024, time.March, 14, 21, 0, 0, 0, time.Local)
	ct, err := timeparse.Parse("9:30pm")
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	target := Resolve(ct, now)
	want := time.Date(2024, time.March, 14, 21, 30, 0, 0, time.Local)
	if !target.At.Equal(want) {
		t.Errorf("At = %v, want %v", target.At, want)
	}
	if got := target.At.Sub(now); got != 30*time.Minute {
		t.Errorf("remaining = %v, want 30m", got)
	}
}

func TestResolve_ExactlyNow_RollsToTomorrow(t *testing.T) {
	// A candidate equal to now counts as already passed
	target := Resolve(timeparse.ClockTime{Hour: 8}, fixedNow)

	if !target.Tomorrow {
		t.Error("Tomorrow = false, want true for candidate equal to now")
	}
	if !target.At.After(fixedNow) {
		t.Errorf("At = %v, want strictly after now %v", target.At, fixedNow)
	}
}

func TestResolve_AlwaysStrictlyFuture(t *testing.T) {
	// Every valid hour/minute combination resolves strictly after now
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 1, 30, 59} {
			target := Resolve(timeparse.ClockTime{Hour: hour, Minute: minute}, fixedNow)
			if !target.At.After(fixedNow) {
				t.Fatalf("Resolve(%02d:%02d) = %v, not strictly after %v",
					hour, minute, target.At, fixedNow)
			}
			if remaining := target.At.Sub(fixedNow); remaining > 24*time.Hour {
				t.Fatalf("Resolve(%02d:%02d) remaining = %v, want at most 24h",
					hour, minute, remaining)
			}
		}
	}
}

func TestResolveString_Idempotent(t *testing.T) {
	first, err := ResolveString("9:30pm", fixedNow)
	if err != nil {
		t.Fatalf("ResolveString() error = %v, want nil", err)
	}
	second, err := ResolveString("9:30pm", fixedNow)
	if err != nil {
		t.Fatalf("ResolveString() error = %v, want nil", err)
	}
	if !first.At.Equal(second.At) || first.Tomorrow != second.Tomorrow {
		t.Errorf("ResolveString() not stable: %+v vs %+v", first, second)
	}
}

func TestResolveString_ParseFailure_Error(t *testing.T) {
	if _, err := ResolveString("abc", fixedNow); err == nil {
		t.Error("ResolveString(abc) error = nil, want parse error")
	}
}

func TestResolve_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, time.March, 14, 8, 0, 0, 0, loc)

	target := Resolve(timeparse.ClockTime{Hour: 9}, now)
	if target.At.Location() != loc {
		t.Errorf("Location = %v, want %v", target.At.Location(), loc)
	}
}
