package countdown

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zgpcy/alrm/internal/clock"
	"github.com/zgpcy/alrm/internal/logger"
	"github.com/zgpcy/alrm/internal/schedule"
)

// DefaultInterval is the live-countdown tick interval
const DefaultInterval = 1 * time.Second

// Mode selects how the runner reports the remaining time
type Mode int

const (
	// PrintOnce writes the remaining time once and returns
	PrintOnce Mode = iota
	// LiveCountdown redraws the remaining time every tick until the
	// target is reached
	LiveCountdown
)

func (m Mode) String() string {
	if m == LiveCountdown {
		return "live"
	}
	return "once"
}

// Runner renders the time remaining until a target instant
type Runner struct {
	clock    clock.Clock
	out      io.Writer
	logger   *logger.Logger
	interval time.Duration
}

// New creates a runner. A non-positive interval falls back to
// DefaultInterval.
func New(clk clock.Clock, out io.Writer, log *logger.Logger, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		clock:    clk,
		out:      out,
		logger:   log,
		interval: interval,
	}
}

// Run reports the time remaining until target according to mode. It
// returns once the report is written (PrintOnce) or once the target
// instant has passed (LiveCountdown). Write failures are fatal; there
// is nothing meaningful to retry for a display write.
func (r *Runner) Run(target schedule.Target, mode Mode) error {
	r.logger.Debug("starting countdown",
		"target", target.At.Format(time.RFC3339),
		"tomorrow", target.Tomorrow,
		"mode", mode.String())

	if mode == PrintOnce {
		return r.printOnce(target)
	}
	return r.live(target)
}

func (r *Runner) printOnce(target schedule.Target) error {
	now := r.clock.Now()
	remaining := target.At.Sub(now)
	if _, err := fmt.Fprintf(r.out, "%s until %s\n", FormatDuration(remaining), describe(target, now)); err != nil {
		return fmt.Errorf("failed to write countdown: %w", err)
	}
	return nil
}

// live is a single control path: render, sleep one interval, repeat.
// Each tick overwrites the previous render via carriage return, padded
// so a shorter line fully covers a longer one.
func (r *Runner) live(target schedule.Target) error {
	width := 0
	for {
		now := r.clock.Now()
		remaining := target.At.Sub(now)
		if remaining <= 0 {
			if width > 0 {
				if _, err := fmt.Fprintf(r.out, "\r%s\r", strings.Repeat(" ", width)); err != nil {
					return fmt.Errorf("failed to clear countdown line: %w", err)
				}
			}
			if _, err := fmt.Fprintln(r.out, "Time's up!"); err != nil {
				return fmt.Errorf("failed to write completion line: %w", err)
			}
			return nil
		}

		line := fmt.Sprintf("%s until %s", FormatDuration(remaining), describe(target, now))
		if len(line) > width {
			width = len(line)
		}
		if _, err := fmt.Fprintf(r.out, "\r%-*s", width, line); err != nil {
			return fmt.Errorf("failed to write countdown: %w", err)
		}

		r.logger.Debug("tick", "remaining", remaining.String())
		r.clock.Sleep(r.interval)
	}
}

// describe labels the target for display, e.g. "9:30pm tomorrow".
// The label is computed from now rather than frozen at resolve time:
// a countdown running across midnight flips from "tomorrow" to
// "today" once the calendar day turns.
func describe(target schedule.Target, now time.Time) string {
	day := "today"
	ny, nm, nd := now.Date()
	ty, tm, td := target.At.Date()
	if ny != ty || nm != tm || nd != td {
		day = "tomorrow"
	}
	return target.Time.String() + " " + day
}

// FormatDuration renders a duration as HH:MM:SS, rounded to the
// nearest second. Negative durations clamp to 00:00:00.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
