package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Clock time validation constants
const (
	MaxHour   = 23
	MaxMinute = 59
	MaxSecond = 59

	// MaxTwelveHour is the largest hour that may carry an am/pm marker.
	// Anything above it is already unambiguous 24-hour input.
	MaxTwelveHour = 12
)

// Field identifies the part of a time expression that failed to parse
type Field string

const (
	FieldExpression Field = "time"
	FieldHour       Field = "hour"
	FieldMinute     Field = "minute"
	FieldSecond     Field = "second"
	FieldMarker     Field = "am/pm"
)

// ParseError describes a time expression that could not be parsed.
// Input carries the offending text verbatim for display.
type ParseError struct {
	Input string
	Field Field
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Input, e.Msg)
}

// ClockTime is a parsed time of day. Values are always in range once
// constructed: hour 0-23, minute and second 0-59.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// String renders the clock time in 12-hour form, e.g. "9:30pm".
// Seconds are omitted, matching the countdown display.
func (ct ClockTime) String() string {
	h := ct.Hour % 12
	if h == 0 {
		h = 12
	}
	marker := "am"
	if ct.Hour >= 12 {
		marker = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, ct.Minute, marker)
}

// Accepted forms: H, H:MM, H:MM:SS, each optionally followed by an
// am/pm marker with or without a separating space. Fields may be
// zero-padded or not. A missing marker means 24-hour input.
var timeExpr = regexp.MustCompile(
	`(?i)^(?P<hour>-?\d+)(?::(?P<minute>-?\d*))?(?::(?P<second>-?\d*))?(?:\s?(?P<marker>\S*[ap]m))?$`)

// Parse converts a textual time of day into a ClockTime.
//
// Omitted minutes and seconds default to zero. Without an am/pm marker
// the hour is read as 24-hour time, so "18" is valid while "18pm" is
// rejected as overconstrained. "12am" maps to hour 0 and "12pm" stays
// at hour 12.
func Parse(s string) (ClockTime, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ClockTime{}, &ParseError{Input: s, Field: FieldExpression, Msg: "expected a time, got empty input"}
	}

	pos := timeExpr.FindStringSubmatchIndex(trimmed)
	if pos == nil {
		return ClockTime{}, &ParseError{Input: s, Field: FieldExpression, Msg: "not a recognizable time of day"}
	}

	// A group that participated in the match but captured nothing (the
	// minute in "6::6") is present-but-empty, which parseField rejects
	// as missing; a group that did not participate at all defaults.
	group := func(name string) (string, bool) {
		i := timeExpr.SubexpIndex(name)
		if pos[2*i] < 0 {
			return "", false
		}
		return trimmed[pos[2*i]:pos[2*i+1]], true
	}

	hourStr, _ := group("hour")
	minuteStr, hasMinute := group("minute")
	secondStr, hasSecond := group("second")
	markerStr, hasMarker := group("marker")

	hour, err := parseField(s, FieldHour, hourStr, MaxHour)
	if err != nil {
		return ClockTime{}, err
	}

	minute := 0
	if hasMinute {
		if minute, err = parseField(s, FieldMinute, minuteStr, MaxMinute); err != nil {
			return ClockTime{}, err
		}
	}

	second := 0
	if hasSecond {
		if second, err = parseField(s, FieldSecond, secondStr, MaxSecond); err != nil {
			return ClockTime{}, err
		}
	}

	if hasMarker {
		hour, err = applyMarker(s, hour, markerStr)
		if err != nil {
			return ClockTime{}, err
		}
	}

	return ClockTime{Hour: hour, Minute: minute, Second: second}, nil
}

// parseField parses one numeric component and range-checks it.
func parseField(input string, field Field, raw string, max int) (int, error) {
	if raw == "" {
		return 0, &ParseError{Input: input, Field: field, Msg: fmt.Sprintf("%s is missing", field)}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Input: input, Field: field, Msg: fmt.Sprintf("%s %q is not a number", field, raw)}
	}
	if n < 0 || n > max {
		return 0, &ParseError{Input: input, Field: field, Msg: fmt.Sprintf("%s %d is outside 0-%d", field, n, max)}
	}
	return n, nil
}

// applyMarker converts a 12-hour reading to 24-hour time.
func applyMarker(input string, hour int, marker string) (int, error) {
	if hour > MaxTwelveHour {
		return 0, &ParseError{Input: input, Field: FieldMarker,
			Msg: fmt.Sprintf("hour %d is already 24-hour, the %s marker is too much information", hour, strings.ToLower(marker))}
	}
	switch strings.ToLower(marker) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, &ParseError{Input: input, Field: FieldMarker, Msg: fmt.Sprintf("%q is not am or pm", marker)}
	}
	return hour, nil
}
