// Package timeparse implements the opinionated time-of-day grammar
// accepted on the alrm command line.
//
// Accepted forms:
//   - H            "9", "18"
//   - H:MM         "9:30", "09:05"
//   - H:MM:SS      "9:30:15"
//
// Each form may carry a trailing am/pm marker, with or without a
// separating space ("9pm", "9:30 pm", case-insensitive). When the
// marker is omitted the hour is read as 24-hour time. Combining a
// marker with an hour above 12 is rejected: the hour is already
// unambiguous and the marker contradicts it.
//
// Parsing is pure. The main entry point is Parse, which returns a
// range-checked ClockTime or a *ParseError naming the offending field
// and echoing the input verbatim.
package timeparse
