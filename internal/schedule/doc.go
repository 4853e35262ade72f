// Package schedule resolves a parsed wall-clock time to the next
// absolute instant it occurs: today if still ahead, otherwise
// tomorrow. Resolution is a pure function of the parsed time and a
// caller-supplied "now", so it is directly testable against fixed
// instants.
package schedule
