// Package countdown renders the time remaining until a target
// instant, either as a single line or as a live display that redraws
// in place every tick until the target passes.
//
// The live loop is deliberately single-threaded: the only suspension
// point is the clock's Sleep between renders. Interrupt handling is
// left to the hosting terminal environment; the loop's one exit path
// is the remaining duration reaching zero.
package countdown
