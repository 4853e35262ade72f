// Package config holds the per-invocation settings for alrm.
//
// Unlike a long-running service there is no configuration file and no
// environment variable lookup: every setting arrives as a command-line
// flag, gets a default when unset, and is validated before the
// countdown starts.
//
// The main type is Settings:
//   - Update: live countdown mode instead of a one-shot report
//   - Interval: live-countdown tick interval (10ms to 1m, default 1s)
//   - LogLevel: diagnostic verbosity on stderr (default "error")
package config
