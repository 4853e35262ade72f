package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/zgpcy/alrm/internal/clock"
	"github.com/zgpcy/alrm/internal/config"
	"github.com/zgpcy/alrm/internal/countdown"
	"github.com/zgpcy/alrm/internal/logger"
	"github.com/zgpcy/alrm/internal/schedule"
	"github.com/zgpcy/alrm/internal/version"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:      "alrm",
		Usage:     "count down to a time of day",
		UsageText: "alrm [options] TIME",
		Description: "Reports how long until TIME next occurs: today if it is still ahead,\n" +
			"tomorrow if it has already passed. With -u the countdown updates in\n" +
			"place every second until the time is reached.\n\n" +
			"   alrm 9       # time until 9:00 am\n" +
			"   alrm 9:30pm  # time until 9:30 pm\n" +
			"   alrm 9:00 -u # count down to 9:00 am, then exit",
		Version: version.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "update",
				Aliases: []string{"u"},
				Usage:   "update the countdown until the time has passed, then exit",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Value: config.DefaultInterval,
				Usage: "tick interval for the live countdown",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: config.DefaultLogLevel,
				Usage: "diagnostic verbosity on stderr (debug, info, warn, error)",
			},
		},
		Action: runCountdown,
	}
	return app.Run(args)
}

// parseTimeArgs splits the positional arguments into the time
// expression and a trailing update flag. Flag parsing stops at the
// first positional, so the `alrm 9:00 -u` form arrives here with "-u"
// among the positionals; it is peeled off rather than joined into the
// time expression. Other option-shaped tokens are rejected: flags that
// take a value must come before TIME.
func parseTimeArgs(args []string) (string, bool, error) {
	update := false
	words := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "-u" || arg == "--update":
			update = true
		case strings.HasPrefix(arg, "-"):
			return "", false, fmt.Errorf("unknown option %q after TIME (options that take a value must come before TIME)", arg)
		default:
			words = append(words, arg)
		}
	}
	if len(words) == 0 {
		return "", false, fmt.Errorf("missing TIME argument (try \"alrm 9\" or \"alrm 9:30pm\")")
	}
	// Words are rejoined so `alrm 6:30 pm` works without quoting.
	return strings.Join(words, " "), update, nil
}

func runCountdown(cctx *cli.Context) error {
	expr, trailingUpdate, err := parseTimeArgs(cctx.Args().Slice())
	if err != nil {
		return err
	}

	settings, err := config.New(cctx.Bool("update") || trailingUpdate, cctx.Duration("interval"), cctx.String("log-level"))
	if err != nil {
		return err
	}

	log := logger.New(settings.LogLevel)
	log.Debug("starting alrm", "version", version.Info()["version"], "settings", fmt.Sprintf("%+v", settings))

	clk := clock.RealClock{}
	target, err := schedule.ResolveString(expr, clk.Now())
	if err != nil {
		return err
	}
	log.Debug("resolved target",
		"input", expr,
		"target", target.At.Format(time.RFC3339),
		"tomorrow", target.Tomorrow)

	mode := countdown.PrintOnce
	if settings.Update {
		mode = countdown.LiveCountdown
	}

	runner := countdown.New(clk, os.Stdout, log, settings.Interval)
	return runner.Run(target, mode)
}
