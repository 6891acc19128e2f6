package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
)

type env struct {
	cfg    *config.Config
	flags  *pflag.FlagSet
	stdout io.Writer
}

type command struct {
	summary string
	flags   []flagGroup
	run     func(ctx context.Context, e *env) error
}

var commands = map[string]command{
	"discover": {
		summary: "list custom label values with impressions",
		flags:   []flagGroup{accountFlags, discoverFlags},
		run:     runDiscover,
	},
	"plan": {
		summary: "show the campaigns create would build",
		flags:   []flagGroup{accountFlags, planFlags, provisionFlags},
		run:     runPlan,
	},
	"create": {
		summary: "create one Performance Max campaign per label",
		flags:   []flagGroup{accountFlags, planFlags, provisionFlags, applyFlag},
		run:     runCreate,
	},
	"monitor": {
		summary: "reconcile campaigns with the current labels",
		flags:   []flagGroup{accountFlags, planFlags, provisionFlags, monitorFlags, applyFlag},
		run:     runMonitor,
	},
	"inspect": {
		summary: "show the asset groups and listing groups of a campaign",
		flags:   []flagGroup{accountFlags, inspectFlags},
		run:     runInspect,
	},
	"attach": {
		summary: "attach a label listing group to an existing asset group",
		flags:   []flagGroup{accountFlags, attachFlags, applyFlag},
		run:     runAttach,
	},
	"strategies": {
		summary: "create portfolio target ROAS strategies per label",
		flags:   []flagGroup{accountFlags, applyFlag},
		run:     runStrategies,
	},
	"runs": {
		summary: "list persisted monitor runs",
		flags:   []flagGroup{accountFlags, runsFlags},
		run:     runRuns,
	},
	"serve": {
		summary: "start the admin API and the weekly monitor",
		flags:   []flagGroup{accountFlags, planFlags, provisionFlags, monitorFlags, applyFlag},
		run:     runServe,
	},
	"token": {
		summary: "issue a bearer token for the admin API",
		flags:   []flagGroup{tokenFlags},
		run:     runToken,
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stderr)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 1
	}

	fs := pflag.NewFlagSet("pmaxctl "+args[0], pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("log-level", "info", "log level")
	for _, group := range cmd.flags {
		group(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if err := bindFlags(fs); err != nil {
		logrus.WithError(err).Error("failed to bind flags")
		return 1
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Error("failed to load configuration")
		return 1
	}
	configureLogger(cfg.App.LogLevel)

	err = cmd.run(ctx, &env{cfg: cfg, flags: fs, stdout: stdout})
	if err != nil {
		logrus.WithError(err).Errorf("%s failed", args[0])
	}
	return exitCode(err)
}

// exitCode is 0 for completed runs, dry runs included, and 1 for any error,
// partially applied batches included.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: pmaxctl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-11s %s\n", name, commands[name].summary)
	}
}

func configureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}
