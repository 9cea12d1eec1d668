// Package main provides the privgate supervisor. It resolves the host
// capability profile, loads the policy configuration, installs the security
// hooks into the host dispatch table, and reports checkpoint activity on
// shutdown.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/privgate/privgate/internal/cmdcommon"
	"github.com/privgate/privgate/internal/hooks"
	"github.com/privgate/privgate/internal/hostapi"
	"github.com/privgate/privgate/internal/hostcompat"
	"github.com/privgate/privgate/internal/logging"
	"github.com/privgate/privgate/internal/policy"
)

var (
	configPath   = flag.String("config", "", "path to policy config file (default: "+cmdcommon.DefaultConfigPath+")")
	logLevel     = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logDir       = flag.String("log-dir", "", "directory for per-run JSON logs")
	enableInitrc = flag.Bool("enable-initrc", false, "arm the init-script watch latch at startup")
	quiet        = flag.Bool("quiet", false, "suppress console output")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "privgate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return err
	}

	runID := logging.GenerateRunID()
	logger, cleanup, err := logging.Setup(logging.Options{
		Level:      level,
		LogDir:     *logDir,
		RunID:      runID,
		ForceQuiet: *quiet,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cleanup(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "privgate: failed to close run log: %v\n", closeErr)
		}
	}()

	logger = logger.With("run_id", runID)
	slog.SetDefault(logger)

	profile := hostcompat.CurrentProfile()
	if err := profile.Validate(); err != nil {
		return err
	}
	logger.Info("host capability profile resolved",
		"copy", profile.CopyStrategy,
		"open", profile.OpenStrategy,
		"close", profile.CloseStrategy,
		"signal", profile.SignalStrategy)

	cfg, err := policy.LoadConfigFile(cmdcommon.ResolveConfigPath(*configPath))
	if err != nil {
		return err
	}
	engine, err := policy.NewAllowlistEngine(cfg, logger)
	if err != nil {
		return err
	}

	registry, err := hooks.New(engine, logger)
	if err != nil {
		return err
	}

	table := hostapi.NewTable()
	if err := registry.Install(table); err != nil {
		return err
	}
	if *enableInitrc {
		registry.EnableInitScriptWatch()
	}

	// The host drives the dispatch table from here on; wait for shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutting down", "signal", sig.String())

	metrics := registry.Metrics()
	stats := engine.Stats()
	logger.Info("checkpoint activity",
		"cred_fix_invocations", metrics.CredFixInvocations,
		"file_perm_invocations", metrics.FilePermInvocations,
		"recovered_panics", metrics.RecoveredPanics,
		"granted", stats.Granted,
		"denied", stats.Denied,
		"observed", stats.Observed,
		"first_init_script", stats.FirstInitScript)
	return nil
}
