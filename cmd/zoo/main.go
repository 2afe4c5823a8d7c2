package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/oliverbestmann/anyanimal"
	"github.com/oliverbestmann/anyanimal/internal/config"
	"github.com/oliverbestmann/anyanimal/zoo"
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

func main() {
	if err := realMain(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}

// realMain runs the zoo. All deferred cleanups, like flushing the logger or
// writing the profile, have run once realMain returns.
func realMain(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("zoo", flag.ContinueOnError)

	var (
		configPath  = flags.String("config", os.Getenv("ZOO_CONFIG"), "Path to a yaml config file")
		profileMode = flags.String("profile", "", "Write a profile (cpu, mem)")
		profilePath = flags.String("profile-path", ".", "Directory to write the profile to")
		logLevel    = flags.String("log-level", "", "Override the configured log level")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	defer func() { _ = log.Sync() }()

	// library code logs through log/slog
	installSlog(log)

	var profileMethod func(*profile.Profile)
	switch *profileMode {
	case "":
	case "cpu":
		profileMethod = profile.CPUProfile
	case "mem":
		profileMethod = profile.MemProfile
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	if profileMethod != nil {
		defer profile.Start(
			profileMethod,
			profile.ProfilePath(*profilePath),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()
	}

	// stdout is only styled when a human is watching
	styled := cfg.Style == config.StyleColor ||
		cfg.Style == config.StyleAuto && isTerminal(stdout)

	if err := run(stdout, log, cfg, styled); err != nil {
		log.Error("zoo failed", zap.Error(err))
		return err
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(parsedLevel)

	log, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log, nil
}

// installSlog routes the default slog logger into log.
func installSlog(log *zap.Logger) {
	slog.SetDefault(slog.New(zapslog.NewHandler(log.Core())))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// run builds the roster described by cfg and prints the food requirements
// of every animal to out.
func run(out io.Writer, log *zap.Logger, cfg config.Config, styled bool) error {
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}

	previousOutput := zoo.Output
	zoo.Output = out
	defer func() { zoo.Output = previousOutput }()

	// a roster is large, keep it in one place and never copy it
	roster := new(anyanimal.Roster)
	defer roster.Destroy()

	for _, kind := range kinds {
		if err := zoo.Append(roster, kind); err != nil {
			return fmt.Errorf("add %s: %w", kind, err)
		}

		log.Debug("Animal joined the roster",
			zap.String("kind", string(kind)),
			zap.Int("position", roster.Len()-1),
			zap.String("type", roster.At(roster.Len()-1).TypeName()),
		)
	}

	log.Info("Roster ready", zap.Int("animals", roster.Len()))

	if styled {
		heading := fmt.Sprintf("Food requirements of %d animals", roster.Len())
		if _, err := fmt.Fprintln(out, headingStyle.Render(heading)); err != nil {
			return err
		}
	}

	return roster.PrintAll()
}
