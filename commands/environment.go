package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ebs-image-builder/config"
	"ebs-image-builder/driverset"
	"ebs-image-builder/ephemeral"
	"ebs-image-builder/publisher"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

// environment is what every subcommand needs to talk to one region
type environment struct {
	logger *clog.Logger
	config config.Config
	ds     driverset.RegionDriverSet
}

func (e *environment) publisherConfig() publisher.Config {
	return publisher.NewConfig(e.config)
}

func newLogger(w io.Writer, debug bool) *clog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return clog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func readConfig(path string) (config.Config, error) {
	configFile, err := os.Open(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("opening config file: %w", err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	c, err := config.NewFromReader(configFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return c, nil
}

func loadEnvironment(cmd *cobra.Command, opts *globalOptions) (*environment, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)

	c, err := readConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	removeKeyFilesOnSignal(logger)

	logger.Infof("using region %s", c.Region.Name)
	return &environment{
		logger: logger,
		config: c,
		ds:     driverset.NewRegionDriverSet(logger, c.Region.Credentials),
	}, nil
}

// removeKeyFilesOnSignal deletes local private keys when the process is
// interrupted, since deferred cleanup does not run on a signal
func removeKeyFilesOnSignal(logger *clog.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		s := <-signals
		logger.Warnf("received %s, removing private key files; cloud resources may be left behind", s)
		if err := ephemeral.RemoveKeyFiles(); err != nil {
			logger.Errorf("removing private key files: %s", err)
		}
		os.Exit(130)
	}()
}

func fileExists(path string, what string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s", what, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s at %s is a directory", what, path)
	}
	return nil
}
