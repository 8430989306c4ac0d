package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pixelgeom/internal/config"
	"github.com/robert-malhotra/go-pixelgeom/internal/logging"
	"github.com/robert-malhotra/go-pixelgeom/internal/nexus"
	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "diagnose",
	Short:        "Inspect detector banks in a NeXus/HDF5 file",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "instrument description (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(dumpCmd)
}

// loadConfig returns the configuration named by --config, or the defaults.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		cfg := config.DefaultConfig()
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(configPath)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	return logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, level)
}

// session is an open file plus the configuration it is read with.
type session struct {
	file   *nexus.File
	cfg    *config.Config
	logger *logging.Logger
	paths  pixel.PathMap
}

func openSession(cmd *cobra.Command, filename string) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd, cfg).WithFile(filename)

	f, err := nexus.Open(filename)
	if err != nil {
		return nil, err
	}

	paths, err := pixel.Discover(f,
		pixel.WithRoot(cfg.Instrument.Root),
		pixel.WithDiscoverLogger(logger.Logger),
	)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("discover: %w", err)
	}
	logger.Debug("discovery complete", "paths", len(paths))

	return &session{file: f, cfg: cfg, logger: logger, paths: paths}, nil
}

func (s *session) Close() error {
	return s.file.Close()
}

// bind builds the instrument described by the session's configuration.
func (s *session) bind() (*pixel.Instrument, error) {
	return bindInstrument(s.file, s.paths, s.cfg, s.logger)
}

func bindInstrument(r pixel.DatasetReader, paths pixel.PathMap, cfg *config.Config, logger *logging.Logger) (*pixel.Instrument, error) {
	b, err := pixel.NewBinder(r, cfg.Instrument.Layout(), pixel.WithBinderLogger(logger.Logger))
	if err != nil {
		return nil, err
	}
	return b.Bind(paths)
}
