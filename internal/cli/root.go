package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/harun/toolshed/internal/config"
	"github.com/harun/toolshed/internal/logger"
	"github.com/harun/toolshed/pkg/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// options holds the global flags shared by every subcommand
type options struct {
	cfgFile  string
	envFile  string
	logLevel string
}

// session is the per-invocation state built before a subcommand runs
type session struct {
	loader *config.Loader
	cfg    *config.Config
	log    *logger.Logger
}

// openStore opens the configured tool database
func (s *session) openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, store.Config{
		Path:   s.cfg.Storage.Path,
		Logger: s.log.GetZerolog(),
	})
}

func (s *session) close() {
	if s.log != nil {
		s.log.Close()
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}
	sess := &session{}

	rootCmd := &cobra.Command{
		Use:   "toolshed",
		Short: "Toolshed - tool lending inventory",
		Long: `Toolshed keeps the inventory of a tool lending library.
It stores tools in a local database, imports and exports JSON or YAML
catalogs, and prints the tool listing.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return sess.setup(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			sess.close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.toolshed/toolshed.json)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with TOOLSHED_* overrides")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	// Version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	rootCmd.AddCommand(
		newListCmd(sess),
		newShowCmd(sess),
		newAddCmd(sess),
		newRemoveCmd(sess),
		newSeedCmd(sess),
		newImportCmd(sess),
		newExportCmd(sess),
		newStatusCmd(sess),
		newConfigureCmd(sess),
	)

	return rootCmd
}

// setup loads the environment file, configuration and logger
func (s *session) setup(opts *options) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}

	s.loader = config.NewLoader(opts.cfgFile)
	cfg, err := s.loader.Load()
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	s.cfg = cfg

	log, err := logger.New(logger.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Console:   cfg.Logging.Console,
		Pretty:    cfg.Logging.Pretty,
		Redaction: cfg.Logging.Redaction,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	s.log = log

	return nil
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// GetRootCmd returns a fresh root command for testing
func GetRootCmd() *cobra.Command {
	return NewRootCmd()
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
