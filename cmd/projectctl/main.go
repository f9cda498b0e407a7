// Package main implements projectctl, a command-line client for the project table.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/project-manager/internal/config"
	"github.com/ytget/project-manager/internal/logging"
	"github.com/ytget/project-manager/internal/projects"
	"github.com/ytget/project-manager/internal/store"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd(connectStore).Execute(); err != nil {
		os.Exit(1)
	}
}

// storeOpener connects to the table and returns a close function
type storeOpener func(ctx context.Context, opts store.Options, logger *zap.Logger) (store.Store, func() error, error)

func connectStore(ctx context.Context, opts store.Options, logger *zap.Logger) (store.Store, func() error, error) {
	kv, err := store.Connect(ctx, opts, logger)
	if err != nil {
		return nil, nil, err
	}
	return kv, kv.Close, nil
}

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	url        string
	bucket     string
	timeout    time.Duration
}

// session is an open controller with its list already loaded
type session struct {
	ctrl   *projects.Controller
	ctx    context.Context
	logger *zap.Logger
	close  func()
}

func newRootCmd(open storeOpener) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "projectctl",
		Short: "Manage projects in the shared project table",
		Long: `projectctl lists, adds, edits and deletes project records in the same
JetStream key-value table the desktop application uses.

Configuration is read from the config file and PROJECTS_* environment
variables; the flags below override both.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&opts.url, "url", "", "NATS server URL")
	rootCmd.PersistentFlags().StringVar(&opts.bucket, "bucket", "", "key-value bucket name")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout")

	connect := func(cmd *cobra.Command) (*session, error) {
		return opts.connect(cmd.Context(), open)
	}

	rootCmd.AddCommand(newListCmd(connect))
	rootCmd.AddCommand(newAddCmd(connect))
	rootCmd.AddCommand(newEditCmd(connect))
	rootCmd.AddCommand(newDeleteCmd(connect))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// load reads the configuration and applies flag overrides
func (o *globalOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.url != "" {
		cfg.Store.URL = o.url
	}
	if o.bucket != "" {
		cfg.Store.Bucket = o.bucket
	}
	if o.timeout > 0 {
		cfg.Store.RequestTimeout = o.timeout
	}
	return cfg, nil
}

// connect opens the store and loads the project list
func (o *globalOptions) connect(parent context.Context, open storeOpener) (*session, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, cfg.Store.RequestTimeout)

	st, closeStore, err := open(ctx, store.Options{
		URL:            cfg.Store.URL,
		Bucket:         cfg.Store.Bucket,
		ConnectTimeout: cfg.Store.RequestTimeout,
	}, logger.Named("store"))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open project table: %w", err)
	}

	s := &session{
		ctrl:   projects.NewController(st, logger.Named("projects")),
		ctx:    ctx,
		logger: logger,
		close: func() {
			if closeStore != nil {
				if err := closeStore(); err != nil {
					logger.Warn("Failed to close store", zap.Error(err))
				}
			}
			cancel()
			_ = logger.Sync()
		},
	}

	if err := s.ctrl.Refresh(ctx); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}
