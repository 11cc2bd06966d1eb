package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"surveyor/internal/adapters/filesystem"
	"surveyor/internal/adapters/terminal"
	"surveyor/internal/config"
	"surveyor/internal/domain"
	"surveyor/internal/logging"
	configservice "surveyor/internal/services/config"
)

// App contains all application dependencies.
type App struct {
	// Configuration
	Config         *config.Config
	ConfigProvider domain.ConfigProvider

	// Session storage and the factory for remote use-cases
	AccountStore   domain.AccountStore
	UseCaseFactory *UseCaseFactory
	closeStoreFunc func() error

	// File operations
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	PasswordReader domain.PasswordReader

	// Logging
	Logger *slog.Logger
}

// Options holds process-level settings that do not come from the config file.
type Options struct {
	Verbose   bool
	LogOutput io.Writer
	Stdin     io.Reader
}

// Option is a functional option for configuring the App.
type Option func(*Options)

// WithVerbose forces debug logging.
func WithVerbose(verbose bool) Option {
	return func(opts *Options) {
		opts.Verbose = verbose
	}
}

// WithLogOutput redirects log output, which defaults to stderr.
// Password prompts are written to the same writer.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithStdin replaces the reader used for password prompts.
func WithStdin(r io.Reader) Option {
	return func(opts *Options) {
		opts.Stdin = r
	}
}

// NewApp creates a new App from a loaded configuration, wiring all dependencies.
func NewApp(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &Options{
		Stdin: os.Stdin,
	}
	for _, opt := range opts {
		opt(options)
	}

	logConfig := logging.DefaultConfig()
	if cfg.Log.Level != "" {
		logConfig.Level = logging.LogLevel(cfg.Log.Level)
	}
	if cfg.Log.Format != "" {
		logConfig.Format = cfg.Log.Format
	}
	if options.Verbose {
		logConfig.Level = logging.LevelDebug
	}
	if options.LogOutput != nil {
		logConfig.Output = options.LogOutput
	}
	logger := logging.New(logConfig)

	fs := filesystem.New()
	configProvider := configservice.NewProvider(fs)

	store, closeStore, err := newAccountStore(ctx, cfg.Storage, configProvider, fs, logger)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "Initializing surveyor",
		"apiURL", cfg.API.URL,
		"storage", cfg.Storage.Driver,
		"logLevel", string(logConfig.Level))

	return &App{
		Config:         cfg,
		ConfigProvider: configProvider,
		AccountStore:   store,
		UseCaseFactory: NewUseCaseFactory(cfg.API, store, logger),
		closeStoreFunc: closeStore,
		FileSystem:     fs,
		PasswordReader: terminal.NewAdapter(options.Stdin, logConfig.Output),
		Logger:         logger,
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	if a.closeStoreFunc == nil {
		return nil
	}
	return a.closeStoreFunc()
}
