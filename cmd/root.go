package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"surveyor/internal/app"
	"surveyor/internal/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	envFile string
	verbose bool
	apiURL  string

	application *app.App
)

// skipAppAnnotation marks commands that run without the application wiring.
const skipAppAnnotation = "surveyor/skip-app"

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "surveyor",
	Short: "A CLI client for answering surveys and reading their results",
	Long: `Surveyor talks to a survey API: log in or sign up, answer a survey
and show its current result. The session is kept between invocations.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func Execute() {
	err := execute()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and releases the application on every path,
// including failed commands, which skip cobra's post-run hooks.
func execute() error {
	defer func() {
		if err := closeApp(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close application: %v\n", err)
		}
	}()
	return rootCmd.Execute()
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/surveyor/config.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the configuration")
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringVar(&apiURL, "api-url", "", "survey API base URL (overrides api.url)")

	_ = viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	config.SetDefaults(viper.GetViper())
}

// initConfig reads the dotenv and config files into the global viper instance.
// Missing files are not an error; an explicit --config that cannot be read is.
func initConfig() error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	viper.AddConfigPath(filepath.Join(home, ".config", "surveyor"))
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	// Read config file silently (ignore error if config file doesn't exist)
	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func initApp(cmd *cobra.Command, _ []string) error {
	if _, skip := cmd.Annotations[skipAppAnnotation]; skip {
		return nil
	}

	if err := initConfig(); err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if err := closeApp(); err != nil {
		return err
	}

	var opts []app.Option
	if verbose {
		opts = append(opts, app.WithVerbose(true))
	}

	application, err = app.NewApp(commandContext(cmd), cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return nil
}

func closeApp() error {
	if application == nil {
		return nil
	}
	err := application.Close()
	application = nil
	return err
}

// commandContext returns the command's context, falling back to Background
// when the command was run without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
