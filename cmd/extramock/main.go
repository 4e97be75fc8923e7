// extramock is a mock backend for the hotel onboarding flow: auth, property
// search, contact verification and room setup, plus a control API for
// switching response scenarios at runtime.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/extramock/extramock/pkg/config"
	"github.com/extramock/extramock/pkg/engine"
	"github.com/extramock/extramock/pkg/logging"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type serveFlags struct {
	configPath string
	host       string
	port       int
	delayMs    int
	logLevel   string
	logFormat  string
}

var serveFlagVals serveFlags

var rootCmd = &cobra.Command{
	Use:   "extramock",
	Short: "Mock backend for the hotel onboarding flow",
	Long: `extramock serves a deterministic mock of the hotel onboarding API:
registration and login with OTP, property search and preview, contact
verification, and the room-setup step. Every endpoint can be switched to
a named forced-error response at runtime via the control API, and an
artificial response delay can be applied globally.`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock server (default command)",
	Example: `  # Start on the default port
  extramock serve

  # Custom port, no artificial delay
  extramock serve --port 8080 --delay 0

  # Load settings from a file, JSON logs
  extramock serve --config extramock.yaml --log-format json`,
	RunE: runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("extramock %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		f := &serveFlagVals
		cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
		cmd.Flags().StringVar(&f.host, "host", "", "Bind address (overrides config)")
		cmd.Flags().IntVarP(&f.port, "port", "p", 0, "HTTP port (overrides config)")
		cmd.Flags().IntVar(&f.delayMs, "delay", -1, "Artificial response delay in ms (overrides config)")
		cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
		cmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
	}
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	f := &serveFlagVals

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.port != 0 {
		cfg.Port = f.port
	}
	if f.delayMs >= 0 {
		cfg.DelayMs = f.delayMs
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv, err := engine.New(cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
