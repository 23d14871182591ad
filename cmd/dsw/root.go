package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dsw/internal/core"
	"dsw/internal/detect"
	"dsw/internal/domain"
	"dsw/internal/tui"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	// Global flags
	configDir string
	dataDir   string
)

// rootCmd represents the base command; without a subcommand it launches
// the interactive selector.
var rootCmd = &cobra.Command{
	Use:   "dsw",
	Short: "Generate scripts that switch Linux desktop environments",
	Long: `dsw decides what has to change to migrate an Arch-based system from one
desktop environment to another and writes a shell script that performs the
change. Nothing is installed, removed, or enabled at generation time: you
review the script and run it yourself from a TTY outside the graphical
session.

Run 'dsw' without arguments for the interactive selector, or use
'dsw generate' for non-interactive generation.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/dsw)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default: ~/.local/share/dsw)")
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}
	defer svc.Close()

	currentRaw := detect.Raw()
	currentID, err := detect.Current()
	if err != nil {
		if !errors.Is(err, domain.ErrUnknownDesktop) {
			return err
		}
		currentID = "" // Generate an install-only script
	}

	result, err := tui.Run(svc, currentID, currentRaw)
	if err != nil {
		return err
	}

	if result != nil {
		printNextSteps(result.Path)
	}
	return nil
}

func printNextSteps(path string) {
	fmt.Printf("Script written to %s\n\n", path)
	fmt.Println("Next steps: review the script, switch to a TTY, then run:")
	fmt.Printf("  sh %s\n", path)
}

// initService creates and initializes the core service
func initService() (*core.Service, error) {
	cfg, err := getServiceConfig()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return core.NewService(cfg)
}

// getServiceConfig returns the service configuration with defaults.
// Returns an error if UserHomeDir fails and defaults are needed.
func getServiceConfig() (core.ServiceConfig, error) {
	cfg := core.ServiceConfig{
		ConfigDir: configDir,
		DataDir:   dataDir,
	}

	if cfg.ConfigDir != "" && cfg.DataDir != "" {
		return cfg, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return core.ServiceConfig{}, fmt.Errorf("home directory: %w", err)
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = filepath.Join(homeDir, ".config", "dsw")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(homeDir, ".local", "share", "dsw")
	}

	return cfg, nil
}
