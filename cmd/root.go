// Package cmd implements the portfolio command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio website",
	Long: `portfolio serves a single-page personal portfolio: hero, about, skills
with progress rings, projects and a contact form. Navigation highlighting,
theme and menu toggles are rendered server side and swapped in with HTMX.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the configuration, applying --verbose.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.LogLevel, cfg.Mode == config.ModeRelease)
}

func loadContent(cfg *config.Config) (*content.Content, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return c, nil
}
