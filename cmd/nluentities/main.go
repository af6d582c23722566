// Package main provides the nluentities binary entry point.
// nluentities recognizes builtin entities (numbers, ordinals, percentages,
// amounts of money, temperatures, durations, dates and times) in text
// across six languages.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/c360studio/nluentities/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "nluentities"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Builtin entity recognition for text",
		Long: `nluentities recognizes builtin entities in natural language text:
numbers, ordinals, percentages, amounts of money, temperatures,
durations, and dates and times.

Six languages are supported: German, English, Spanish, French,
Japanese and Korean. Extraction runs locally through the bundled
rule engine, or remotely against a running nluentities service.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(parseCmd(&configPath, &logLevel))
	cmd.AddCommand(kindsCmd())
	cmd.AddCommand(serveCmd(&configPath, &logLevel))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// loadConfig resolves configuration from an explicit path or the layered
// loader, applying a command line log level override.
func loadConfig(configPath, logLevel string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.NewLoader(nil).Load()
		if err != nil {
			return nil, err
		}
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
