package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bkaradeniz/go-exam-schedule/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "examsched",
	Short: "University final exam scheduler",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig falls back to defaults when no config file is present.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return nil, err
	}
	return config.Load(cfgPath)
}
