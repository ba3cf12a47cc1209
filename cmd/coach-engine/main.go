// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the coach-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/internal/secrets"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the coach-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "coach-engine",
	Short: "Evidence-grounded answers to wellbeing questions",
	Long: `coach-engine answers questions about neurodiversity and mental wellbeing.
Each answer combines a curated knowledge base, links to national health
guidance, and live bibliographic search, with crisis screening in front
of everything.

Ask a single question with "ask", or run the HTTP API with "serve".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./coach-engine.yaml or ~/.config/coach-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coach-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coach-engine"))
		}
	}

	viper.SetEnvPrefix("COACH_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, the config file, and secrets.
func loadConfig() types.CoachConfig {
	cfg := types.Defaults()

	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetString("search.user_agent"); v != "" {
		cfg.Search.UserAgent = v
	}
	if v := viper.GetInt("search.max_results"); v > 0 {
		cfg.Search.MaxResults = v
	}
	if v := viper.GetDuration("search.min_interval"); v > 0 {
		cfg.Search.MinInterval = v
	}
	if v := viper.GetString("search.ncbi_api_key"); v != "" {
		cfg.Search.NCBIAPIKey = v
	} else if v, ok := loadedSecrets["ncbi-api-key"]; ok {
		cfg.Search.NCBIAPIKey = v
	}

	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetInt("cache.capacity"); v > 0 {
		cfg.Cache.Capacity = v
	}

	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetStringSlice("server.allow_origins"); len(v) > 0 {
		cfg.Server.AllowOrigins = v
	}

	return cfg
}

// newLogger builds the process logger. Verbose switches to development
// output with debug level.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
