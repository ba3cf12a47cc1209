// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/internal/cache"
	"github.com/neurobloom/coach-engine/internal/coach"
	"github.com/neurobloom/coach-engine/internal/pubmed"
	"github.com/neurobloom/coach-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the coach HTTP API",
	Long: `Serve runs the HTTP API used by the web frontend. It exposes a health
endpoint, the question endpoint, and the topic directory.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()

	eng := coach.New(store, pubmed.NewClient(cfg.Search, log), cfg.Search.MaxResults, log)

	router := server.NewRouter(server.RouterConfig{
		Engine:       eng,
		AllowOrigins: cfg.Server.AllowOrigins,
		Log:          log,
	})

	log.Info("listening", zap.String("addr", cfg.Server.Addr))
	return router.Run(cfg.Server.Addr)
}
