/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/josephgoksu/roadmapper/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// shutdownTimeout bounds graceful shutdown of the HTTP API.
const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve roadmap generation over HTTP",
	Long: `Start a JSON HTTP API for web clients.

Endpoints:
  GET  /api/health   liveness
  GET  /api/info     version, provider and model
  POST /api/roadmap  {"topic": "..."} -> roadmap JSON

Each request makes its own provider call; nothing is stored.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "listen port (default 8080, or server.port)")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := loadDeps(ctx, "serve", false)
	if err != nil {
		return err
	}
	defer deps.Close()

	srv, err := server.New(server.Options{
		Port:           deps.settings.Server.Port,
		AllowedOrigins: deps.settings.Server.AllowedOrigins,
		Generator:      deps.generator,
		Logger:         deps.log,
		Version:        version,
		Provider:       string(deps.settings.LLM.Provider),
		Model:          deps.settings.LLM.Model,
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	srv.Start(&wg, errChan)
	fmt.Fprintf(cmd.ErrOrStderr(), "Roadmapper API listening on %s\n", srv.Addr())

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	deps.log.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown API server: %w", err)
	}
	wg.Wait()
	return nil
}
