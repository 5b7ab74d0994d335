package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"data-exporter/core/loader"
	"data-exporter/core/middleware"
	"data-exporter/feature/integrity"
	"data-exporter/feature/wiki"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Data Exporter API
// @version 1.0
// @description Read-only API over the exported wiki documents and the exporter's integrity checks.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wiki documents over HTTP",
	Long:  `Starts the HTTP server and initializes all enabled features. Game data is parsed on the first request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		zap.ReplaceGlobals(a.logger)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		checks, err := a.integrity(cmd.Context())
		if err != nil {
			return err
		}

		// Feature Loader
		mgr := loader.NewManager(a.logger)
		mgr.Register(wiki.NewFeature(a.wiki, true))
		mgr.Register(integrity.NewFeature(checks, true))

		// RayID must be first to trace everything
		app.Use(middleware.RayID())
		app.Use(middleware.RequestLogger(a.logger))
		app.Use(middleware.Auth(a.cfg.Server.ApiKey))
		if !a.cfg.Server.IsProtected() {
			a.logger.Warn("API key not set, requests are not authenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(a.cfg.Server.Address())
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}
		a.logger.Info("Shutting down server...")
		a.logStats()
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
