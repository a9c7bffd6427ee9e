package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	searchhttp "github.com/ray66rus/amadeus-searcher/internal/adapter/http"
	"github.com/ray66rus/amadeus-searcher/internal/amadeus"
	"github.com/ray66rus/amadeus-searcher/internal/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the search API as an HTTP server",
		Long: `Expose the offer and cheapest-dates searches over HTTP. Requests are
forwarded to the Amadeus API; raw results are returned to the caller
instead of being written to the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("")
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			return runServer(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (defaults to SERVER_PORT)")

	return cmd
}

func runServer(cfg *config.Config) error {
	client := amadeus.NewClient(amadeus.Config{
		ClientID:          cfg.Amadeus.ClientID,
		ClientSecret:      cfg.Amadeus.ClientSecret,
		BaseURL:           cfg.Amadeus.BaseURL,
		Timeout:           cfg.Amadeus.HTTPTimeout,
		MaxRetries:        cfg.Amadeus.MaxRetries,
		RequestsPerSecond: cfg.Amadeus.RequestsPerSecond,
		Burst:             cfg.Amadeus.Burst,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e)
	searchhttp.RegisterRoutes(e, searchhttp.NewSearchHandler(client))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("Request handled")
			return nil
		},
	}))
}
