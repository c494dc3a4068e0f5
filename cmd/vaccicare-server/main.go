package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaccicare/vaccicare/internal/config"
	"github.com/vaccicare/vaccicare/internal/domain/appointment"
	"github.com/vaccicare/vaccicare/internal/domain/dashboard"
	"github.com/vaccicare/vaccicare/internal/domain/identity"
	"github.com/vaccicare/vaccicare/internal/domain/patient"
	"github.com/vaccicare/vaccicare/internal/domain/vaccination"
	"github.com/vaccicare/vaccicare/internal/domain/vaccine"
	"github.com/vaccicare/vaccicare/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vaccicare-server",
		Short: "Vaccination management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the vaccination API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// catalogCmd prints the vaccine catalog a fresh server starts with.
func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the seeded vaccine catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := vaccine.NewService(vaccine.NewMemRepo())
			items, err := svc.ListActive(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Stores. Everything lives in process memory and is lost on restart.
	patientSvc := patient.NewService(patient.NewMemRepo())
	vaccineSvc := vaccine.NewService(vaccine.NewMemRepo())
	vaccinationSvc := vaccination.NewService(vaccination.NewMemRepo(), patientSvc, vaccineSvc)
	appointmentSvc := appointment.NewService(appointment.NewMemRepo(), patientSvc)
	identitySvc := identity.NewService(identity.NewMemRepo())
	dashboardSvc := dashboard.NewService(vaccinationSvc, patientSvc, appointmentSvc)

	if cfg.SeedDoctorUsername != "" {
		u := &identity.User{
			Username:  cfg.SeedDoctorUsername,
			FirstName: cfg.SeedDoctorFirst,
			LastName:  cfg.SeedDoctorLast,
			Role:      identity.RoleDoctor,
		}
		if cfg.SeedDoctorLicense != "" {
			u.LicenseNumber = &cfg.SeedDoctorLicense
		}
		if err := identitySvc.Register(context.Background(), u, cfg.SeedDoctorPassword); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed doctor account")
		}
		logger.Info().Str("username", u.Username).Int("id", u.ID).Msg("seeded doctor account")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	patient.NewHandler(patientSvc).RegisterRoutes(api)
	vaccine.NewHandler(vaccineSvc).RegisterRoutes(api)
	vaccination.NewHandler(vaccinationSvc).RegisterRoutes(api)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Bool("tls", cfg.TLSEnabled).Msg("starting server")
		var err error
		if cfg.TLSEnabled {
			err = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
