package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cashfy/backend/internal/advisor"
	"github.com/cashfy/backend/internal/auth"
	"github.com/cashfy/backend/internal/config"
	v1 "github.com/cashfy/backend/internal/controllers/v1"
	"github.com/cashfy/backend/internal/learning"
	"github.com/cashfy/backend/internal/models"
	"github.com/cashfy/backend/internal/notify"
	"github.com/cashfy/backend/internal/rates"
	"github.com/cashfy/backend/internal/router"
	"github.com/cashfy/backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run() error {
	cfg, err := config.Load(gin.IsDebugging())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if dsn := cfg.PostgresDSN(); dsn != "" {
		err = models.ConnectPostgres(dsn)
	} else {
		// Create data directory
		err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
		if err != nil {
			return err
		}

		err = models.Connect(cfg.DBPath)
	}
	if err != nil {
		return err
	}

	lessons, err := learning.Load()
	if err != nil {
		return err
	}

	var opts []session.Option
	if cfg.AMQPURL != "" {
		sink, err := notify.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer sink.Close()

		opts = append(opts, session.WithSink(sink))
		log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing gamification events")
	}

	cache := rates.NewCache(
		rates.Chain{rates.NewFrankfurter(cfg.FrankfurterURL), rates.NewCBR(cfg.CBRURL)},
		rates.NewCoinGecko(cfg.CoinGeckoURL),
		cfg.RateTTL,
	)

	refresher, err := rates.NewRefresher(cache, cfg.RatePairs, cfg.RateRefresh)
	if err != nil {
		return err
	}
	refresher.Start()
	defer refresher.Stop()

	analyzer, err := advisor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}

	sessions := session.NewManager(models.Store{}, lessons, opts...)

	r, teardown, err := router.Config(cfg.APIURL, sessions.Collectors()...)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(v1.Controller{
		Sessions: sessions,
		Auth:     auth.NewService(cfg.JWTSecret, cfg.JWTTTL),
		Rates:    cache,
		Advisor:  analyzer,
		Mailer:   &cfg.SMTP,
	}, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("backend startup complete")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
