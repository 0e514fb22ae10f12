package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/config"
	"github.com/DPANET/HomeyPrayersWeb/internal/db"
	"github.com/DPANET/HomeyPrayersWeb/internal/notify"
	"github.com/DPANET/HomeyPrayersWeb/internal/redis"
	"github.com/DPANET/HomeyPrayersWeb/internal/timings"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg.Debug)

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}
	store := db.NewStore(db.DB)

	// redis backs the timings cache; the app degrades gracefully without it
	if cfg.RedisAddress != "" {
		redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	svc := timings.NewService(timings.NewClient(cfg.AladhanBaseURL))

	// optional MQTT announcements for home displays
	if cfg.MQTTBrokerURL != "" {
		announcer, err := notify.NewAnnouncer(cfg.MQTTBrokerURL, "homey-prayers-web")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init")
		}
		defer announcer.Close()

		tz, err := time.LoadLocation(cfg.DefaultTimezone)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", cfg.DefaultTimezone).Msg("bad DEFAULT_TIMEZONE")
		}

		scheduler := notify.NewScheduler(svc, announcer, timings.Query{
			Latitude:  cfg.DefaultLatitude,
			Longitude: cfg.DefaultLongitude,
			Method:    cfg.DefaultMethod,
			City:      cfg.DefaultCity,
		}, tz)
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("scheduler init")
		}
		defer scheduler.Stop()
	}

	// set up gin router
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	RegisterRoutes(r, cfg, store, svc)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatal().Err(err).Int("port", cfg.Port).Msg("listen")
	}

	// SIGINT drains in-flight connections and exits 0
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", ln.Addr().String()).Int("browser_port", cfg.BrowserPort).Msg("listening")
	if err := serve(ctx, &http.Server{Handler: r}, ln); err != nil {
		log.Error().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight
// requests before returning.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
