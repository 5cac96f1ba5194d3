package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventLottery/internal/config"
	"eventLottery/internal/geo"
	"eventLottery/internal/http-server/handlers/event/getJoinableEvents"
	"eventLottery/internal/http-server/handlers/event/getWaitlistCount"
	"eventLottery/internal/http-server/handlers/lottery/drawLottery"
	"eventLottery/internal/http-server/handlers/lottery/getLotteryCriteria"
	"eventLottery/internal/http-server/handlers/lottery/reclaimSelections"
	"eventLottery/internal/http-server/handlers/lottery/refillSlots"
	"eventLottery/internal/http-server/handlers/lottery/runLottery"
	"eventLottery/internal/http-server/handlers/registration/acceptInvitation"
	"eventLottery/internal/http-server/handlers/registration/declineInvitation"
	"eventLottery/internal/http-server/handlers/registration/registerEvent"
	"eventLottery/internal/http-server/handlers/waitlist/joinWaitlist"
	"eventLottery/internal/http-server/handlers/waitlist/leaveWaitlist"
	"eventLottery/internal/http-server/middleware/mwlogger"
	"eventLottery/internal/lib/logger/handlers/slogpretty"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/service/eventquery"
	"eventLottery/internal/service/lottery"
	"eventLottery/internal/service/registration"
	"eventLottery/internal/service/waitlist"
	"eventLottery/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event lottery", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	waitlistCtl := waitlist.New(log, storage)
	registrationCtl := registration.New(log, storage, geo.StaticVerifier{Allow: false})
	queries := eventquery.New(log, storage, cfg.Lottery.DefaultCriteria)
	engine := lottery.New(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	// Entrant-facing routes.
	router.Post("/events/{id}/waitlist", joinWaitlist.New(log, waitlistCtl))
	router.Delete("/events/{id}/waitlist", leaveWaitlist.New(log, waitlistCtl))
	router.Post("/events/{id}/register", registerEvent.New(log, registrationCtl))
	router.Post("/events/{id}/invitation/accept", acceptInvitation.New(log, registrationCtl))
	router.Post("/events/{id}/invitation/decline", declineInvitation.New(log, registrationCtl))

	router.Get("/events/joinable", getJoinableEvents.New(log, queries))
	router.Get("/events/{id}/waitlist/count", getWaitlistCount.New(log, queries))
	router.Get("/lottery/criteria", getLotteryCriteria.New(log, queries))

	// Organizer-facing routes. Reclaim and refill are explicit actions,
	// typically invoked in sequence.
	router.Post("/events/{id}/lottery/run", runLottery.New(log, engine))
	router.Post("/events/{id}/lottery/draw", drawLottery.New(log, engine))
	router.Post("/events/{id}/lottery/refill", refillSlots.New(log, engine))
	router.Post("/events/{id}/lottery/reclaim", reclaimSelections.New(log, engine, cfg.Lottery.ResponseDeadline))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
