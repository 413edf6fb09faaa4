package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Werneck0live/empresas-api/internal/admin"
	"github.com/Werneck0live/empresas-api/internal/broker"
	"github.com/Werneck0live/empresas-api/internal/config"
	"github.com/Werneck0live/empresas-api/internal/handlers"
	"github.com/Werneck0live/empresas-api/internal/middleware"
	"github.com/Werneck0live/empresas-api/internal/service"
)

// cmd/api/main.go
func main() {
	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()

	cfg, err := config.Load() // env + .env
	if err != nil {
		slog.Error("config_error", "err", err)
		os.Exit(1)
	}

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	log := config.InitLogger(cfg.LogLevel())
	log.Info("starting", "port", cfg.Port, "store", cfg.StoreDriver, "events", cfg.EventsEnabled())

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Error("store_open_error", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	logic := service.NewEmpresaLogic(store, log)

	if *task != "" {
		code := runTask(*task, logic, log)
		closeStore()
		os.Exit(code) // encerra o processo sem subir HTTP
	}

	// publisher (Rabbit) - opcional
	var pub handlers.Publisher
	if cfg.EventsEnabled() {
		p, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
		if err != nil {
			log.Error("rabbitmq_connect_error", "err", err)
			closeStore()
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	}

	h := handlers.NewEmpresaHandler(logic, pub, log)
	mux := http.NewServeMux()
	h.Routes(mux)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Logging(log, mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		log.Info("http_listen", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful_shutdown_error", "err", err)
	}
	log.Info("stopped")
}

// runTask executa a tarefa administrativa e devolve o exit code.
func runTask(task string, store admin.Store, log *slog.Logger) int {
	switch task {
	case "seed":
		n, err := admin.SeedEmpresas(context.Background(), store, log)
		if err != nil {
			log.Error("seed_failed", "err", err)
			return 1
		}
		log.Info("seed_done", "created", n)
		return 0
	default:
		log.Error("unknown_admin_task", "task", task)
		return 2
	}
}
