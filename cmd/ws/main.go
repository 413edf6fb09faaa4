package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Werneck0live/empresas-api/internal/broker"
	"github.com/Werneck0live/empresas-api/internal/config"
	"github.com/Werneck0live/empresas-api/internal/middleware"
	"github.com/Werneck0live/empresas-api/internal/ws"
)

// cmd/ws/main.go: repassa os eventos de empresa da fila para clientes websocket
func main() {
	wscfg, err := config.LoadWSConfig()
	if err != nil {
		slog.Error("config_error", "err", err)
		os.Exit(1)
	}

	log := config.InitLogger(wscfg.LogLevel()).With("svc", "ws")
	hub := ws.NewHub(log)
	go hub.Run()

	// Conecta no Rabbit e começa a consumir
	cons, err := broker.NewConsumer(wscfg.RabbitURI, wscfg.RabbitQueue, "ws-consumer", wscfg.ConsumerPrefetch)
	if err != nil {
		log.Error("rabbit_consumer_start_error", "err", err)
		os.Exit(1)
	}
	defer func() { _ = cons.Close() }()
	log.Info("rabbit_consumer_started", "queue", wscfg.RabbitQueue)

	// encaminha mensagens do Rabbit para o hub
	go func() {
		for d := range cons.Deliveries() {
			hub.Broadcast(d.Body)
		}
		log.Warn("deliveries_channel_closed")
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws", ws.NewHandler(hub, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:              wscfg.Addr,
		Handler:           middleware.Logging(log, mux),
		ReadHeaderTimeout: wscfg.ReadHeaderTimeout,
	}

	go func() {
		log.Info("ws_listen", "addr", wscfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_server_error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), wscfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctx)
	hub.Stop()

	log.Info("stopped")
}
