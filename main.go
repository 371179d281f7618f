package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/pollgate/cliparse"
	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/router"
	"github.com/danielhkuo/pollgate/store"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	candidates, err := models.LoadCandidates(cfg.CandidatesFile)
	if err != nil {
		slog.Error("candidate list failed to load", "error", err)
		os.Exit(1)
	}

	// Open the durable snapshot store
	st, err := store.Open(cfg.StoreType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("store open failed", "error", err, "type", cfg.StoreType)
		os.Exit(1)
	}
	defer st.Close()

	led, err := ledger.Open(candidates, st)
	if err != nil {
		slog.Error("ledger load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Ledger ready", "candidates", len(candidates), "voters", led.VoterCount())

	// Create router
	mux := router.NewRouter(led, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "pow_bits", cfg.PowBits, "demo", cfg.DemoMode)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
