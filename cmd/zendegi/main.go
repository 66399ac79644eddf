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

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	aladhanadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/aladhan"
	hfadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/huggingface"
	sqliteadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/sqlite"
	supabaseadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/supabase"
	httphandler "github.com/pouyakarimi/zendegi/internal/adapter/driving/http"
	"github.com/pouyakarimi/zendegi/internal/application"
	"github.com/pouyakarimi/zendegi/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration. Missing credentials are not fatal; services
	// degrade per-backend instead.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"backend_configured", cfg.HasSupabase(),
		"inference_configured", cfg.HasInference(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the local database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on the writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire local stores.
	chatHistory := sqliteadapter.NewChatHistoryRepo(db)
	settings := sqliteadapter.NewSettingsRepo(db)

	// 6. Wire remote adapters. A nil adapter disables its services; they
	// answer with their unavailable signal instead of failing here.
	var (
		supabase *supabaseadapter.Client
		hf       *hfadapter.Client
	)
	if cfg.HasSupabase() {
		supabase = supabaseadapter.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
		slog.Info("backend client created", "url", cfg.SupabaseURL)
	} else {
		slog.Info("no backend credentials configured, data relays disabled")
	}
	if cfg.HasInference() {
		hf = hfadapter.NewClient(cfg.InferenceURL, cfg.InferenceKey, cfg.STTModelFa, cfg.STTModelEn)
		slog.Info("inference client created", "chat_model", cfg.ChatModel)
	} else {
		slog.Info("no inference key configured, assistant will answer with its unavailable message")
	}
	prayerClient := aladhanadapter.NewClient(cfg.PrayerAPIURL)

	// Typed-nil interfaces would dodge the services' nil checks, so only
	// assign through the service constructors when the client exists.
	authSvc := application.NewAuthService(nilIfAbsentAuth(supabase))
	financeSvc := application.NewFinanceService(nilIfAbsentFinance(supabase))
	healthSvc := application.NewHealthService(nilIfAbsentHealth(supabase))
	calendarSvc := application.NewCalendarService(nilIfAbsentCalendar(supabase))
	chatSvc := application.NewChatService(nilIfAbsentGenerator(hf), chatHistory, cfg.ChatModel)
	transcribeSvc := application.NewTranscriptionService(nilIfAbsentTranscriber(hf))
	religionSvc := application.NewReligionService(prayerClient, settings)
	religionSvc.LoadLocation(ctx)
	snapshots := application.NewSnapshotLoader(financeSvc, healthSvc, calendarSvc)

	// 7. Create HTTP handler with all routes and middleware.
	apiHandler := httphandler.NewHandler(
		authSvc,
		financeSvc,
		healthSvc,
		calendarSvc,
		chatSvc,
		transcribeSvc,
		religionSvc,
		snapshots,
		slog.Default(),
	)
	handler := httphandler.NewServeMux(apiHandler, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("zendegi started", "listen_addr", cfg.ListenAddr)

	// 8. Wait for the shutdown signal, then drain the HTTP server.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
