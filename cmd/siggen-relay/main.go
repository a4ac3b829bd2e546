package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wellboundhc/go-siggen/components/relay"
)

func main() {
	// A missing .env is fine; explicit flags and env vars win anyway.
	_ = godotenv.Load()

	var (
		addrFlag      = flag.String("addr", envOr("SIGGEN_RELAY_ADDR", ":8484"), "HTTP listen address")
		dirFlag       = flag.String("dir", envOr("SIGGEN_RELAY_DIR", "uploads"), "Directory objects are stored under")
		baseURLFlag   = flag.String("base-url", envOr("SIGGEN_RELAY_BASE_URL", ""), "Public base URL for stored objects")
		prefixFlag    = flag.String("prefix", envOr("SIGGEN_RELAY_PREFIX", "signature-photos/"), "Storage key prefix")
		routeFlag     = flag.String("route", "/api/upload", "Upload route path")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "Shutdown grace period")
	)
	flag.Parse()

	component := relay.New(
		relay.WithRoutePath(*routeFlag),
		relay.WithStorage(relay.NewDirStore(*dirFlag)),
		relay.WithPublicBaseURL(*baseURLFlag),
		relay.WithKeyPrefix(*prefixFlag),
	)

	mux := http.NewServeMux()
	pattern, err := component.RegisterRoutes(mux, "")
	if err != nil {
		log.Fatalf("register routes: %v", err)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: mux,
	}

	log.Printf("listening on %s (uploads at %s, storage dir %s)", *addrFlag, pattern, *dirFlag)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
