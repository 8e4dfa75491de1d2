// Command rebacd runs the relation graph + permission evaluator
// service described by spec §1-§8: it loads the namespace registry
// from disk, wires every collaborator in internal/bootstrap, starts
// the bitmap index's background workers, and serves a liveness probe
// until told to stop.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/bootstrap"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebacd: failed to load config: %v\n", err)
		os.Exit(1)
	}

	startupID := uuid.New().String()

	docs, err := loadNamespaceDocs(cfg.NamespaceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebacd: failed to load namespace documents: %v\n", err)
		os.Exit(1)
	}

	svc, err := bootstrap.InitServices(cfg, docs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rebacd: failed to initialize services: %v\n", err)
		os.Exit(1)
	}

	svc.Logger.WithFields("startup_id", startupID).Info("rebacd ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	healthSrv := &http.Server{
		Addr:    ":8088",
		Handler: mux,
	}

	go func() {
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			svc.Logger.Errorf("rebacd: health server stopped: %v", err)
		}
	}()

	go svc.Run(ctx)

	<-ctx.Done()

	svc.Logger.Info("rebacd shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = healthSrv.Shutdown(shutdownCtx)

	if err := svc.Close(); err != nil {
		svc.Logger.Errorf("rebacd: error during shutdown: %v", err)
	}
}

// loadNamespaceDocs parses every *.yaml/*.yml file directly under dir
// into the TypeDefs the registry needs. A missing directory is not an
// error — a registry started empty simply accepts no Check calls
// against an unknown object type (spec §2 "unknown object type is a
// request error, not a startup error").
func loadNamespaceDocs(dir string) ([]namespace.TypeDef, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read namespace dir %q: %w", dir, err)
	}

	var defs []namespace.TypeDef

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", entry.Name(), err)
		}

		parsed, err := namespace.Load(f)
		closeErr := f.Close()

		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		if closeErr != nil {
			return nil, fmt.Errorf("close %s: %w", entry.Name(), closeErr)
		}

		defs = append(defs, parsed...)
	}

	return defs, nil
}
