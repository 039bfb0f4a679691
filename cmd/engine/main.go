package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/httpapi"
	"jobtrack-engine/internal/probe"
	"jobtrack-engine/internal/repo"
	"jobtrack-engine/internal/secrets"
	"jobtrack-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (the desktop shell passes one),
	// else local folder.
	dataDir := os.Getenv("JOBTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "jobtrack.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	prober := probe.New(
		cfg.Probe.ReqPerSec,
		cfg.Probe.Burst,
		time.Duration(cfg.Probe.TimeoutSeconds)*time.Second,
	)

	mux := httpapi.NewMux(httpapi.Deps{
		Jobs:        repo.NewJobs(db),
		Companies:   repo.NewCompanies(db),
		Users:       repo.NewUsers(db),
		Prober:      prober,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	// Auth is opt-in: no keychain token means an open local API.
	token := ""
	if cfg.Auth.TokenAccount != "" {
		t, err := secrets.GetAPIToken(cfg.Auth.TokenAccount)
		if err != nil {
			log.Printf("level=warn msg=\"api token configured but unavailable, auth disabled\" err=%v", err)
		} else {
			token = t
		}
	}

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Cors,
		httpapi.BearerAuth(token),
		httpapi.AccessLog,
		httpapi.Recover,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
