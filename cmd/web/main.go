package main

import (
	_ "embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/asteroids-ufo/internal/config"
	"github.com/tomz197/asteroids-ufo/internal/logging"
	"github.com/tomz197/asteroids-ufo/internal/score"
)

//go:embed index.html
var indexHTML string

var page = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	SSHHost   string
	SSHPort   string
	HighScore uint32
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asteroids-web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.PathFromEnv("asteroids.toml"))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	scorePath := cfg.Storage.Path
	if scorePath == "" {
		if scorePath, err = score.DefaultPath(cfg.Storage.Vendor, cfg.Storage.App); err != nil {
			return err
		}
	}
	store := score.NewFileStore(scorePath)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		data := pageData{
			SSHHost:   cfg.Web.SSHDisplayHost,
			SSHPort:   cfg.SSH.Port,
			HighScore: score.LoadHighScore(store, log),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			log.Warn("render page", zap.Error(err))
		}
	})

	addr := net.JoinHostPort(cfg.Web.Host, cfg.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("starting web server", zap.String("addr", "http://"+addr))
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
