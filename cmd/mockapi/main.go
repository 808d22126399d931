package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/churchweb/mockapi/config"
	"github.com/churchweb/mockapi/logger"
	"github.com/churchweb/mockapi/server"
)

// Standalone stub backend: serves the same handler chain the in-process
// harness uses, so a real browser (or a developer with curl) can talk to
// the mock over the network instead of through a RoundTripper.
func main() {
	godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a YAML config, defaults applied when empty")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		cfg = config.MustLoad(configPath)
	}
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	srv := server.New(cfg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/", srv.Handler())

	listen := cfg.Listen
	if port := os.Getenv("PORT"); port != "" {
		listen = ":" + port
	}
	logger.Log.Info("mock backend listening", "addr", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
