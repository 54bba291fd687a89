package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bomma/arcade/internal/catalog"
	"github.com/bomma/arcade/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

func main() {
	logger := config.NewStderrLogger("arcade-web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(sshHost, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newMux serves the landing page and the catalog as JSON.
func newMux(sshHost string, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct {
			SSHHost string
			Games   []catalog.Game
		}{sshHost, catalog.Games}
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})

	mux.HandleFunc("GET /catalog.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(catalog.Games); err != nil {
			logger.Error("encode catalog", "err", err)
		}
	})

	return mux
}
