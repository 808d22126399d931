// Package server assembles the interception harness: a fresh fixture
// store, the handler chain over it, and an http.RoundTripper that answers
// requests for the configured API origin without touching the network.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/cors"

	"github.com/churchweb/mockapi/config"
	"github.com/churchweb/mockapi/fixture"
	"github.com/churchweb/mockapi/internal/handler"
	"github.com/churchweb/mockapi/internal/middleware/metrics"
	"github.com/churchweb/mockapi/internal/router"
	"github.com/churchweb/mockapi/internal/token"
	"github.com/churchweb/mockapi/logger"
)

// Server is one isolated backend stand-in. It embeds the fixture store so
// test code primes state by calling store methods on the server directly.
// Build one per test; nothing is shared between instances.
type Server struct {
	*fixture.Store

	cfg   *config.Config
	chain http.Handler
}

func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	store := fixture.NewStore(cfg.Seed)
	h := handler.New(store, token.New(cfg.Jwt.Key, cfg.Jwt.TTL))

	corsMw := cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	})

	return &Server{
		Store: store,
		cfg:   cfg,
		chain: recoverer(corsMw(metrics.Middleware(router.New(h)))),
	}
}

// Handler returns the full middleware chain, ready to mount on a listener
// or drive directly with httptest.
func (s *Server) Handler() http.Handler {
	return s.chain
}

// Transport returns a RoundTripper that serves requests addressed to the
// configured API origin from memory and forwards everything else to base.
// A nil base falls back to http.DefaultTransport.
func (s *Server) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &interceptTransport{server: s, base: base}
}

// Client wraps Transport in an http.Client for test code that speaks to
// the application origin by URL.
func (s *Server) Client() *http.Client {
	return &http.Client{Transport: s.Transport(nil)}
}

type interceptTransport struct {
	server *Server
	base   http.RoundTripper
}

func (t *interceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host != t.server.cfg.ApiOrigin {
		return t.base.RoundTrip(req)
	}

	rec := httptest.NewRecorder()
	t.server.chain.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// recoverer converts a handler panic into a 500 with the stringified error
// in the body. The browser side must always see a completed response.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Log.Error("handler panic", "path", r.URL.Path, "error", rec)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprint(rec)})
		}()
		next.ServeHTTP(w, r)
	})
}
