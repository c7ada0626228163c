// Package web serves the yield curve over HTTP: an interactive chart page,
// the quant JSON document, and a health endpoint.
//
// Every request runs a full render pass (fetch, fit, draw) so the page
// always reflects the source's current table; freshness is the source's
// concern, typically a daily cache.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"czkcurve"
	"czkcurve/curve"
)

// Server renders the curve of a single source.
type Server struct {
	Addr   string
	Source czkcurve.Source
}

// NewServer returns a server for the given listen address and data source.
func NewServer(addr string, source czkcurve.Source) *Server {
	return &Server{Addr: addr, Source: source}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.chart)
	mux.HandleFunc("GET /api/curve", s.quantJSON)
	mux.HandleFunc("GET /healthz", s.healthz)
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("curve server listening on %s", s.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// render runs one full pass: fetch the table and fit the spline.
func (s *Server) render() (czkcurve.Table, *curve.Curve, error) {
	table, err := s.Source.Fetch()
	if err != nil {
		return nil, nil, err
	}
	c, err := curve.Build(table)
	if err != nil {
		return nil, nil, err
	}
	return table, c, nil
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	table, c, err := s.render()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderChart(w, s.Source.CurveName(), table, c); err != nil {
		log.Printf("chart render failed: %v", err)
	}
}

func (s *Server) quantJSON(w http.ResponseWriter, r *http.Request) {
	table, _, err := s.render()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	meta := czkcurve.NewMetadata(s.Source.CurveName())
	if err := czkcurve.EncodeQuantJSON(w, meta, table); err != nil {
		log.Printf("quant JSON encoding failed: %v", err)
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"curve":     s.Source.CurveName(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// statusFor maps render failures to HTTP statuses: an unreachable or
// unreadable source is a bad gateway, a malformed table is an internal
// error.
func statusFor(err error) int {
	if errors.Is(err, czkcurve.ErrSourceUnavailable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encoding failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
